package main

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

// ExitCheckAnalyzer запрещает завершать процесс вне пакета main.
// Ошибки конфигурации должны возвращаться в main, который и решает, когда выйти.
var ExitCheckAnalyzer = &analysis.Analyzer{
	Name:     "exitcheck",
	Doc:      "forbids os.Exit, log.Fatal* and zap Logger.Fatal outside package main",
	Run:      runExitCheck,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

// exitFuncs - функции пакетов, завершающие процесс
var exitFuncs = map[string]map[string]bool{
	"os":  {"Exit": true},
	"log": {"Fatal": true, "Fatalf": true, "Fatalln": true},
}

// exitMethods - методы логгеров, завершающие процесс
var exitMethods = map[string]map[string]bool{
	"go.uber.org/zap": {"Fatal": true, "Fatalf": true, "Fatalw": true, "Fatalln": true},
}

func runExitCheck(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() == "main" {
		return nil, nil
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	insp.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(node ast.Node) {
		call := node.(*ast.CallExpr)

		if strings.HasSuffix(pass.Fset.Position(call.Pos()).Filename, "_test.go") {
			return
		}

		fn := typeutil.StaticCallee(pass.TypesInfo, call)
		if fn == nil || fn.Pkg() == nil {
			return
		}

		path, name := fn.Pkg().Path(), fn.Name()
		if sig, ok := fn.Type().(*types.Signature); ok && sig.Recv() != nil {
			if exitMethods[path][name] {
				pass.Reportf(call.Pos(), "call to %s.%s outside package main: return the error instead", path, name)
			}
			return
		}
		if exitFuncs[path][name] {
			pass.Reportf(call.Pos(), "call to %s.%s outside package main: return the error instead", path, name)
		}
	})

	return nil, nil
}
