// Package links строит URL страниц и файлов контроллеров с учетом режима маршрутизации.
package links

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// FileController - ID контроллера, который отдает файлы
const FileController = "file"

// ErrOutsideControllers возвращается для файлов вне каталога контроллеров
var ErrOutsideControllers = errors.New("only files below the controllers directory are allowed")

// Builder строит URL. В режиме без RewriteRule путь передается в строке запроса.
type Builder struct {
	BasePath string
	Rewrite  bool
}

// URL возвращает адрес запроса path
func (b Builder) URL(path string) string {
	base := strings.TrimRight(b.BasePath, "/")
	path = strings.Trim(path, "/")

	if b.Rewrite {
		return base + "/" + path
	}
	return base + "/?" + path
}

// FileURL возвращает адрес файла контроллера. Если page пустая,
// файл лежит в каталоге контроллера, иначе - в каталоге страницы.
func (b Builder) FileURL(file, controller, page string) string {
	parts := []string{FileController, controller}
	if page != "" {
		parts = append(parts, page)
	}
	parts = append(parts, strings.Trim(file, "/"))
	return b.URL(strings.Join(parts, "/"))
}

// PathToURL превращает путь к файлу в адрес через файловый контроллер.
// Допускаются только файлы внутри controllersRoot.
func (b Builder) PathToURL(controllersRoot, filePath string) (string, error) {
	root, err := filepath.Abs(controllersRoot)
	if err != nil {
		return "", fmt.Errorf("error resolving controllers path: %w", err)
	}
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("error resolving file path: %w", err)
	}

	rel, err := filepath.Rel(root, abs)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrOutsideControllers, filePath)
	}

	return b.URL(FileController + "/" + filepath.ToSlash(rel)), nil
}
