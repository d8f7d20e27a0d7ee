// Package render подставляет переменные страницы в HTML шаблоны контроллеров.
// Экранирование не выполняется: вызывающий код передает безопасные HTML фрагменты.
package render

import (
	"bytes"
	"fmt"
	"io/fs"
	"text/template"
)

// Vars - именованные строковые переменные шаблона (title, lang, content, ...).
// Значения подставляются без экранирования, HTML собирает вызывающий код.
type Vars map[string]string

// Renderer загружает шаблоны из файловой системы контроллера
type Renderer struct {
	fsys fs.FS
}

// NewRenderer создает Renderer поверх fsys
func NewRenderer(fsys fs.FS) *Renderer {
	return &Renderer{fsys: fsys}
}

// Render подставляет vars в шаблон name и возвращает HTML документ.
// Отсутствующие переменные подставляются пустой строкой.
func (r *Renderer) Render(name string, vars Vars) (*Document, error) {
	src, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("error reading template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Option("missingkey=zero").Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("error parsing template %s: %w", name, err)
	}

	if vars == nil {
		vars = Vars{}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]string(vars)); err != nil {
		return nil, fmt.Errorf("error executing template %s: %w", name, err)
	}

	return HTML(buf.Bytes()), nil
}
