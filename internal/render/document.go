package render

import (
	_ "embed"
	"net/http"
	"strconv"
)

const contentTypeHTML = "text/html; charset=utf-8"

//go:embed templates/404.html
var notFoundPage []byte

// Document - готовый ответ контроллера
type Document struct {
	Status      int
	ContentType string
	Body        []byte
}

// HTML создает HTML документ со статусом 200
func HTML(body []byte) *Document {
	return &Document{
		Status:      http.StatusOK,
		ContentType: contentTypeHTML,
		Body:        body,
	}
}

// NotFound возвращает фиксированный документ 404
func NotFound() *Document {
	return &Document{
		Status:      http.StatusNotFound,
		ContentType: contentTypeHTML,
		Body:        notFoundPage,
	}
}

// Write записывает документ в ответ. Для HEAD пишутся только заголовки.
func (d *Document) Write(w http.ResponseWriter, r *http.Request) error {
	status := d.Status
	if status == 0 {
		status = http.StatusOK
	}

	if d.ContentType != "" {
		w.Header().Set("Content-Type", d.ContentType)
	}
	w.Header().Set("Content-Length", strconv.Itoa(len(d.Body)))
	w.WriteHeader(status)

	if r != nil && r.Method == http.MethodHead {
		return nil
	}
	_, err := w.Write(d.Body)
	return err
}
