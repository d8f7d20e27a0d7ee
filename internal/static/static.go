// Package static отдает файлы из каталогов контроллеров и страниц.
package static

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/InQaaaaGit/gyg.git/internal/dispatch"
	"github.com/InQaaaaGit/gyg.git/internal/render"
	"github.com/gabriel-vasile/mimetype"
)

// PagesDir - каталог страниц внутри каталога контроллера
const PagesDir = "pages"

// Server читает файлы относительно каталога контроллеров Root.
// Символические ссылки, ведущие за пределы Root, не открываются.
type Server struct {
	Root string
}

// NewServer создает Server для каталога контроллеров root
func NewServer(root string) *Server {
	return &Server{Root: root}
}

// PageDirExists сообщает, есть ли у контроллера каталог страницы page
func (s *Server) PageDirExists(controller, page string) bool {
	if !validSegment(controller) || !validSegment(page) {
		return false
	}
	root, err := os.OpenRoot(s.Root)
	if err != nil {
		return false
	}
	defer root.Close()

	info, err := root.Stat(filepath.Join(controller, PagesDir, page))
	return err == nil && info.IsDir()
}

// Open читает файл контроллера (page == "") или страницы и определяет его MIME тип.
// Отсутствующий файл, каталог и небезопасный путь дают dispatch.ErrNotFound.
func (s *Server) Open(controller, page, file string) (*render.Document, error) {
	rel, ok := relPath(controller, page, file)
	if !ok {
		return nil, fmt.Errorf("unsafe file path %q: %w", file, dispatch.ErrNotFound)
	}

	root, err := os.OpenRoot(s.Root)
	if err != nil {
		return nil, fmt.Errorf("error opening controllers directory: %w", err)
	}
	defer root.Close()

	// Ошибка Stat означает отсутствующий файл или путь за пределами Root
	name := filepath.FromSlash(rel)
	info, err := root.Stat(name)
	if err != nil {
		return nil, fmt.Errorf("file %s: %v: %w", rel, err, dispatch.ErrNotFound)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("file %s is a directory: %w", rel, dispatch.ErrNotFound)
	}

	f, err := root.Open(name)
	if err != nil {
		return nil, fmt.Errorf("error opening file %s: %w", rel, err)
	}
	defer f.Close()

	body, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", rel, err)
	}

	return &render.Document{
		Status:      http.StatusOK,
		ContentType: detectContentType(rel, body),
		Body:        body,
	}, nil
}

// detectContentType определяет тип по содержимому. Для текстовых файлов
// (css, js) содержимое неотличимо от text/plain, поэтому берется расширение.
func detectContentType(name string, body []byte) string {
	detected := mimetype.Detect(body)
	if detected.Is("text/plain") || detected.Is("application/octet-stream") {
		if byExt := mime.TypeByExtension(path.Ext(name)); byExt != "" {
			return byExt
		}
	}
	return detected.String()
}

// relPath собирает относительный путь controller/[pages/page/]file.
// Отклоняет пустые сегменты, "." и "..", обратные слэши и NUL.
func relPath(controller, page, file string) (string, bool) {
	if !validSegment(controller) {
		return "", false
	}
	parts := []string{controller}

	if page != "" {
		if !validSegment(page) {
			return "", false
		}
		parts = append(parts, PagesDir, page)
	}

	if file == "" {
		return "", false
	}
	for _, seg := range strings.Split(file, "/") {
		if !validSegment(seg) {
			return "", false
		}
		parts = append(parts, seg)
	}

	return strings.Join(parts, "/"), true
}

func validSegment(seg string) bool {
	if seg == "" || seg == "." || seg == ".." {
		return false
	}
	return !strings.ContainsAny(seg, "\\\x00") && !strings.Contains(seg, "/")
}
