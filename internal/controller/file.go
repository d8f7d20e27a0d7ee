package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/InQaaaaGit/gyg.git/internal/dispatch"
	"github.com/InQaaaaGit/gyg.git/internal/render"
	"github.com/InQaaaaGit/gyg.git/internal/router"
	"github.com/InQaaaaGit/gyg.git/internal/static"
	"github.com/InQaaaaGit/gyg.git/internal/whitelist"
)

// File отдает файлы контроллеров: file/<controller>/[<page>/]<path>.
// Страницей считается первый аргумент, если у контроллера есть каталог pages/<arg>,
// либо второй, если путь начинается с pages/.
type File struct {
	store  *whitelist.Store
	static *static.Server
}

// NewFile создает файловый контроллер
func NewFile(store *whitelist.Store, server *static.Server) *File {
	return &File{
		store:  store,
		static: server,
	}
}

// Render находит и отдает файл. Файлы выключенных контроллеров и страниц не отдаются.
func (c *File) Render(ctx context.Context, req router.Request) (*render.Document, error) {
	controller := req.Page
	if !req.HasPage || controller == "" || len(req.Args) < 1 {
		return nil, fmt.Errorf("incomplete file request %q: %w", req.String(), dispatch.ErrNotFound)
	}
	if !c.store.ControllerIsEnabled(controller) {
		return nil, fmt.Errorf("controller %q: %w", controller, dispatch.ErrNotFound)
	}

	args := req.Args
	page := ""
	switch {
	case args[0] == static.PagesDir:
		// Явный путь pages/<page>/<file> проходит ту же проверку страницы
		if len(args) < 3 {
			return nil, fmt.Errorf("incomplete page file request %q: %w", req.String(), dispatch.ErrNotFound)
		}
		page = args[1]
		args = args[2:]
	case len(args) > 1 && c.static.PageDirExists(controller, args[0]):
		page = args[0]
		args = args[1:]
	}

	if page != "" {
		if err := c.checkPage(controller, page); err != nil {
			return nil, err
		}
	}
	file := strings.Join(args, "/")

	return c.static.Open(controller, page, file)
}

// checkPage применяет белый список страниц, если контроллер его объявил
func (c *File) checkPage(controller, page string) error {
	if !c.store.HasPageWhitelist(controller) {
		return nil
	}

	enabled, err := c.store.IsPageEnabled(controller, page)
	if err != nil {
		return fmt.Errorf("error checking page whitelist: %w", err)
	}
	if !enabled {
		return fmt.Errorf("page %q of controller %q: %w", page, controller, dispatch.ErrNotFound)
	}
	return nil
}
