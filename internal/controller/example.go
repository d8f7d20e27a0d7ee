// Package controller содержит встроенные контроллеры: страницы-примеры и отдачу файлов.
package controller

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/InQaaaaGit/gyg.git/internal/dispatch"
	"github.com/InQaaaaGit/gyg.git/internal/links"
	"github.com/InQaaaaGit/gyg.git/internal/render"
	"github.com/InQaaaaGit/gyg.git/internal/router"
	"github.com/InQaaaaGit/gyg.git/internal/whitelist"
	"go.uber.org/zap"
)

// ExampleID - ID контроллера страниц-примеров
const ExampleID = "example"

const homePage = "home"

// pageFunc заполняет переменные шаблона страницы
type pageFunc func(req router.Request, l links.Builder) render.Vars

// Example отдает страницы из каталога pages/<page>/<page>.tpl.html.
// Страницы проверяются по белому списку контроллера.
type Example struct {
	store    *whitelist.Store
	renderer *render.Renderer
	links    links.Builder
	logger   *zap.Logger
	pages    map[string]pageFunc
}

// NewExample создает контроллер, шаблоны которого лежат в dir
func NewExample(dir string, store *whitelist.Store, l links.Builder, logger *zap.Logger) *Example {
	return &Example{
		store:    store,
		renderer: render.NewRenderer(os.DirFS(filepath.Clean(dir))),
		links:    l,
		logger:   logger,
		pages: map[string]pageFunc{
			"home": homeVars,
			"mars": marsVars,
		},
	}
}

// Render отдает запрошенную страницу. Без страницы открывается home.
func (c *Example) Render(ctx context.Context, req router.Request) (*render.Document, error) {
	page := homePage
	if req.HasPage {
		page = req.Page

		enabled, err := c.store.IsPageEnabled(req.Controller, page)
		if err != nil {
			return nil, fmt.Errorf("error checking page whitelist: %w", err)
		}
		if !enabled {
			return nil, fmt.Errorf("page %q of controller %q: %w", page, req.Controller, dispatch.ErrNotFound)
		}
	}

	build, ok := c.pages[page]
	if !ok {
		c.logger.Warn("Whitelisted page has no implementation",
			zap.String("controller", req.Controller),
			zap.String("page", page))
		return nil, fmt.Errorf("page %q: %w", page, dispatch.ErrNotFound)
	}

	req.Page = page
	req.HasPage = true
	return c.renderer.Render(path.Join("pages", page, page+".tpl.html"), build(req, c.links))
}

func homeVars(req router.Request, l links.Builder) render.Vars {
	content := "<p><a href='" + l.URL(req.Controller+"/mars") + "'>Hello Mars!</a></p>"
	content += "<p><a href='" + l.URL("mars") + "'>Hello Mars! (shortcut)</a></p>"

	return render.Vars{
		"title":      "Home",
		"lang":       "en",
		"favicon":    l.FileURL("img/gyg.svg", req.Controller, ""),
		"stylesheet": l.FileURL("style/style.css", req.Controller, ""),
		"content":    content,
	}
}

func marsVars(req router.Request, l links.Builder) render.Vars {
	return render.Vars{
		"title":      "Hello Mars!",
		"lang":       "en",
		"favicon":    l.FileURL("img/gyg.svg", req.Controller, ""),
		"style":      "@import url(" + l.FileURL("style/style.css", req.Controller, "") + ");",
		"stylesheet": l.FileURL("style/style.css", req.Controller, req.Page),
		"header":     "<img src='" + l.FileURL("img/mars.svg", req.Controller, req.Page) + "' alt='Mars'>",
		"content":    "<p>Hello Mars!</p>",
	}
}
