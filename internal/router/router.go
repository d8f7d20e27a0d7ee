// Package router разбирает запросы и определяет контроллер, страницу и аргументы.
//
// Порядок разрешения первого сегмента: пустой сегмент, включенный контроллер,
// включенный ярлык, контроллер по умолчанию. Ярлык разбирается заново как
// исходный запрос.
package router

import (
	"fmt"
	"strings"

	"github.com/InQaaaaGit/gyg.git/internal/whitelist"
)

// DefaultMaxDepth - максимальная длина цепочки ярлыков по умолчанию
const DefaultMaxDepth = 16

// Request - результат маршрутизации, единственный вход диспетчера
type Request struct {
	Controller string
	Page       string
	HasPage    bool
	Args       []string
}

// String возвращает запрос в виде пути "controller/page/arg0/..."
func (r Request) String() string {
	parts := []string{r.Controller}
	if r.HasPage {
		parts = append(parts, r.Page)
	}
	parts = append(parts, r.Args...)
	return strings.Join(parts, "/")
}

// Router разрешает сегменты запроса по белому списку
type Router struct {
	store             *whitelist.Store
	defaultController string
	maxDepth          int
}

// Option настраивает Router
type Option func(*Router)

// WithMaxDepth задает максимальную длину цепочки ярлыков
func WithMaxDepth(depth int) Option {
	return func(r *Router) {
		if depth > 0 {
			r.maxDepth = depth
		}
	}
}

// New создает Router. Выключенный или незарегистрированный контроллер
// по умолчанию - фатальная ошибка конфигурации.
func New(store *whitelist.Store, defaultController string, opts ...Option) (*Router, error) {
	if !store.ControllerIsEnabled(defaultController) {
		return nil, fmt.Errorf("%w: %q", ErrDefaultControllerDisabled, defaultController)
	}

	r := &Router{
		store:             store,
		defaultController: defaultController,
		maxDepth:          DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// DefaultController возвращает ID контроллера по умолчанию
func (r *Router) DefaultController() string {
	return r.defaultController
}

// ResolveRaw разбирает и разрешает сырой запрос
func (r *Router) ResolveRaw(raw string) (Request, error) {
	return r.Resolve(Parse(raw))
}

// Resolve определяет контроллер, страницу и аргументы по сегментам запроса
func (r *Router) Resolve(segments []string) (Request, error) {
	if !r.store.ControllerIsEnabled(r.defaultController) {
		return Request{}, fmt.Errorf("%w: %q", ErrDefaultControllerDisabled, r.defaultController)
	}
	return r.resolve(segments, nil)
}

func (r *Router) resolve(segments []string, chain []string) (Request, error) {
	if len(segments) == 0 {
		segments = []string{""}
	}
	first := segments[0]

	if first == "" {
		return Request{Controller: r.defaultController, Args: []string{}}, nil
	}

	if r.store.ControllerIsEnabled(first) {
		req := Request{Controller: first, Args: []string{}}
		if len(segments) > 1 {
			req.Page = segments[1]
			req.HasPage = true
		}
		if len(segments) > 2 {
			req.Args = append(req.Args, segments[2:]...)
		}
		return req, nil
	}

	if sc, ok := r.store.Shortcut(first); ok {
		for _, seen := range chain {
			if seen == first {
				return Request{}, fmt.Errorf("%w: %s", ErrShortcutCycle, strings.Join(append(chain, first), " -> "))
			}
		}
		if len(chain) >= r.maxDepth {
			return Request{}, fmt.Errorf("%w: %s", ErrShortcutDepth, strings.Join(append(chain, first), " -> "))
		}
		return r.resolve(Parse(sc.Path), append(chain, first))
	}

	return Request{
		Controller: r.defaultController,
		Page:       first,
		HasPage:    true,
		Args:       append([]string{}, segments[1:]...),
	}, nil
}

// Validate разрешает каждый включенный ярлык, чтобы циклы и слишком
// длинные цепочки обнаруживались при старте, а не на запросе.
func (r *Router) Validate() error {
	for _, sc := range r.store.Shortcuts() {
		if !r.store.ShortcutIsEnabled(sc.ID) {
			continue
		}
		if _, err := r.Resolve([]string{sc.ID}); err != nil {
			return fmt.Errorf("shortcut %q: %w", sc.ID, err)
		}
	}
	return nil
}
