// Package dispatch передает разрешенный запрос реализации контроллера.
package dispatch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/InQaaaaGit/gyg.git/internal/render"
	"github.com/InQaaaaGit/gyg.git/internal/router"
	"github.com/InQaaaaGit/gyg.git/internal/whitelist"
	"go.uber.org/zap"
)

// entryName - имя точки входа контроллера внутри его каталога
const entryName = "main"

// Controller обрабатывает запросы, разрешенные на его ID
type Controller interface {
	Render(ctx context.Context, req router.Request) (*render.Document, error)
}

// ControllerFunc позволяет использовать функцию как Controller
type ControllerFunc func(ctx context.Context, req router.Request) (*render.Document, error)

// Render вызывает f(ctx, req)
func (f ControllerFunc) Render(ctx context.Context, req router.Request) (*render.Document, error) {
	return f(ctx, req)
}

// ControllerEntryPath возвращает путь к точке входа контроллера.
// Существование файла не проверяется.
func ControllerEntryPath(controllerID, controllersRoot string) string {
	return filepath.Join(controllersRoot, controllerID, entryName)
}

// Dispatcher хранит реестр контроллеров. Заполняется при старте, затем только читается.
type Dispatcher struct {
	root        string
	controllers map[string]Controller
	logger      *zap.Logger
}

// NewDispatcher создает Dispatcher для каталога контроллеров root
func NewDispatcher(root string, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		root:        root,
		controllers: make(map[string]Controller),
		logger:      logger,
	}
}

// Register связывает ID контроллера с реализацией
func (d *Dispatcher) Register(id string, c Controller) {
	d.controllers[id] = c
}

// Root возвращает каталог контроллеров
func (d *Dispatcher) Root() string {
	return d.root
}

// Validate проверяет, что у каждого включенного контроллера есть реализация
func (d *Dispatcher) Validate(store *whitelist.Store) error {
	for _, c := range store.Controllers() {
		if !c.Enabled {
			continue
		}
		if _, ok := d.controllers[c.ID]; !ok {
			return fmt.Errorf("%w: %q (%s)", ErrControllerNotRegistered, c.ID, ControllerEntryPath(c.ID, d.root))
		}
	}
	return nil
}

// Dispatch передает запрос контроллеру req.Controller
func (d *Dispatcher) Dispatch(ctx context.Context, req router.Request) (*render.Document, error) {
	c, ok := d.controllers[req.Controller]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrControllerNotRegistered, req.Controller)
	}

	d.logger.Debug("Dispatching request",
		zap.String("controller", req.Controller),
		zap.String("entry", ControllerEntryPath(req.Controller, d.root)),
		zap.String("page", req.Page),
		zap.Strings("args", req.Args))

	return c.Render(ctx, req)
}
