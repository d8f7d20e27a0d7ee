// Package app содержит основную структуру приложения и логику инициализации.
// Собирает белый список, маршрутизатор, реестр контроллеров и HTTP маршруты.
package app

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/InQaaaaGit/gyg.git/internal/config"
	"github.com/InQaaaaGit/gyg.git/internal/controller"
	"github.com/InQaaaaGit/gyg.git/internal/dispatch"
	"github.com/InQaaaaGit/gyg.git/internal/handler"
	"github.com/InQaaaaGit/gyg.git/internal/links"
	"github.com/InQaaaaGit/gyg.git/internal/middleware"
	"github.com/InQaaaaGit/gyg.git/internal/router"
	"github.com/InQaaaaGit/gyg.git/internal/static"
	"github.com/InQaaaaGit/gyg.git/internal/whitelist"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Служебные маршруты вынесены под /-/, такой ID контроллера недопустим
const (
	PingPath    = "/-/ping"
	MetricsPath = "/-/metrics"
)

const metricsNamespace = "gyg"

// requestBuckets - границы гистограммы длительности: страницы и файлы
// отдаются с диска, поэтому шкала смещена к миллисекундам
var requestBuckets = []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}

// App представляет фронт-контроллер сайта.
// Инкапсулирует конфигурацию, белый список, маршрутизацию и HTTP обработчики.
type App struct {
	config     *config.Config
	mux        *chi.Mux
	logger     *zap.Logger
	handler    *handler.Handler
	store      *whitelist.Store
	router     *router.Router
	dispatcher *dispatch.Dispatcher
	registry   *prometheus.Registry
	metrics    *middleware.Metrics
}

// NewApp создает приложение по конфигурации.
// Ошибки белого списка, цепочек ярлыков и реестра контроллеров фатальны
// и возвращаются до запуска сервера.
func NewApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	store, rt, err := Bootstrap(cfg)
	if err != nil {
		return nil, err
	}

	d := NewDispatcher(cfg, store, logger)
	if err := d.Validate(store); err != nil {
		return nil, fmt.Errorf("error validating controllers: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	a := &App{
		config:     cfg,
		mux:        chi.NewRouter(),
		logger:     logger,
		handler:    handler.NewHandler(rt, d, cfg, logger),
		store:      store,
		router:     rt,
		dispatcher: d,
		registry:   registry,
		metrics:    middleware.NewMetrics(
			middleware.WithRegistry(registry),
			middleware.WithNamespace(metricsNamespace),
			middleware.WithBuckets(requestBuckets),
		),
	}
	a.setupRoutes()

	logger.Info("Application configured",
		zap.String("controllers", cfg.ControllersPath),
		zap.String("whitelist", cfg.WhitelistFile),
		zap.String("default_controller", cfg.DefaultController),
		zap.Bool("rewrite", cfg.UseRewriteRule),
		zap.Int("controllers_count", len(store.Controllers())),
		zap.Int("shortcuts_count", len(store.Shortcuts())))

	return a, nil
}

// Bootstrap загружает белый список и строит маршрутизатор.
// Все включенные ярлыки разрешаются заранее, циклы возвращаются ошибкой.
func Bootstrap(cfg *config.Config) (*whitelist.Store, *router.Router, error) {
	def, err := whitelist.LoadFile(cfg.WhitelistFile)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading whitelist: %w", err)
	}

	store, err := whitelist.NewStore(def)
	if err != nil {
		return nil, nil, fmt.Errorf("error building whitelist: %w", err)
	}

	rt, err := router.New(store, cfg.DefaultController, router.WithMaxDepth(cfg.MaxShortcutDepth))
	if err != nil {
		return nil, nil, fmt.Errorf("error creating router: %w", err)
	}
	if err := rt.Validate(); err != nil {
		return nil, nil, fmt.Errorf("error validating shortcuts: %w", err)
	}

	return store, rt, nil
}

// NewDispatcher регистрирует встроенные контроллеры
func NewDispatcher(cfg *config.Config, store *whitelist.Store, logger *zap.Logger) *dispatch.Dispatcher {
	l := links.Builder{BasePath: cfg.BasePath, Rewrite: cfg.UseRewriteRule}

	d := dispatch.NewDispatcher(cfg.ControllersPath, logger)
	d.Register(controller.ExampleID, controller.NewExample(
		filepath.Join(cfg.ControllersPath, controller.ExampleID), store, l, logger))
	d.Register(links.FileController, controller.NewFile(store, static.NewServer(d.Root())))
	return d
}

// setupRoutes настраивает HTTP маршруты и middleware приложения
func (a *App) setupRoutes() {
	a.mux.Use(middleware.RequestID)
	a.mux.Use(a.handler.WithLogging)
	a.mux.Use(a.metrics.Middleware)
	a.mux.Use(a.handler.WithGzip)

	a.mux.Get(PingPath, a.handler.HandlePing)
	a.mux.Head(PingPath, a.handler.HandlePing)
	a.mux.Handle(MetricsPath, promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{DisableCompression: true}))

	a.mux.Get("/*", a.handler.HandleRequest)
	a.mux.Head("/*", a.handler.HandleRequest)

	a.mux.NotFound(a.handler.HandleNotFound)
}

// Handler возвращает корневой HTTP обработчик
func (a *App) Handler() http.Handler {
	return a.mux
}

// Router возвращает маршрутизатор запросов
func (a *App) Router() *router.Router {
	return a.router
}

// Store возвращает белый список
func (a *App) Store() *whitelist.Store {
	return a.store
}

// GetServer создает и возвращает настроенный HTTP сервер.
func (a *App) GetServer() *http.Server {
	return &http.Server{
		Addr:              a.config.ServerAddress,
		Handler:           a.mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
