// Package handler содержит HTTP обработчики фронт-контроллера.
package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/InQaaaaGit/gyg.git/internal/config"
	"github.com/InQaaaaGit/gyg.git/internal/dispatch"
	"github.com/InQaaaaGit/gyg.git/internal/middleware"
	"github.com/InQaaaaGit/gyg.git/internal/render"
	"github.com/InQaaaaGit/gyg.git/internal/router"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	tracerName           = "github.com/InQaaaaGit/gyg.git/internal/handler"
	internalErrorMessage = "Internal server error"
	dispatchSpanName     = "gyg.dispatch"
	attrController       = "gyg.controller"
	attrPage             = "gyg.page"
	attrArgs             = "gyg.args"
	attrRequestID        = "gyg.request_id"
)

// Handler разбирает запрос, разрешает его маршрутизатором и передает контроллеру
type Handler struct {
	router     *router.Router
	dispatcher *dispatch.Dispatcher
	cfg        *config.Config
	logger     *zap.Logger
	tracer     trace.Tracer
}

// NewHandler создает обработчик. Трассировка использует глобальный
// TracerProvider OpenTelemetry.
func NewHandler(rt *router.Router, d *dispatch.Dispatcher, cfg *config.Config, logger *zap.Logger) *Handler {
	return &Handler{
		router:     rt,
		dispatcher: d,
		cfg:        cfg,
		logger:     logger,
		tracer:     otel.Tracer(tracerName),
	}
}

// RawRequest извлекает строку запроса для маршрутизатора.
// В режиме перезаписи это путь без BasePath, иначе строка запроса URL.
// false означает, что путь лежит вне BasePath.
func (h *Handler) RawRequest(r *http.Request) (string, bool) {
	rest, ok := trimBasePath(r.URL.Path, h.cfg.BasePath)
	if !ok {
		return "", false
	}

	if h.cfg.UseRewriteRule {
		return rest, true
	}

	raw, err := url.PathUnescape(r.URL.RawQuery)
	if err != nil {
		return r.URL.RawQuery, true
	}
	return raw, true
}

// trimBasePath отрезает base от начала path по границе сегмента
func trimBasePath(path, base string) (string, bool) {
	base = strings.Trim(base, "/")
	if base == "" {
		return path, true
	}

	prefix := "/" + base
	if path == prefix {
		return "", true
	}
	if strings.HasPrefix(path, prefix+"/") {
		return path[len(prefix):], true
	}
	return "", false
}

// HandleRequest обрабатывает GET и HEAD запросы к сайту
func (h *Handler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	raw, ok := h.RawRequest(r)
	if !ok {
		h.writeDocument(w, r, render.NotFound())
		return
	}

	req, err := h.router.ResolveRaw(raw)
	if err != nil {
		h.serverError(w, r, "Error resolving request", err, zap.String("raw", raw))
		return
	}
	middleware.SetController(r.Context(), req.Controller)

	ctx, span := h.tracer.Start(r.Context(), dispatchSpanName,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String(attrController, req.Controller),
			attribute.String(attrPage, req.Page),
			attribute.Int(attrArgs, len(req.Args)),
			attribute.String(attrRequestID, middleware.RequestIDFromContext(r.Context())),
		),
	)
	defer span.End()

	doc, err := h.dispatcher.Dispatch(ctx, req)
	switch {
	case errors.Is(err, dispatch.ErrNotFound):
		span.SetAttributes(attribute.Bool("gyg.not_found", true))
		doc = render.NotFound()
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		h.serverError(w, r, "Error dispatching request", err, zap.Stringer("request", req))
		return
	default:
		span.SetStatus(codes.Ok, "")
	}

	h.writeDocument(w, r, doc)
}

// HandleNotFound отвечает фиксированной страницей 404
func (h *Handler) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	h.writeDocument(w, r, render.NotFound())
}

// WithLogging добавляет логирование запросов
func (h *Handler) WithLogging(next http.Handler) http.Handler {
	return middleware.LoggerMiddleware(h.logger)(next)
}

// WithGzip добавляет поддержку gzip сжатия
func (h *Handler) WithGzip(next http.Handler) http.Handler {
	return middleware.GzipMiddleware(next)
}

func (h *Handler) writeDocument(w http.ResponseWriter, r *http.Request, doc *render.Document) {
	if err := doc.Write(w, r); err != nil {
		h.logger.Error("Error writing response",
			zap.String("request_id", middleware.RequestIDFromContext(r.Context())),
			zap.Error(err))
	}
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, msg string, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("request_id", middleware.RequestIDFromContext(r.Context())),
		zap.Error(err))
	h.logger.Error(msg, fields...)
	http.Error(w, internalErrorMessage, http.StatusInternalServerError)
}
