package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/news-cms/internal/newsportal"
)

// HealthCheck reports whether one backing service is reachable.
type HealthCheck func(ctx context.Context) error

type Config struct {
	AuthSecret    []byte
	SecureCookies bool
	HealthChecks  map[string]HealthCheck
}

type Handler struct {
	m   *newsportal.Manager
	log *slog.Logger
	cfg Config
}

func NewHandler(m *newsportal.Manager, log *slog.Logger, cfg Config) *Handler {
	return &Handler{
		m:   m,
		log: log,
		cfg: cfg,
	}
}

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message, "path", c.Path())
	return c.JSON(statusCode, map[string]string{"error": message})
}

// handleWriteError maps manager errors of write paths onto status codes.
func (h *Handler) handleWriteError(c echo.Context, err error) error {
	var ve *newsportal.ValidationError
	switch {
	case errors.As(err, &ve):
		return h.handleError(c, err, http.StatusBadRequest, ve.Error())
	case errors.Is(err, newsportal.ErrNotFound):
		return h.handleError(c, err, http.StatusNotFound, "not found")
	default:
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
}

// degrade logs a failed read and lets the caller answer with an empty result.
func (h *Handler) degrade(c echo.Context, err error, what string) {
	h.log.Warn("read degraded to empty result", "what", what, "error", err, "path", c.Path())
}
