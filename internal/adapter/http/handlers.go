package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const serviceName = "fondo-backend"

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "ok",
		"service": serviceName,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}
