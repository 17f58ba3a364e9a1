package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// Pinger verifica la conectividad con el almacenamiento.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler endpoint de salud: comprueba que la API responde y que la base
// de datos está accesible. Sin autenticación (lo usan los probes de la
// plataforma de despliegue).
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler construye el handler.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check responde 200 "Healthy" si la base de datos contesta, o 500 con el
// detalle del error.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	if err := h.db.Ping(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Error: " + err.Error())
	}
	return c.SendString("Healthy")
}
