package handlers

import (
	"github.com/gofiber/fiber/v2"

	"placement-predictor/internal/services"
)

type RolesHandler struct {
	catalog *services.RoleCatalog
}

func NewRolesHandler(catalog *services.RoleCatalog) *RolesHandler {
	return &RolesHandler{catalog: catalog}
}

// HandleList handles GET /job-roles
func (h *RolesHandler) HandleList(c *fiber.Ctx) error {
	return c.JSON(h.catalog.Names())
}
