package handlers

import (
	"movie-admin/internal/admin"
	"movie-admin/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	registry *admin.Registry
}

func NewAdminHandler(registry *admin.Registry) *AdminHandler {
	return &AdminHandler{registry: registry}
}

// ListModels godoc
// @Summary List admin models
// @Description Metadata of every registered model admin: columns, search fields, filters and inlines
// @Tags admin
// @Produce json
// @Success 200 {object} utils.StandardResponse "Model metadata"
// @Router /admin/models [get]
func (h *AdminHandler) ListModels(c *fiber.Ctx) error {
	admins := h.registry.All()
	meta := make([]admin.Metadata, 0, len(admins))
	for _, a := range admins {
		meta = append(meta, a.Describe())
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Models retrieved successfully", meta)
}

// GetModel godoc
// @Summary Get admin model
// @Tags admin
// @Produce json
// @Param name path string true "Model name (person, genre, film_work)"
// @Success 200 {object} utils.StandardResponse "Model metadata"
// @Failure 404 {object} utils.StandardResponse "Model not found"
// @Router /admin/models/{name} [get]
func (h *AdminHandler) GetModel(c *fiber.Ctx) error {
	a, ok := h.registry.Get(c.Params("name"))
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Model not found")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Model retrieved successfully", a.Describe())
}
