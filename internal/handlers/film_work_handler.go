package handlers

import (
	"movie-admin/internal/admin"
	"movie-admin/internal/services"
	"movie-admin/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type FilmWorkHandler struct {
	service services.FilmWorkService
	admin   *admin.ModelAdmin
	logger  *logrus.Logger
}

func NewFilmWorkHandler(service services.FilmWorkService, a *admin.ModelAdmin, logger *logrus.Logger) *FilmWorkHandler {
	return &FilmWorkHandler{
		service: service,
		admin:   a,
		logger:  logger,
	}
}

// ListFilmWorks godoc
// @Summary List film works
// @Description Admin list page with title, type, genres, creation date and rating columns
// @Tags filmworks
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (defaults to list_per_page)"
// @Param search query string false "Search by title or description"
// @Param type query string false "Filter by type (movie, tv_show)"
// @Param sort_by query string false "Sort by column (title, type, creation_date, rating)"
// @Param order query string false "Sort order (ASC/DESC)"
// @Success 200 {object} utils.StandardResponse "List rows"
// @Failure 400 {object} utils.StandardResponse "Invalid filter"
// @Router /admin/filmworks [get]
func (h *FilmWorkHandler) ListFilmWorks(c *fiber.Ctx) error {
	result, err := h.service.ListFilmWorks(c.Context(), listParams(c, h.admin))
	if err != nil {
		return errorResponse(c, h.logger, err, "Film work not found")
	}
	return listResponse(c, "Film works retrieved successfully", result)
}

// GetFilmWork godoc
// @Summary Get film work by ID
// @Description Returns the film work with its genre and person inlines
// @Tags filmworks
// @Produce json
// @Param id path string true "Film work ID"
// @Success 200 {object} utils.StandardResponse "Film work details"
// @Failure 400 {object} utils.StandardResponse "Invalid film work ID"
// @Failure 404 {object} utils.StandardResponse "Film work not found"
// @Router /admin/filmworks/{id} [get]
func (h *FilmWorkHandler) GetFilmWork(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid film work ID")
	}

	filmWork, err := h.service.GetFilmWorkByID(c.Context(), id)
	if err != nil {
		return errorResponse(c, h.logger, err, "Film work not found")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Film work retrieved successfully", filmWork)
}

// CreateFilmWork godoc
// @Summary Create a film work
// @Tags filmworks
// @Accept json
// @Produce json
// @Param filmwork body FilmWorkRequest true "Film work with inlines"
// @Success 201 {object} utils.StandardResponse "Film work created successfully"
// @Failure 400 {object} utils.StandardResponse "Validation failed"
// @Failure 409 {object} utils.StandardResponse "Duplicate link"
// @Router /admin/filmworks [post]
func (h *FilmWorkHandler) CreateFilmWork(c *fiber.Ctx) error {
	var req FilmWorkRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	filmWork, err := req.ToModel()
	if err != nil {
		return errorResponse(c, h.logger, err, "Film work not found")
	}

	if err := h.service.CreateFilmWork(c.Context(), filmWork); err != nil {
		return errorResponse(c, h.logger, err, "Film work not found")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Film work created successfully", filmWork)
}

// UpdateFilmWork godoc
// @Summary Update a film work
// @Description Replaces the film work fields and its genre and person inlines
// @Tags filmworks
// @Accept json
// @Produce json
// @Param id path string true "Film work ID"
// @Param filmwork body FilmWorkRequest true "Film work with inlines"
// @Success 200 {object} utils.StandardResponse "Film work updated successfully"
// @Failure 400 {object} utils.StandardResponse "Validation failed"
// @Failure 404 {object} utils.StandardResponse "Film work not found"
// @Router /admin/filmworks/{id} [put]
func (h *FilmWorkHandler) UpdateFilmWork(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid film work ID")
	}

	var req FilmWorkRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	filmWork, err := req.ToModel()
	if err != nil {
		return errorResponse(c, h.logger, err, "Film work not found")
	}

	if err := h.service.UpdateFilmWork(c.Context(), id, filmWork); err != nil {
		return errorResponse(c, h.logger, err, "Film work not found")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Film work updated successfully", filmWork)
}

// DeleteFilmWork godoc
// @Summary Delete a film work
// @Description Deletes the film work together with its genre and person links
// @Tags filmworks
// @Produce json
// @Param id path string true "Film work ID"
// @Success 200 {object} utils.StandardResponse "Film work deleted successfully"
// @Failure 404 {object} utils.StandardResponse "Film work not found"
// @Router /admin/filmworks/{id} [delete]
func (h *FilmWorkHandler) DeleteFilmWork(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid film work ID")
	}

	if err := h.service.DeleteFilmWork(c.Context(), id); err != nil {
		return errorResponse(c, h.logger, err, "Film work not found")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Film work deleted successfully", nil)
}
