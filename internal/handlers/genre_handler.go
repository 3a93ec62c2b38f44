package handlers

import (
	"movie-admin/internal/admin"
	"movie-admin/internal/services"
	"movie-admin/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type GenreHandler struct {
	service services.GenreService
	admin   *admin.ModelAdmin
	logger  *logrus.Logger
}

func NewGenreHandler(service services.GenreService, a *admin.ModelAdmin, logger *logrus.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		admin:   a,
		logger:  logger,
	}
}

// ListGenres godoc
// @Summary List genres
// @Description Admin list page of genres with search, sorting and pagination
// @Tags genres
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (defaults to list_per_page)"
// @Param search query string false "Search by name or description"
// @Param sort_by query string false "Sort by column (name, description)"
// @Param order query string false "Sort order (ASC/DESC)"
// @Success 200 {object} utils.StandardResponse "List rows"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /admin/genres [get]
func (h *GenreHandler) ListGenres(c *fiber.Ctx) error {
	result, err := h.service.ListGenres(c.Context(), listParams(c, h.admin))
	if err != nil {
		return errorResponse(c, h.logger, err, "Genre not found")
	}
	return listResponse(c, "Genres retrieved successfully", result)
}

// GetGenre godoc
// @Summary Get genre by ID
// @Tags genres
// @Produce json
// @Param id path string true "Genre ID"
// @Success 200 {object} utils.StandardResponse "Genre details"
// @Failure 400 {object} utils.StandardResponse "Invalid genre ID"
// @Failure 404 {object} utils.StandardResponse "Genre not found"
// @Router /admin/genres/{id} [get]
func (h *GenreHandler) GetGenre(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}

	genre, err := h.service.GetGenreByID(c.Context(), id)
	if err != nil {
		return errorResponse(c, h.logger, err, "Genre not found")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Genre retrieved successfully", genre)
}

// CreateGenre godoc
// @Summary Create a genre
// @Tags genres
// @Accept json
// @Produce json
// @Param genre body GenreRequest true "Genre"
// @Success 201 {object} utils.StandardResponse "Genre created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Router /admin/genres [post]
func (h *GenreHandler) CreateGenre(c *fiber.Ctx) error {
	var req GenreRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	genre := req.ToModel()
	if err := h.service.CreateGenre(c.Context(), genre); err != nil {
		return errorResponse(c, h.logger, err, "Genre not found")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Genre created successfully", genre)
}

// UpdateGenre godoc
// @Summary Update a genre
// @Tags genres
// @Accept json
// @Produce json
// @Param id path string true "Genre ID"
// @Param genre body GenreRequest true "Genre"
// @Success 200 {object} utils.StandardResponse "Genre updated successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Genre not found"
// @Router /admin/genres/{id} [put]
func (h *GenreHandler) UpdateGenre(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}

	var req GenreRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	genre := req.ToModel()
	if err := h.service.UpdateGenre(c.Context(), id, genre); err != nil {
		return errorResponse(c, h.logger, err, "Genre not found")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Genre updated successfully", genre)
}

// DeleteGenre godoc
// @Summary Delete a genre
// @Description Deletes the genre and unlinks it from every film work
// @Tags genres
// @Produce json
// @Param id path string true "Genre ID"
// @Success 200 {object} utils.StandardResponse "Genre deleted successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid genre ID"
// @Failure 404 {object} utils.StandardResponse "Genre not found"
// @Router /admin/genres/{id} [delete]
func (h *GenreHandler) DeleteGenre(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}

	if err := h.service.DeleteGenre(c.Context(), id); err != nil {
		return errorResponse(c, h.logger, err, "Genre not found")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Genre deleted successfully", nil)
}

// AutocompleteGenres godoc
// @Summary Autocomplete genres
// @Description Lookup used by the genre inline of the film work form
// @Tags genres
// @Produce json
// @Param term query string false "Search term"
// @Success 200 {object} utils.StandardResponse "Matching genres"
// @Router /admin/genres/autocomplete [get]
func (h *GenreHandler) AutocompleteGenres(c *fiber.Ctx) error {
	items, err := h.service.AutocompleteGenres(c.Context(), c.Query("term"))
	if err != nil {
		return errorResponse(c, h.logger, err, "Genre not found")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Genres retrieved successfully", items)
}
