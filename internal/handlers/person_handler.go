package handlers

import (
	"movie-admin/internal/admin"
	"movie-admin/internal/services"
	"movie-admin/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PersonHandler struct {
	service services.PersonService
	admin   *admin.ModelAdmin
	logger  *logrus.Logger
}

func NewPersonHandler(service services.PersonService, a *admin.ModelAdmin, logger *logrus.Logger) *PersonHandler {
	return &PersonHandler{
		service: service,
		admin:   a,
		logger:  logger,
	}
}

// ListPersons godoc
// @Summary List persons
// @Tags persons
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (defaults to list_per_page)"
// @Param search query string false "Search by full name"
// @Param sort_by query string false "Sort by column (full_name)"
// @Param order query string false "Sort order (ASC/DESC)"
// @Success 200 {object} utils.StandardResponse "List rows"
// @Router /admin/persons [get]
func (h *PersonHandler) ListPersons(c *fiber.Ctx) error {
	result, err := h.service.ListPersons(c.Context(), listParams(c, h.admin))
	if err != nil {
		return errorResponse(c, h.logger, err, "Person not found")
	}
	return listResponse(c, "Persons retrieved successfully", result)
}

// GetPerson godoc
// @Summary Get person by ID
// @Tags persons
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} utils.StandardResponse "Person details"
// @Failure 404 {object} utils.StandardResponse "Person not found"
// @Router /admin/persons/{id} [get]
func (h *PersonHandler) GetPerson(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid person ID")
	}

	person, err := h.service.GetPersonByID(c.Context(), id)
	if err != nil {
		return errorResponse(c, h.logger, err, "Person not found")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Person retrieved successfully", person)
}

// CreatePerson godoc
// @Summary Create a person
// @Tags persons
// @Accept json
// @Produce json
// @Param person body PersonRequest true "Person"
// @Success 201 {object} utils.StandardResponse "Person created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Router /admin/persons [post]
func (h *PersonHandler) CreatePerson(c *fiber.Ctx) error {
	var req PersonRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	person := req.ToModel()
	if err := h.service.CreatePerson(c.Context(), person); err != nil {
		return errorResponse(c, h.logger, err, "Person not found")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Person created successfully", person)
}

// UpdatePerson godoc
// @Summary Update a person
// @Tags persons
// @Accept json
// @Produce json
// @Param id path string true "Person ID"
// @Param person body PersonRequest true "Person"
// @Success 200 {object} utils.StandardResponse "Person updated successfully"
// @Failure 404 {object} utils.StandardResponse "Person not found"
// @Router /admin/persons/{id} [put]
func (h *PersonHandler) UpdatePerson(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid person ID")
	}

	var req PersonRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	person := req.ToModel()
	if err := h.service.UpdatePerson(c.Context(), id, person); err != nil {
		return errorResponse(c, h.logger, err, "Person not found")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Person updated successfully", person)
}

// DeletePerson godoc
// @Summary Delete a person
// @Description Deletes the person and every role they hold in film works
// @Tags persons
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} utils.StandardResponse "Person deleted successfully"
// @Failure 404 {object} utils.StandardResponse "Person not found"
// @Router /admin/persons/{id} [delete]
func (h *PersonHandler) DeletePerson(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid person ID")
	}

	if err := h.service.DeletePerson(c.Context(), id); err != nil {
		return errorResponse(c, h.logger, err, "Person not found")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Person deleted successfully", nil)
}

// AutocompletePersons godoc
// @Summary Autocomplete persons
// @Tags persons
// @Produce json
// @Param term query string false "Search term"
// @Success 200 {object} utils.StandardResponse "Matching persons"
// @Router /admin/persons/autocomplete [get]
func (h *PersonHandler) AutocompletePersons(c *fiber.Ctx) error {
	items, err := h.service.AutocompletePersons(c.Context(), c.Query("term"))
	if err != nil {
		return errorResponse(c, h.logger, err, "Person not found")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Persons retrieved successfully", items)
}
