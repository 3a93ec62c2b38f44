package handlers

import (
	"errors"
	"strconv"
	"strings"

	"movie-admin/internal/admin"
	"movie-admin/internal/models"
	"movie-admin/internal/services"
	"movie-admin/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func parseID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// listParams reads the admin list query: paging, search, ordering and the
// admin's list filters.
func listParams(c *fiber.Ctx, a *admin.ModelAdmin) services.ListParams {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "0"))

	filters := make(map[string]string, len(a.ListFilter))
	for _, f := range a.ListFilter {
		if v := strings.TrimSpace(c.Query(f.Field)); v != "" {
			filters[f.Field] = v
		}
	}

	return services.ListParams{
		Page:    page,
		Limit:   limit,
		Search:  c.Query("search", ""),
		SortBy:  c.Query("sort_by", ""),
		Order:   c.Query("order", ""),
		Filters: filters,
	}
}

func listResponse(c *fiber.Ctx, message string, result *services.ListResult) error {
	meta := utils.CreatePaginationMeta(result.Page, result.Limit, result.Total)
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, message, result.Rows, meta)
}

// errorResponse maps service errors onto the response envelope.
func errorResponse(c *fiber.Ctx, logger *logrus.Logger, err error, notFound string) error {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		return utils.ValidationErrorResponse(c, "Validation failed", verr.Fields)
	case errors.Is(err, services.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, notFound)
	case errors.Is(err, services.ErrConflict):
		return utils.ErrorResponse(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrStorageDisabled):
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, err.Error())
	}

	logger.WithError(err).WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
	}).Error("Request failed")
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
}
