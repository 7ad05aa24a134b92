package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	service "booklend_backend/internals/features/library/service"
	helper "booklend_backend/internals/helpers"
	filestore "booklend_backend/internals/helpers/filestore"
)

// writeServiceError memetakan sentinel error service ke status code.
// Selain yang dikenal → 500 generic, penyebab asli cuma masuk log server.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrTitleRequired):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrBookNotFound),
		errors.Is(err, service.ErrRequestNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, filestore.ErrCoverTooLarge):
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, err.Error())
	default:
		log.Printf("[LIBRARY] ❌ internal error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
