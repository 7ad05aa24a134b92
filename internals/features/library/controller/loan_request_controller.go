// file: internals/features/library/controller/loan_request_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	dto "booklend_backend/internals/features/library/dto"
	service "booklend_backend/internals/features/library/service"
	helper "booklend_backend/internals/helpers"
)

type LoanRequestsController struct {
	Service *service.LoanRequestService
}

// POST /api/books/:id/request
func (ctl *LoanRequestsController) CreateForBook(c *fiber.Ctx) error {
	bookID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return writeServiceError(c, service.ErrBookNotFound)
	}

	var p dto.LoanRequestCreateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&p); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
		}
	}

	if _, err := ctl.Service.Create(c.UserContext(), bookID, &p); err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonAck(c, fiber.StatusCreated)
}

// GET /api/requests
func (ctl *LoanRequestsController) List(c *fiber.Ctx) error {
	items, err := ctl.Service.List(c.UserContext())
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonData(c, fiber.StatusOK, items)
}

// PUT /api/requests/:id/respond
func (ctl *LoanRequestsController) Respond(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return writeServiceError(c, service.ErrRequestNotFound)
	}

	var p dto.RespondRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := ctl.Service.Respond(c.UserContext(), id, p.Accept); err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonAck(c, fiber.StatusOK)
}
