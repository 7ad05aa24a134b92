// file: internals/features/library/controller/book_controller.go
package controller

import (
	"mime/multipart"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	dto "booklend_backend/internals/features/library/dto"
	service "booklend_backend/internals/features/library/service"
	helper "booklend_backend/internals/helpers"
)

type BooksController struct {
	Service   *service.BookService
	Validator *validator.Validate
}

func strPtrIfNotEmpty(s string) *string {
	v := strings.TrimSpace(s)
	if v == "" {
		return nil
	}
	return &v
}

// POST /api/books
func (ctl *BooksController) Create(c *fiber.Ctx) error {
	ct := strings.ToLower(strings.TrimSpace(c.Get("Content-Type")))
	isMultipart := strings.HasPrefix(ct, "multipart/form-data")

	// ✅ multipart JANGAN lewat BodyParser, ambil form value langsung
	var p dto.BookCreateRequest
	if isMultipart {
		p.Title = strings.TrimSpace(c.FormValue("title"))
		p.Author = strPtrIfNotEmpty(c.FormValue("author"))
		p.Description = strPtrIfNotEmpty(c.FormValue("description"))
	} else {
		if err := c.BodyParser(&p); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
		}
	}
	p.Normalize()

	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, service.ErrTitleRequired.Error())
	}

	var cover *multipart.FileHeader
	if isMultipart {
		if fh, err := c.FormFile("cover"); err == nil && fh != nil {
			cover = fh
		}
	}

	ent, err := ctl.Service.Create(c.UserContext(), &p, cover)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonData(c, fiber.StatusCreated, ent)
}

// GET /api/books
func (ctl *BooksController) List(c *fiber.Ctx) error {
	items, err := ctl.Service.List(c.UserContext())
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonData(c, fiber.StatusOK, items)
}

// GET /api/books/:id
func (ctl *BooksController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		// id non-uuid diperlakukan sama dengan id yang tidak ada
		return writeServiceError(c, service.ErrBookNotFound)
	}
	ent, err := ctl.Service.Get(c.UserContext(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonData(c, fiber.StatusOK, ent)
}

// PUT /api/books/:id — full replace, id yang tidak ada tetap {ok:true}
func (ctl *BooksController) Update(c *fiber.Ctx) error {
	var p dto.BookUpdateRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonAck(c, fiber.StatusOK) // no-op, tanggung jawab caller
	}

	if err := ctl.Service.Update(c.UserContext(), id, &p); err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonAck(c, fiber.StatusOK)
}

// DELETE /api/books/:id
func (ctl *BooksController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonAck(c, fiber.StatusOK)
	}
	if err := ctl.Service.Delete(c.UserContext(), id); err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonAck(c, fiber.StatusOK)
}
