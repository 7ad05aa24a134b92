package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	libController "booklend_backend/internals/features/library/controller"
	"booklend_backend/internals/features/library/service"
	filestore "booklend_backend/internals/helpers/filestore"
)

// Panggil: route.LibraryRoutes(app.Group("/api"), db, covers)
// Endpoint hasil:
//
//	/api/books
//	/api/books/:id
//	/api/books/:id/request
//	/api/requests
//	/api/requests/:id/respond
func LibraryRoutes(r fiber.Router, db *gorm.DB, covers *filestore.Store) {
	booksCtl := &libController.BooksController{
		Service:   &service.BookService{DB: db, Covers: covers},
		Validator: validator.New(),
	}
	requestsCtl := &libController.LoanRequestsController{
		Service: &service.LoanRequestService{DB: db},
	}

	// Books
	books := r.Group("/books")
	books.Post("/", booksCtl.Create)
	books.Get("/", booksCtl.List)
	books.Get("/:id", booksCtl.GetByID)
	books.Put("/:id", booksCtl.Update)
	books.Delete("/:id", booksCtl.Delete)
	books.Post("/:id/request", requestsCtl.CreateForBook)

	// Loan requests
	requests := r.Group("/requests")
	requests.Get("/", requestsCtl.List)
	requests.Put("/:id/respond", requestsCtl.Respond)
}
