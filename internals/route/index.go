// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	libraryRoute "booklend_backend/internals/features/library/route"
	filestore "booklend_backend/internals/helpers/filestore"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, covers *filestore.Store) {
	log.Println("[INFO] Setting up LibraryRoutes...")
	libraryRoute.LibraryRoutes(app.Group("/api"), db, covers)
}
