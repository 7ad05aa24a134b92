package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"

	"booklend_backend/internals/configs"
	database "booklend_backend/internals/databases"
	filestore "booklend_backend/internals/helpers/filestore"
	middlewares "booklend_backend/internals/middlewares"
	routes "booklend_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
		// cap upload di transport layer, sebelum handler jalan
		BodyLimit:             filestore.MaxCoverBytes,
		DisableStartupMessage: true,
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching

	// 🔎 Request-ID + timing (observability ringan)
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + schema. Gagal di sini = fatal, jangan serve.
	db, err := database.ConnectDB(configs.DatabaseURL())
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	database.TunePool(db)
	if err := database.Migrate(db); err != nil {
		log.Fatalf("❌ Gagal migrasi schema: %v", err)
	}

	// 📁 file store untuk cover upload
	covers, err := filestore.New(configs.UploadDir(), filestore.PublicPrefix)
	if err != nil {
		log.Fatalf("❌ Gagal menyiapkan upload dir: %v", err)
	}

	// ❤️ Health check (anti-cold start)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	// 🖼 cover image sebagai static file, prefix sama dengan image_path di DB
	app.Static(filestore.PublicPrefix, covers.Dir())

	// ✅ Routes
	routes.SetupRoutes(app, db, covers)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.Port()

	// Start server non-blocking
	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
