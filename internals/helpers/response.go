package helper

import (
	"github.com/gofiber/fiber/v2"
)

// Wire format mengikuti kontrak API lama: error selalu {"error": msg},
// ack mutasi selalu {"ok": true}, payload lain dikirim apa adanya.

// ✅ Ack untuk mutasi (update/delete/respond)
func JsonAck(c *fiber.Ctx, code int) error {
	return c.Status(code).JSON(fiber.Map{"ok": true})
}

// ✅ Payload sukses (detail / list / created row)
func JsonData(c *fiber.Ctx, code int, data interface{}) error {
	return c.Status(code).JSON(data)
}

// ✅ Error Response sederhana
func JsonError(c *fiber.Ctx, code int, message string) error {
	if message == "" {
		message = "internal server error"
	}
	return c.Status(code).JSON(fiber.Map{"error": message})
}
