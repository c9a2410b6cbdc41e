package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"ziada-travel/types"
)

// ServerController answers operational endpoints: the health probe and the
// plaintext feed placeholders.
type ServerController struct {
	SiteURL string
}

func NewServerController(siteURL string) *ServerController {
	return &ServerController{SiteURL: siteURL}
}

// Healthz reports liveness for load balancers and uptime checks.
func (sc *ServerController) Healthz(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "ok",
		Data:    nil,
	})
}

// RSS is a plaintext placeholder until a real feed ships.
func (sc *ServerController) RSS(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(fmt.Sprintf("RSS feed coming soon. Visit %s/blog/ for the latest articles.\n", sc.SiteURL))
}

// Sitemap is a plaintext placeholder until a real sitemap ships.
func (sc *ServerController) Sitemap(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(fmt.Sprintf("Sitemap coming soon. Start at %s/.\n", sc.SiteURL))
}
