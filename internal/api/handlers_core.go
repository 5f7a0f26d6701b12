package api

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) render(c *fiber.Ctx, name string, data fiber.Map) error {
	tmpl, ok := handler.templates[name]
	if !ok {
		return c.Status(fiber.StatusInternalServerError).SendString("template not found")
	}
	payload := handler.withTemplateDefaults(c, data)
	var output bytes.Buffer
	if err := tmpl.ExecuteTemplate(&output, "base", payload); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to render template")
	}
	c.Type("html", "utf-8")
	return c.Send(output.Bytes())
}

func (handler *Handler) withTemplateDefaults(c *fiber.Ctx, data fiber.Map) fiber.Map {
	payload := fiber.Map{
		"CurrentPath": c.Path(),
		"CSRFToken":   csrfToken(c),
		"Theme":       "light",
	}
	if user, ok := currentUser(c); ok {
		payload["CurrentUser"] = user
		payload["Theme"] = user.Theme
	}
	for key, value := range data {
		payload[key] = value
	}
	return payload
}
