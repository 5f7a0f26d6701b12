package api

import (
	"strings"

	"github.com/aldertane/vesta/internal/services"
	"github.com/gofiber/fiber/v2"
)

type registerInput struct {
	credentialsInput
	DisplayName string `json:"display_name" form:"display_name"`
}

func parseCredentials(c *fiber.Ctx) (registerInput, error) {
	input := registerInput{}
	if err := c.BodyParser(&input); err != nil {
		return registerInput{}, err
	}

	email, password, err := services.NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return registerInput{}, err
	}
	input.Email = email
	input.Password = password
	input.ConfirmPassword = strings.TrimSpace(input.ConfirmPassword)
	input.DisplayName = strings.TrimSpace(input.DisplayName)
	input.RememberMe = input.RememberMe || parseBoolValue(c.FormValue("remember_me"))

	return input, nil
}
