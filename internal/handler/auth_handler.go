package handler

import (
	"strings"

	"go-commerce-ledger/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	resp, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

func (h *AuthHandler) ValidateToken(c *fiber.Ctx) error {
	var req struct {
		Token string `json:"token"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	token := req.Token
	if token == "" {
		// Fall back to the Authorization header
		parts := strings.Split(c.Get("Authorization"), " ")
		if len(parts) == 2 {
			token = parts[1]
		}
	}

	user, err := h.service.ValidateToken(token)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"user": user, "privileges": user.GetPrivilegeCodes()})
}

func (h *AuthHandler) RegisterUser(c *fiber.Ctx) error {
	var req service.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	user, err := h.service.RegisterUser(getCaller(c), &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "User created", "data": user})
}
