package handler

import (
	"go-commerce-ledger/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ClientHandler struct {
	service service.ClientService
}

func NewClientHandler(s service.ClientService) *ClientHandler {
	return &ClientHandler{service: s}
}

func (h *ClientHandler) Register(c *fiber.Ctx) error {
	var req struct {
		Client string `json:"client"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	client, err := h.service.Register(getCaller(c), c.Params("owner"), req.Client)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Client registered", "data": client})
}

func (h *ClientHandler) Get(c *fiber.Ctx) error {
	client, err := h.service.Get(c.Params("owner"), c.Params("client"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(client)
}
