package handler

import (
	"go-commerce-ledger/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CompanyHandler struct {
	service service.CompanyService
}

func NewCompanyHandler(s service.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: s}
}

func (h *CompanyHandler) Register(c *fiber.Ctx) error {
	var req struct {
		Owner string `json:"owner"`
		Name  string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Owner == "" {
		// Owners register their own company by default
		req.Owner = getCaller(c).AccountID
	}

	company, err := h.service.Register(getCaller(c), req.Owner, req.Name)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Company registered", "data": company})
}

func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	company, err := h.service.Get(c.Params("owner"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(company)
}

func (h *CompanyHandler) Deactivate(c *fiber.Ctx) error {
	company, err := h.service.Deactivate(getCaller(c), c.Params("owner"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Company deactivated", "data": company})
}
