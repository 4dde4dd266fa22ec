package handler

import (
	"go-commerce-ledger/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type TokenHandler struct {
	service service.TokenService
}

func NewTokenHandler(s service.TokenService) *TokenHandler {
	return &TokenHandler{service: s}
}

func (h *TokenHandler) Balance(c *fiber.Ctx) error {
	balance, err := h.service.BalanceOf(c.Params("holder"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"holder": c.Params("holder"), "balance": balance})
}

func (h *TokenHandler) Supply(c *fiber.Ctx) error {
	total, err := h.service.TotalSupply()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"total_supply": total})
}

func (h *TokenHandler) Allowance(c *fiber.Ctx) error {
	allowance, err := h.service.Allowance(c.Params("owner"), c.Params("spender"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{
		"owner":     c.Params("owner"),
		"spender":   c.Params("spender"),
		"allowance": allowance,
	})
}

// Approve grants the spender (normally the purchase orchestrator) an
// allowance on the caller's own balance.
func (h *TokenHandler) Approve(c *fiber.Ctx) error {
	var req struct {
		Spender string          `json:"spender"`
		Amount  decimal.Decimal `json:"amount"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Spender == "" {
		req.Spender = service.OrchestratorWriter
	}

	if err := h.service.Approve(getCaller(c).AccountID, req.Spender, req.Amount); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Allowance set"})
}

// Transfer moves balance from the caller's own account.
func (h *TokenHandler) Transfer(c *fiber.Ctx) error {
	var req struct {
		To     string          `json:"to"`
		Amount decimal.Decimal `json:"amount"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.Transfer(getCaller(c).AccountID, req.To, req.Amount); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Transfer completed"})
}
