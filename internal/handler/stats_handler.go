package handler

import (
	"go-commerce-ledger/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StatsHandler struct {
	service service.PurchaseService
}

func NewStatsHandler(s service.PurchaseService) *StatsHandler {
	return &StatsHandler{service: s}
}

func (h *StatsHandler) Platform(c *fiber.Ctx) error {
	stats, err := h.service.PlatformStats()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(stats)
}

func (h *StatsHandler) Company(c *fiber.Ctx) error {
	stats, err := h.service.CompanyStats(c.Params("owner"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(stats)
}
