package handler

import (
	"strconv"

	"go-commerce-ledger/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

func parseSeq(raw string) (uint64, error) {
	return strconv.ParseUint(raw, 10, 64)
}

func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var req struct {
		Name     string          `json:"name"`
		Price    decimal.Decimal `json:"price"`
		ImageURL string          `json:"image_url"`
		Stock    int64           `json:"stock"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	productID, err := h.service.CreateProduct(getCaller(c), c.Params("owner"), req.Name, req.Price, req.ImageURL, req.Stock)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Product created", "product_id": productID})
}

func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	seq, err := parseSeq(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	product, err := h.service.GetProduct(c.Params("owner"), seq)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(product)
}

func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts(c.Params("owner"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(products)
}
