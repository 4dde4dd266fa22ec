package handler

import (
	"go-commerce-ledger/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PurchaseHandler struct {
	purchases service.PurchaseService
	invoices  service.InvoiceService
}

func NewPurchaseHandler(purchases service.PurchaseService, invoices service.InvoiceService) *PurchaseHandler {
	return &PurchaseHandler{purchases: purchases, invoices: invoices}
}

func (h *PurchaseHandler) ProcessPurchase(c *fiber.Ctx) error {
	var req struct {
		Company    string   `json:"company"`
		Client     string   `json:"client"`
		ProductIDs []uint64 `json:"product_ids"`
		Quantities []int64  `json:"quantities"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	invoiceNumber, err := h.purchases.ProcessPurchase(getCaller(c), req.Company, req.Client, req.ProductIDs, req.Quantities)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Purchase completed", "invoice_number": invoiceNumber})
}

func (h *PurchaseHandler) GetInvoice(c *fiber.Ctx) error {
	number, err := parseSeq(c.Params("number"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid invoice number"})
	}

	invoice, err := h.invoices.Get(c.Params("owner"), number)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(invoice)
}
