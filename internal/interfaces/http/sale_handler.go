package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/sales"
)

// SaleHandler maneja las peticiones HTTP del motor de ventas (protegido).
type SaleHandler struct {
	recordUC  *sales.RecordSaleUseCase
	listUC    *sales.ListSalesUseCase
	receiptUC *sales.ReceiptUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(
	recordUC *sales.RecordSaleUseCase,
	listUC *sales.ListSalesUseCase,
	receiptUC *sales.ReceiptUseCase,
) *SaleHandler {
	return &SaleHandler{recordUC: recordUC, listUC: listUC, receiptUC: receiptUC}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Deduce stock y asienta la venta de forma atómica. Si el stock no alcanza responde 422 sin efectos; bajo contención prolongada responde 503 y el cliente puede reintentar.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sale, err := h.recordUC.RecordSale(c.Context(), in.UserID, in.ProductID, in.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SaleResponse{
		SaleID:    sale.ID,
		ProductID: sale.ProductID,
		Quantity:  sale.Quantity,
		UnitPrice: sale.UnitPrice,
		SoldAt:    sale.SoldAt,
	})
}

// List godoc
// @Summary      Listar ventas
// @Description  Ventas ordenadas por fecha descendente. search coincide por subcadena contra comprador, producto o precio total.
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Texto libre"
// @Success      200     {object}  dto.SaleListResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.listUC.List(c.Context(), c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Comprobante de venta en PDF
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	pdf, err := h.receiptUC.GetReceiptPDF(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="venta_%d.pdf"`, id))
	return c.Send(pdf)
}
