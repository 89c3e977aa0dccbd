package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/madhuram-pos/pos-api/internal/application/service"
	"github.com/madhuram-pos/pos-api/internal/domain/entity"
	"github.com/madhuram-pos/pos-api/internal/presentation/http/dto/request"
	"github.com/madhuram-pos/pos-api/internal/presentation/http/dto/response"
)

// BillHandler handles bill ledger HTTP requests
type BillHandler struct {
	billingService *service.BillingService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billingService *service.BillingService) *BillHandler {
	return &BillHandler{billingService: billingService}
}

// List handles GET /api/v1/bills
func (h *BillHandler) List(c *gin.Context) {
	bills := h.billingService.ListBills(c.Request.Context())
	response.OK(c, "Bills retrieved", bills)
}

// Finalize handles POST /api/v1/bills
func (h *BillHandler) Finalize(c *gin.Context) {
	var req request.FinalizeBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	lines, err := toOrderLines(req.Items)
	if err != nil {
		response.Error(c, err)
		return
	}

	bill, err := h.billingService.FinalizeBill(c.Request.Context(), &service.FinalizeBillInput{
		Lines:        lines,
		OrderType:    req.OrderType,
		Cashier:      req.Cashier,
		CustomerName: req.CustomerName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Bill finalized", bill)
}

// Preview handles POST /api/v1/bills/preview
func (h *BillHandler) Preview(c *gin.Context) {
	var req request.PreviewTotalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	lines, err := toOrderLines(req.Items)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.billingService.PreviewTotals(&service.FinalizeBillInput{Lines: lines})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Totals computed", gin.H{
		"subtotal":    float64(result.Subtotal) / 100,
		"cgst":        float64(result.CGST) / 100,
		"sgst":        float64(result.SGST) / 100,
		"round_off":   float64(result.RoundOff) / 100,
		"grand_total": float64(result.GrandTotal) / 100,
	})
}

// ClearAll handles DELETE /api/v1/bills
func (h *BillHandler) ClearAll(c *gin.Context) {
	if err := h.billingService.ClearAll(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Bill history cleared", nil)
}

// toOrderLines converts request lines (decimal rupees) to domain lines
// (paise), validating each.
func toOrderLines(items []request.OrderLineRequest) ([]entity.OrderLine, error) {
	lines := make([]entity.OrderLine, 0, len(items))
	for _, item := range items {
		line, err := entity.NewOrderLine(item.Name, int64(item.Price*100+0.5), item.Category, item.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
