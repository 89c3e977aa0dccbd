package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/madhuram-pos/pos-api/internal/application/service"
	"github.com/madhuram-pos/pos-api/internal/domain/entity"
	"github.com/madhuram-pos/pos-api/internal/presentation/http/dto/request"
	"github.com/madhuram-pos/pos-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles thermal printer HTTP requests
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// Status handles GET /api/v1/printer/status
func (h *PrinterHandler) Status(c *gin.Context) {
	response.OK(c, "Printer status", gin.H{"connected": h.printerService.GetStatus()})
}

// Test handles POST /api/v1/printer/test
func (h *PrinterHandler) Test(c *gin.Context) {
	if err := h.printerService.TestPrint(); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Test page printed", nil)
}

// PrintBill handles POST /api/v1/printer/bill
func (h *PrinterHandler) PrintBill(c *gin.Context) {
	var req request.PrintBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Bill ID is required")
		return
	}

	receipt, err := h.printerService.PrintBill(c.Request.Context(), req.BillID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Bill printed", receipt)
}

// PrintKOT handles POST /api/v1/printer/kot
func (h *PrinterHandler) PrintKOT(c *gin.Context) {
	var req request.PrintKOTRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	lines := make([]entity.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		line, err := entity.NewOrderLine(item.Name, int64(item.Price*100+0.5), item.Category, item.Quantity)
		if err != nil {
			response.Error(c, err)
			return
		}
		lines = append(lines, line)
	}

	if err := h.printerService.PrintKOT(req.KOTNumber, req.OrderType, lines); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "KOT printed", nil)
}
