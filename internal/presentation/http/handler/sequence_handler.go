package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/madhuram-pos/pos-api/internal/application/service"
	"github.com/madhuram-pos/pos-api/internal/presentation/http/dto/response"
)

// SequenceHandler handles bill number sequence HTTP requests
type SequenceHandler struct {
	sequenceService *service.SequenceService
}

// NewSequenceHandler creates a new sequence handler
func NewSequenceHandler(sequenceService *service.SequenceService) *SequenceHandler {
	return &SequenceHandler{sequenceService: sequenceService}
}

// Next handles POST /api/v1/sequence/next. Issuing consumes the number
// whether or not the caller uses it.
func (h *SequenceHandler) Next(c *gin.Context) {
	number, err := h.sequenceService.IssueNext(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Number issued", gin.H{"number": number})
}

// Reset handles POST /api/v1/sequence/reset
func (h *SequenceHandler) Reset(c *gin.Context) {
	if err := h.sequenceService.Reset(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Counter reset", nil)
}
