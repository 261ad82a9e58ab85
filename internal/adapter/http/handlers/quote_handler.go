package handlers

import (
	"net/http"

	request "quotedesk/internal/adapter/http/dto/request"
	response "quotedesk/internal/adapter/http/dto/response"
	"quotedesk/internal/domain/pricing"
	"quotedesk/internal/usecase"
	"quotedesk/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_PAYLOAD", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles pricing: saving quotes (promotion or standalone) and
// pure pricing previews.

type QuoteHandler struct {
	usecase usecase.IRecordUseCase
}

func NewQuoteHandler(uc usecase.IRecordUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// SaveQuote upserts a quote. With a target_id it promotes (or recreates) that
// record; without one it creates a standalone quote. Financials are computed
// server-side from the submitted form so the persisted snapshot always
// matches the submitted inputs.
func (h *QuoteHandler) SaveQuote(c *gin.Context) {
	var payload request.QuoteFormRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	record, err := h.usecase.SaveQuote(c.Request.Context(), payload.ResolveTargetID(), payload.ToQuotePayload())
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRecord(record))
}

// PreviewPricing recomputes the financial breakdown for the submitted form
// state without touching any record. The presentation layer calls it on
// every input change.
func (h *QuoteHandler) PreviewPricing(c *gin.Context) {
	var payload request.QuoteFormRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	in := payload.ResolvePricingInput()
	c.JSON(http.StatusOK, response.FromPricing(in.Lines, pricing.Calculate(in)))
}
