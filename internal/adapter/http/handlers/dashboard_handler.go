package handlers

import (
	"errors"
	"net/http"

	response "quotedesk/internal/adapter/http/dto/response"
	"quotedesk/internal/usecase"
	"quotedesk/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves read-side views (dashboard, calculator pre-fill)
// and record deletion.

type DashboardHandler struct {
	usecase usecase.IRecordUseCase
}

func NewDashboardHandler(uc usecase.IRecordUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// GetDashboard returns the display-ready projection of the whole collection,
// re-derived in full on every call.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	rows, err := h.usecase.Dashboard(c.Request.Context())
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDashboardRows(rows))
}

// GetCalculatorPrefill returns the calculator state for a record: reset cost
// lines for a request, verbatim restore for a quote.
func (h *DashboardHandler) GetCalculatorPrefill(c *gin.Context) {
	form, err := h.usecase.CalculatorPrefill(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCalculatorForm(form))
}

// DeleteRecord removes a record permanently. There is no undo; clients are
// expected to confirm with the user before calling. Unknown ids are accepted
// and leave the collection unchanged.
func (h *DashboardHandler) DeleteRecord(c *gin.Context) {
	if err := h.usecase.DeleteRecord(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapRecordError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrClientNameRequired):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Client name is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRecordID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid record id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRecordNotFound):
		return pkg.NewDomainErrorSimple("RECORD_NOT_FOUND", "Record not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
