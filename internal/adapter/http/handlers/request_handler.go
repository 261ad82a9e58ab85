package handlers

import (
	"io"
	"net/http"

	request "quotedesk/internal/adapter/http/dto/request"
	response "quotedesk/internal/adapter/http/dto/response"
	"quotedesk/internal/usecase"
	"quotedesk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequestPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errUnreadableImportBody  = pkg.NewDomainErrorSimple("UNREADABLE_IMPORT_BODY", "Could not read CSV body", http.StatusBadRequest)
)

// RequestHandler handles intake of new client requests: the manual form and
// CSV bulk import.

type RequestHandler struct {
	usecase usecase.IRecordUseCase
}

func NewRequestHandler(uc usecase.IRecordUseCase) *RequestHandler {
	return &RequestHandler{usecase: uc}
}

// CreateRequest persists one manually entered request record.
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var payload request.CreateRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	record, err := h.usecase.CreateRequest(c.Request.Context(), payload.ToPayload())
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRecord(record))
}

// ImportCSV ingests a raw CSV body and reports how many requests were added.
// Row-level issues are never errors: malformed rows are skipped and simply
// missing from the count.
func (h *RequestHandler) ImportCSV(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(errUnreadableImportBody.HTTPStatus, errUnreadableImportBody.ToHTTPError())
		return
	}

	added, err := h.usecase.ImportCSV(c.Request.Context(), string(body))
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ImportResponse{Added: added})
}
