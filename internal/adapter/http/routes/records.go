package routes

import (
	"quotedesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRequests  = "/requests"
	PathQuotes    = "/quotes"
	PathRecords   = "/records"
	PathDashboard = "/dashboard"
)

func addRecordRoutes(
	rg *gin.RouterGroup,
	requestHandler *handlers.RequestHandler,
	quoteHandler *handlers.QuoteHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	requests := rg.Group(PathRequests)
	{
		requests.POST("", requestHandler.CreateRequest)
		requests.POST("/import", requestHandler.ImportCSV)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.SaveQuote)
		quotes.POST("/preview", quoteHandler.PreviewPricing)
	}

	records := rg.Group(PathRecords)
	{
		records.GET("/:id/calculator", dashboardHandler.GetCalculatorPrefill)
		records.DELETE("/:id", dashboardHandler.DeleteRecord)
	}

	rg.GET(PathDashboard, dashboardHandler.GetDashboard)
}
