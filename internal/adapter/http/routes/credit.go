package routes

import (
	"financeira_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCreditRequests = "/credit-requests"
	PathAnalysis       = "/analysis"
)

func addCreditRoutes(rg *gin.RouterGroup, creditHandler *handlers.CreditRequestHandler, analysisHandler *handlers.AnalysisHandler, disbursementHandler *handlers.DisbursementHandler) {
	creditRequests := rg.Group(PathCreditRequests)
	{
		creditRequests.POST("", creditHandler.CreateCreditRequest)
		creditRequests.GET("", creditHandler.ListCreditRequests)
		creditRequests.GET("/:id", creditHandler.GetCreditRequest)
		creditRequests.POST("/:id/submit", creditHandler.SubmitCreditRequest)
		creditRequests.POST("/:id/cancel", creditHandler.CancelCreditRequest)
		creditRequests.POST("/:id/analysis-ready", creditHandler.MarkAnalysisReady)
		creditRequests.POST("/:id/disburse", disbursementHandler.Disburse)
	}

	analysis := rg.Group(PathAnalysis)
	{
		analysis.GET("/queue", analysisHandler.ListQueue)
		analysis.POST("/:id/lock", analysisHandler.AcquireLock)
		analysis.PATCH("/:id/approve", analysisHandler.Approve)
		analysis.PATCH("/:id/reject", analysisHandler.Reject)
		analysis.PATCH("/:id/return", analysisHandler.ReturnForCorrection)
	}
}
