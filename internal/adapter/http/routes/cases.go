package routes

import (
	"damage_triage/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCases  = "/cases"
	PathPrices = "/prices"
)

func addCaseRoutes(rg *gin.RouterGroup, caseHandler *handlers.CaseHandler, priceHandler *handlers.PriceHandler, limit gin.HandlerFunc) {
	cases := rg.Group(PathCases)
	{
		cases.POST("", limit, caseHandler.CreateCase)
		cases.GET("", caseHandler.ListCases)
		cases.GET("/:id", caseHandler.GetCase)
		cases.PATCH("/:id", caseHandler.UpdateCaseStatus)
	}

	rg.GET(PathPrices, limit, priceHandler.GetPrices)
}
