package http

import "github.com/gin-gonic/gin"

// registerRateRoutes registers the rate quote endpoint.
func registerRateRoutes(api *gin.RouterGroup, handler *Handler) {
	if handler == nil {
		return
	}
	api.POST("/rates", handler.QuoteRates)
}

// registerTariffRoutes registers the tariff administration endpoints.
func registerTariffRoutes(api *gin.RouterGroup, handler *TariffsHandler) {
	if handler == nil {
		return
	}
	tariffs := api.Group("/tariffs")
	tariffs.GET("", handler.GetSummary)
	tariffs.PUT("", handler.ReplaceTariffs)
	tariffs.GET("/regions/:region", handler.GetRegion)
}
