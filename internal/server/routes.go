package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/AgusMolinaCode/BTC_DCA_Tracker.git/internal/middleware"
	"github.com/AgusMolinaCode/BTC_DCA_Tracker.git/internal/services"
)

// RegisterRoutes registra todas las rutas de la API y conecta los servicios
// con los handlers
func RegisterRoutes(router *gin.Engine, price *services.BtcPriceService, rates *services.ExchangeRateService) {
	middleware.InitServices(price, rates)

	// Análisis de rendimiento DCA
	router.POST("/analysis", middleware.UploadCSV)
	router.GET("/analysis", middleware.GetAnalysis)
	router.DELETE("/analysis", middleware.ResetAnalysis)
	router.POST("/analysis/refresh", middleware.RefreshAnalysis)

	// Precio y monedas
	router.GET("/price", middleware.GetBtcPrice)
	router.GET("/rates", middleware.GetExchangeRates)
	router.GET("/currencies", middleware.GetCurrencies)

	// Preferencias del usuario
	router.GET("/preferences", middleware.GetPreferences)
	router.PUT("/preferences", middleware.UpdatePreferences)
}
