package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AgusMolinaCode/BTC_DCA_Tracker.git/internal/models"
)

// GetBtcPrice devuelve el precio actual de Bitcoin en la moneda pedida
func GetBtcPrice(c *gin.Context) {
	prefs := currentPreferences()

	currency := strings.ToUpper(c.DefaultQuery("currency", prefs.Currency))
	if !models.IsSupportedCurrency(currency) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Moneda no soportada: %s", currency)})
		return
	}

	data, err := priceService.GetBtcPrice(currency)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": fmt.Sprintf("No se pudo obtener el precio de Bitcoin: %v", err)})
		return
	}

	c.JSON(http.StatusOK, data)
}

// GetExchangeRates devuelve las tasas de cambio relativas a USD
func GetExchangeRates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"base":  "USD",
		"rates": rateService.GetRates(),
	})
}

// GetCurrencies devuelve la lista de monedas soportadas para el análisis
func GetCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, models.SupportedCurrencies)
}
