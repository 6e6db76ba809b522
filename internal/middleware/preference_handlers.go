package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AgusMolinaCode/BTC_DCA_Tracker.git/internal/models"
)

// GetPreferences devuelve las preferencias guardadas del usuario
func GetPreferences(c *gin.Context) {
	prefs, err := prefsRepo.GetPreferences()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// UpdatePreferences guarda las preferencias del usuario y aplica el flag de
// auto-refresco sobre el actualizador de precios
func UpdatePreferences(c *gin.Context) {
	var prefs models.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prefs.Currency = strings.ToUpper(prefs.Currency)
	if !models.IsSupportedCurrency(prefs.Currency) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Moneda no soportada: %s", prefs.Currency)})
		return
	}

	if err := prefsRepo.SavePreferences(&prefs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// El auto-refresco se prende o apaga según la preferencia guardada
	if prefs.AutoRefresh {
		priceUpdaterInstance.Start()
	} else {
		priceUpdaterInstance.Stop()
	}

	c.JSON(http.StatusOK, gin.H{"message": "Preferencias guardadas", "preferences": prefs})
}
