package middleware

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AgusMolinaCode/BTC_DCA_Tracker.git/internal/models"
	"github.com/AgusMolinaCode/BTC_DCA_Tracker.git/internal/parser"
	"github.com/AgusMolinaCode/BTC_DCA_Tracker.git/internal/performance"
	"github.com/AgusMolinaCode/BTC_DCA_Tracker.git/internal/services"
)

// UploadCSV recibe el export CSV del exchange y arma el análisis completo:
// parseo, clasificación, agregación y precio actual
func UploadCSV(c *gin.Context) {
	csvText, err := readCSVPayload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No se pudo leer el archivo CSV"})
		return
	}

	prefs := currentPreferences()

	// La moneda y el flag de on-chain pueden venir en la query; si no,
	// se usan las preferencias guardadas
	currency := strings.ToUpper(c.DefaultQuery("currency", prefs.Currency))
	if !models.IsSupportedCurrency(currency) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Moneda no soportada: %s", currency)})
		return
	}

	includeOnChain := prefs.IncludeOnChain
	if value, exists := c.GetQuery("include_onchain"); exists {
		includeOnChain = value == "true" || value == "1"
	}

	rows, err := parser.ParseCSV(csvText)
	if err != nil {
		if errors.Is(err, parser.ErrInvalidFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Formato CSV inválido. No se encontró la fila de encabezados"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// El precio llega ya resuelto en la moneda de análisis; si las APIs no
	// responden se usa el precio estimado y la respuesta lo marca
	priceData := priceService.GetBtcPriceWithFallback(currency)

	snapshot, err := performance.Calculate(rows, priceData.Price, includeOnChain)
	if err != nil {
		if errors.Is(err, performance.ErrNoTransactions) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No se encontraron transacciones válidas de Bitcoin en el CSV"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	snapshot.ID = uuid.NewString()
	snapshot.Currency = currency

	priceUpdaterInstance.SetAnalysis(snapshot, priceData)

	// Responder con la copia que entrega el updater: el snapshot vivo
	// queda bajo su mutex para los refrescos
	analysis, price, _ := priceUpdaterInstance.GetAnalysis()
	c.JSON(http.StatusCreated, gin.H{
		"analysis":  analysis,
		"btc_price": price,
	})
}

// GetAnalysis devuelve el análisis vivo con sus valores al último precio
func GetAnalysis(c *gin.Context) {
	analysis, price, ok := priceUpdaterInstance.GetAnalysis()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No hay un análisis cargado. Subí un CSV primero"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"analysis":     analysis,
		"btc_price":    price,
		"last_refresh": priceUpdaterInstance.GetLastRefresh(),
	})
}

// RefreshAnalysis refresca a pedido los campos dependientes del precio
func RefreshAnalysis(c *gin.Context) {
	err := priceUpdaterInstance.RefreshNow()
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoAnalysis):
			c.JSON(http.StatusNotFound, gin.H{"error": "No hay un análisis cargado. Subí un CSV primero"})
		case errors.Is(err, services.ErrRefreshInProgress):
			c.JSON(http.StatusConflict, gin.H{"error": "Ya hay un refresco en curso"})
		case errors.Is(err, services.ErrRefreshCooldown):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Esperá un momento antes de refrescar de nuevo"})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": fmt.Sprintf("Error al refrescar el precio: %v", err)})
		}
		return
	}

	analysis, price, _ := priceUpdaterInstance.GetAnalysis()
	c.JSON(http.StatusOK, gin.H{
		"analysis":     analysis,
		"btc_price":    price,
		"last_refresh": priceUpdaterInstance.GetLastRefresh(),
	})
}

// ResetAnalysis descarta el análisis vivo
func ResetAnalysis(c *gin.Context) {
	priceUpdaterInstance.ClearAnalysis()
	c.JSON(http.StatusOK, gin.H{"message": "Análisis descartado"})
}

// readCSVPayload lee el CSV del multipart (campo file) o del cuerpo crudo
func readCSVPayload(c *gin.Context) (string, error) {
	if file, err := c.FormFile("file"); err == nil {
		opened, err := file.Open()
		if err != nil {
			return "", err
		}
		defer opened.Close()

		content, err := io.ReadAll(opened)
		if err != nil {
			return "", err
		}
		return string(content), nil
	}

	content, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return "", err
	}
	if len(content) == 0 {
		return "", errors.New("el cuerpo de la solicitud está vacío")
	}
	return string(content), nil
}

// currentPreferences lee las preferencias guardadas, con valores por
// defecto si la lectura falla
func currentPreferences() *models.Preferences {
	prefs, err := prefsRepo.GetPreferences()
	if err != nil {
		return &models.Preferences{Currency: "USD"}
	}
	return prefs
}
