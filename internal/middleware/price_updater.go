package middleware

import (
	"github.com/AgusMolinaCode/BTC_DCA_Tracker.git/internal/database"
	"github.com/AgusMolinaCode/BTC_DCA_Tracker.git/internal/repository"
	"github.com/AgusMolinaCode/BTC_DCA_Tracker.git/internal/services"
)

// Instancias compartidas por los handlers
var (
	priceUpdaterInstance *services.PriceUpdater
	priceService         *services.BtcPriceService
	rateService          *services.ExchangeRateService
	prefsRepo            *repository.PreferencesRepository
)

// SetPriceUpdater establece la instancia del actualizador de precios
func SetPriceUpdater(updater *services.PriceUpdater) {
	priceUpdaterInstance = updater
}

// InitServices inicializa los servicios de precios y el repositorio de
// preferencias que usan los handlers
func InitServices(price *services.BtcPriceService, rates *services.ExchangeRateService) {
	priceService = price
	rateService = rates
	prefsRepo = repository.NewPreferencesRepository(database.DB)
}
