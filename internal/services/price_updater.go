package services

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/AgusMolinaCode/BTC_DCA_Tracker.git/internal/models"
	"github.com/AgusMolinaCode/BTC_DCA_Tracker.git/internal/performance"
)

var (
	// ErrNoAnalysis indica que todavía no se cargó ningún CSV para analizar
	ErrNoAnalysis = errors.New("no hay un análisis cargado para refrescar")
	// ErrRefreshInProgress indica que ya hay un refresco en curso; los
	// refrescos sobre el mismo análisis nunca se intercalan
	ErrRefreshInProgress = errors.New("ya hay un refresco de precio en curso")
	// ErrRefreshCooldown indica que el refresco manual se pidió demasiado pronto
	ErrRefreshCooldown = errors.New("el refresco manual todavía está en enfriamiento")
)

// Tiempo mínimo entre refrescos manuales
const manualRefreshCooldown = 60 * time.Second

// PriceUpdater mantiene el análisis vivo (hay a lo sumo uno por vez) y
// refresca periódicamente sus campos dependientes del precio. El refresco
// solo recalcula valores con el precio nuevo, nunca vuelve a parsear ni a
// clasificar las transacciones.
type PriceUpdater struct {
	interval     time.Duration
	priceService *BtcPriceService

	mutex       sync.Mutex
	isRunning   bool
	refreshing  bool
	stopChan    chan struct{}
	lastRefresh time.Time

	snapshot  *models.PerformanceSnapshot
	priceData *models.BtcPriceData
}

// NewPriceUpdater crea el servicio de actualización de precios
func NewPriceUpdater(interval time.Duration, priceService *BtcPriceService) *PriceUpdater {
	return &PriceUpdater{
		interval:     interval,
		priceService: priceService,
		stopChan:     make(chan struct{}),
	}
}

// Start inicia el refresco automático del precio
func (p *PriceUpdater) Start() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.isRunning {
		return
	}

	p.isRunning = true
	p.stopChan = make(chan struct{})

	go func(stop chan struct{}) {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := p.refresh(false); err != nil && !errors.Is(err, ErrNoAnalysis) {
					log.Printf("Error en el refresco automático de precio: %v", err)
				}
			case <-stop:
				return
			}
		}
	}(p.stopChan)

	log.Printf("Refresco automático de precio iniciado con intervalo de %v", p.interval)
}

// Stop detiene el refresco automático del precio
func (p *PriceUpdater) Stop() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if !p.isRunning {
		return
	}

	p.isRunning = false
	close(p.stopChan)
	log.Printf("Refresco automático de precio detenido")
}

// IsRunning informa si el refresco automático está activo
func (p *PriceUpdater) IsRunning() bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.isRunning
}

// SetAnalysis guarda el análisis vivo recién calculado
func (p *PriceUpdater) SetAnalysis(snapshot *models.PerformanceSnapshot, priceData *models.BtcPriceData) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.snapshot = snapshot
	p.priceData = priceData
	p.lastRefresh = time.Now()
}

// ClearAnalysis descarta el análisis vivo
func (p *PriceUpdater) ClearAnalysis() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.snapshot = nil
	p.priceData = nil
}

// GetAnalysis devuelve una copia del análisis vivo y su precio. El updater
// muta el snapshot vivo bajo el mutex, el llamador siempre recibe una copia.
func (p *PriceUpdater) GetAnalysis() (*models.PerformanceSnapshot, *models.BtcPriceData, bool) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.snapshot == nil {
		return nil, nil, false
	}

	priceCopy := *p.priceData
	return copySnapshot(p.snapshot), &priceCopy, true
}

// GetLastRefresh devuelve la última vez que se refrescó el análisis
func (p *PriceUpdater) GetLastRefresh() time.Time {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.lastRefresh
}

// RefreshNow refresca el análisis a pedido del usuario, respetando el
// enfriamiento entre refrescos manuales
func (p *PriceUpdater) RefreshNow() error {
	return p.refresh(true)
}

// refresh obtiene el precio actual y recalcula el análisis vivo. La bandera
// de ocupado serializa los refrescos: uno nuevo no arranca mientras otro
// sigue en vuelo.
func (p *PriceUpdater) refresh(manual bool) error {
	p.mutex.Lock()
	if p.snapshot == nil {
		p.mutex.Unlock()
		return ErrNoAnalysis
	}
	if p.refreshing {
		p.mutex.Unlock()
		return ErrRefreshInProgress
	}
	if manual && time.Since(p.lastRefresh) < manualRefreshCooldown {
		p.mutex.Unlock()
		return ErrRefreshCooldown
	}
	p.refreshing = true
	currency := p.snapshot.Currency
	p.mutex.Unlock()

	// La llamada de red sale del mutex; la bandera de ocupado evita que
	// otro refresco toque el snapshot mientras tanto
	data, err := p.priceService.GetBtcPrice(currency)

	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.refreshing = false

	if err != nil {
		// El análisis queda con el precio anterior; el llamador decide
		// si avisa o reintenta
		return err
	}
	if p.snapshot == nil {
		return ErrNoAnalysis
	}

	performance.Refresh(p.snapshot, data.Price)
	p.priceData = data
	p.lastRefresh = time.Now()
	return nil
}

func copySnapshot(s *models.PerformanceSnapshot) *models.PerformanceSnapshot {
	c := *s
	c.Transactions = append([]models.Transaction(nil), s.Transactions...)
	c.InvalidRows = append([]models.RowError(nil), s.InvalidRows...)
	return &c
}
