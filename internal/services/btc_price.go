package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/AgusMolinaCode/BTC_DCA_Tracker.git/internal/models"
)

// estimatedUsdPrice es el precio de respaldo en USD cuando ninguna API de
// precios responde. Actualizar a un valor reciente de vez en cuando.
const estimatedUsdPrice = 104000

// Monedas que Coinbase soporta directo en el par BTC-XXX
var coinbaseDirectCurrencies = map[string]bool{
	"USD": true, "EUR": true, "GBP": true, "CAD": true, "AUD": true,
}

type cachedPrice struct {
	data      *models.BtcPriceData
	timestamp time.Time
}

// BtcPriceService obtiene el precio actual de Bitcoin en la moneda de
// análisis: CoinGecko como fuente primaria y Coinbase como respaldo.
// Cuando la moneda pedida no está disponible directo, el precio en USD se
// convierte con las tasas de cambio.
type BtcPriceService struct {
	client       *http.Client
	coingeckoURL string
	coinbaseURL  string
	rates        *ExchangeRateService

	mutex    sync.Mutex
	cache    map[string]cachedPrice
	cacheTTL time.Duration
}

// NewBtcPriceService crea el servicio de precios de Bitcoin
func NewBtcPriceService(rates *ExchangeRateService) *BtcPriceService {
	return &BtcPriceService{
		client:       &http.Client{Timeout: 10 * time.Second},
		coingeckoURL: "https://api.coingecko.com",
		coinbaseURL:  "https://api.coinbase.com",
		rates:        rates,
		cache:        make(map[string]cachedPrice),
		cacheTTL:     30 * time.Second,
	}
}

// GetBtcPrice obtiene el precio actual de BTC en la moneda pedida.
// Devuelve error si ninguna de las dos APIs responde; la decisión de usar
// un precio estimado en ese caso queda en GetBtcPriceWithFallback.
func (s *BtcPriceService) GetBtcPrice(currency string) (*models.BtcPriceData, error) {
	currency = strings.ToUpper(currency)

	// Verificar si tenemos un precio reciente en caché
	s.mutex.Lock()
	if cached, exists := s.cache[currency]; exists && time.Since(cached.timestamp) < s.cacheTTL {
		s.mutex.Unlock()
		return cached.data, nil
	}
	s.mutex.Unlock()

	data, err := s.fetchFromCoinGecko(currency)
	if err != nil {
		log.Printf("Error al obtener precio de BTC desde CoinGecko: %v. Probando con Coinbase", err)
		data, err = s.fetchFromCoinbase(currency)
		if err != nil {
			return nil, fmt.Errorf("no se pudo obtener el precio de Bitcoin: %w", err)
		}
	}

	s.mutex.Lock()
	s.cache[currency] = cachedPrice{data: data, timestamp: time.Now()}
	s.mutex.Unlock()

	return data, nil
}

// GetBtcPriceWithFallback obtiene el precio y, como último recurso, devuelve
// el precio estimado marcado con is_estimated para que la interfaz lo avise
func (s *BtcPriceService) GetBtcPriceWithFallback(currency string) *models.BtcPriceData {
	data, err := s.GetBtcPrice(currency)
	if err != nil {
		log.Printf("Usando precio estimado de Bitcoin: %v", err)
		return s.estimatedPrice(strings.ToUpper(currency))
	}
	return data
}

// fetchFromCoinGecko pide el precio en la moneda seleccionada y en USD a la
// vez; si la moneda no viene en la respuesta se convierte desde USD
func (s *BtcPriceService) fetchFromCoinGecko(currency string) (*models.BtcPriceData, error) {
	vs := strings.ToLower(currency)
	url := fmt.Sprintf(
		"%s/api/v3/simple/price?ids=bitcoin&vs_currencies=%s,usd&include_24hr_change=true&include_last_updated_at=true",
		s.coingeckoURL, vs,
	)

	resp, err := s.client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("CoinGecko respondió %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var result map[string]map[string]float64
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}

	bitcoin, exists := result["bitcoin"]
	if !exists {
		return nil, fmt.Errorf("la respuesta de CoinGecko no trae datos de bitcoin")
	}

	lastUpdated := time.Now()
	if ts, ok := bitcoin["last_updated_at"]; ok {
		lastUpdated = time.Unix(int64(ts), 0)
	}

	// Precio directo en la moneda pedida si está disponible
	if price, ok := bitcoin[vs]; ok {
		// El cambio de 24 horas puede ser legítimamente 0: solo se cae al
		// valor en USD cuando el campo no vino en la respuesta
		change, hasChange := bitcoin[vs+"_24h_change"]
		if !hasChange {
			change = bitcoin["usd_24h_change"]
		}
		return &models.BtcPriceData{
			Price:       price,
			Currency:    currency,
			Change24h:   change,
			LastUpdated: lastUpdated,
			SourceType:  models.PriceSourceDirect,
		}, nil
	}

	// Si no, convertir el precio en USD con las tasas de cambio
	usdPrice, ok := bitcoin["usd"]
	if !ok {
		return nil, fmt.Errorf("la respuesta de CoinGecko no trae el precio en USD")
	}

	return &models.BtcPriceData{
		Price:       usdPrice * s.rateFor(currency),
		Currency:    currency,
		Change24h:   bitcoin["usd_24h_change"],
		LastUpdated: lastUpdated,
		SourceType:  models.PriceSourceConverted,
	}, nil
}

// fetchFromCoinbase usa el precio spot como respaldo. Coinbase no informa el
// cambio de 24 horas, queda en 0.
func (s *BtcPriceService) fetchFromCoinbase(currency string) (*models.BtcPriceData, error) {
	pair := "BTC-USD"
	direct := coinbaseDirectCurrencies[currency]
	if direct {
		pair = "BTC-" + currency
	}

	price, err := s.coinbaseSpot(pair)
	if err != nil {
		if !direct {
			return nil, err
		}
		// Si el par directo falló, reintentar en USD y convertir
		price, err = s.coinbaseSpot("BTC-USD")
		if err != nil {
			return nil, err
		}
		direct = false
	}

	if direct {
		return &models.BtcPriceData{
			Price:       price,
			Currency:    currency,
			LastUpdated: time.Now(),
			SourceType:  models.PriceSourceDirect,
		}, nil
	}

	return &models.BtcPriceData{
		Price:       price * s.rateFor(currency),
		Currency:    currency,
		LastUpdated: time.Now(),
		SourceType:  models.PriceSourceConverted,
	}, nil
}

func (s *BtcPriceService) coinbaseSpot(pair string) (float64, error) {
	resp, err := s.client.Get(fmt.Sprintf("%s/v2/prices/%s/spot", s.coinbaseURL, pair))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("Coinbase respondió %d para %s", resp.StatusCode, pair)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}

	var result struct {
		Data struct {
			Amount string `json:"amount"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return 0, err
	}

	price, err := strconv.ParseFloat(result.Data.Amount, 64)
	if err != nil {
		return 0, fmt.Errorf("precio spot de Coinbase no numérico: %q", result.Data.Amount)
	}

	return price, nil
}

// estimatedPrice arma el precio de último recurso en la moneda pedida
func (s *BtcPriceService) estimatedPrice(currency string) *models.BtcPriceData {
	return &models.BtcPriceData{
		Price:       estimatedUsdPrice * s.rateFor(currency),
		Currency:    currency,
		LastUpdated: time.Now(),
		SourceType:  models.PriceSourceConverted,
		IsEstimated: true,
	}
}

// rateFor devuelve la tasa USD -> moneda, o 1 si no la conocemos
func (s *BtcPriceService) rateFor(currency string) float64 {
	if currency == "USD" {
		return 1
	}
	if rate, ok := s.rates.GetRates()[currency]; ok && rate > 0 {
		return rate
	}
	return 1
}
