package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"
)

// Tasas de respaldo por si la API de tasas de cambio no responde
var fallbackRates = map[string]float64{
	"USD": 1,
	"EUR": 0.9,
	"GBP": 0.8,
	"AUD": 1.5,
	"CAD": 1.35,
	"JPY": 110,
	"INR": 75,
}

// ExchangeRateService obtiene las tasas de cambio de monedas fiat relativas
// a USD, para convertir el precio de BTC a la moneda de análisis
type ExchangeRateService struct {
	client  *http.Client
	baseURL string

	mutex     sync.Mutex
	rates     map[string]float64
	fetchedAt time.Time
	ttl       time.Duration
}

// NewExchangeRateService crea el servicio de tasas de cambio usando
// ExchangeRate-API (plan gratuito)
func NewExchangeRateService() *ExchangeRateService {
	return &ExchangeRateService{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: "https://open.er-api.com",
		ttl:     5 * time.Minute,
	}
}

// GetRates devuelve el mapa código de moneda -> tasa relativa a USD.
// Si la API falla se usan las tasas de respaldo: la selección de valores
// estimados es responsabilidad de esta capa, nunca del cálculo central.
func (s *ExchangeRateService) GetRates() map[string]float64 {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	// Usar las tasas en caché si siguen vigentes
	if s.rates != nil && time.Since(s.fetchedAt) < s.ttl {
		return s.rates
	}

	rates, err := s.fetchRates()
	if err != nil {
		log.Printf("Error al obtener tasas de cambio: %v. Usando valores estimados", err)
		if s.rates != nil {
			return s.rates
		}
		return fallbackRates
	}

	s.rates = rates
	s.fetchedAt = time.Now()
	return s.rates
}

func (s *ExchangeRateService) fetchRates() (map[string]float64, error) {
	resp, err := s.client.Get(s.baseURL + "/v6/latest/USD")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("la API de tasas de cambio respondió %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var result struct {
		Result string             `json:"result"`
		Rates  map[string]float64 `json:"rates"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}

	if result.Result != "success" || len(result.Rates) == 0 {
		return nil, fmt.Errorf("respuesta de tasas de cambio inválida: %s", result.Result)
	}

	return result.Rates, nil
}
