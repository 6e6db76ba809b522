package models

import "time"

// Origen del precio: directo de la API en la moneda pedida, o convertido desde USD
const (
	PriceSourceDirect    = "direct"
	PriceSourceConverted = "converted"
)

// BtcPriceData contiene el precio actual de Bitcoin en la moneda de análisis
type BtcPriceData struct {
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
	Change24h   float64   `json:"change_24h"`
	LastUpdated time.Time `json:"last_updated"`
	SourceType  string    `json:"source_type"`
	IsEstimated bool      `json:"is_estimated,omitempty"` // true cuando se usó el precio estimado de respaldo
}
