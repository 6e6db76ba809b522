package models

import "time"

// RawTransactionRow representa una fila del CSV como mapa encabezado -> valor
type RawTransactionRow map[string]string

// Valores esperados en las columnas del CSV exportado por el exchange
const (
	StatusCompleted     = "Completed"
	CurrencyBTC         = "BTC"
	TransactionExchange = "Exchange"
	TransactionOnChain  = "On-Chain"
)

// Transaction es una transacción normalizada de compra o transferencia de BTC.
// Para transferencias on-chain no hay tasa de cambio ni costo de adquisición,
// por lo que ExchangeRate, CostBasis, ProfitLoss y Roi quedan exactamente en 0.
type Transaction struct {
	Date          time.Time `json:"date"`
	BtcAmount     float64   `json:"btc_amount"`
	IsOnChain     bool      `json:"is_on_chain"`
	ExchangeRate  float64   `json:"exchange_rate"`
	CostBasis     float64   `json:"cost_basis"`
	CumulativeBtc float64   `json:"cumulative_btc"`
	CurrentValue  float64   `json:"current_value"`
	ProfitLoss    float64   `json:"profit_loss"`
	Roi           float64   `json:"roi"`
}

// RowError describe una fila del CSV que fue excluida del análisis
// porque alguno de sus campos numéricos o de fecha no pudo validarse
type RowError struct {
	Row    int    `json:"row"`
	Field  string `json:"field"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}
