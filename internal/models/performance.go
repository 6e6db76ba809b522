package models

import "time"

// PerformanceSnapshot es el resultado agregado del análisis DCA.
// Los totales siempre deben poder derivarse re-sumando la lista de
// transacciones al mismo precio: el snapshot los cachea para la respuesta
// pero nunca puede divergir de un recálculo fresco.
type PerformanceSnapshot struct {
	ID       string `json:"id"`
	Currency string `json:"currency"`

	// Precio de BTC usado para los campos dependientes del precio
	CurrentPrice float64 `json:"current_price"`

	TotalBtc        float64 `json:"total_btc"`         // Incluye on-chain si está habilitado
	ExchangeOnlyBtc float64 `json:"exchange_only_btc"` // Solo compras en exchange
	OnChainBtc      float64 `json:"on_chain_btc"`      // Solo transferencias on-chain
	IncludesOnChain bool    `json:"includes_on_chain"`

	TotalInvested     float64 `json:"total_invested"`
	CurrentValue      float64 `json:"current_value"`       // Valor actual incluyendo on-chain si está habilitado
	ExchangeOnlyValue float64 `json:"exchange_only_value"` // Valor actual solo de compras en exchange
	TotalProfit       float64 `json:"total_profit"`        // Siempre calculado solo con compras en exchange
	TotalRoi          float64 `json:"total_roi"`

	AvgPurchasePrice   float64   `json:"avg_purchase_price"`
	AvgPurchaseAmount  float64   `json:"avg_purchase_amount"`
	FirstPurchaseDate  time.Time `json:"first_purchase_date"`
	LatestPurchaseDate time.Time `json:"latest_purchase_date"`

	TransactionCount         int `json:"transaction_count"`
	ExchangeTransactionCount int `json:"exchange_transaction_count"`
	OnChainTransactionCount  int `json:"on_chain_transaction_count"`

	// Mejor compra: la de menor tasa de cambio; el índice refiere a la
	// lista ordenada de transacciones (-1 si no hay compras en exchange)
	BestPurchaseRate  float64 `json:"best_purchase_rate"`
	BestPurchaseIndex int     `json:"best_purchase_index"`

	ConsistencyScore int     `json:"consistency_score"`
	DcaVsLumpSum     float64 `json:"dca_vs_lump_sum"`

	Transactions []Transaction `json:"transactions"`

	// Filas excluidas por campos inválidos (no se reportan como error fatal)
	InvalidRows []RowError `json:"invalid_rows,omitempty"`
}
