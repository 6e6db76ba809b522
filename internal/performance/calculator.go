package performance

import (
	"errors"
	"sort"
	"time"

	"github.com/AgusMolinaCode/BTC_DCA_Tracker.git/internal/models"
	"github.com/shopspring/decimal"
)

// ErrNoTransactions indica que después de filtrar no quedó ninguna
// transacción válida de Bitcoin para analizar
var ErrNoTransactions = errors.New("no se encontraron transacciones válidas de Bitcoin en el CSV")

// Columnas de interés del export
const (
	colTransactionID = "Transaction ID"
	colTime          = "Time (UTC)"
	colStatus        = "Status"
	colType          = "Transaction Type"
	colAmount        = "Amount"
	colCurrency      = "Currency"
	colRate          = "Exchange Rate"
)

// Formatos de fecha aceptados en la columna Time (UTC)
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006",
}

// workingRow es una fila elegible ya validada, antes de anotarla con los
// campos dependientes del precio
type workingRow struct {
	date      time.Time
	amount    decimal.Decimal
	rate      decimal.Decimal
	isOnChain bool
}

// Calculate procesa las filas del CSV y construye el snapshot de rendimiento.
// currentPrice es el precio actual de BTC en la moneda de análisis.
// Con includeOnChain en true las transferencias on-chain se suman a las
// tenencias, pero nunca participan de la contabilidad de ganancias porque
// no tienen costo de adquisición.
func Calculate(rows []models.RawTransactionRow, currentPrice float64, includeOnChain bool) (*models.PerformanceSnapshot, error) {
	var exchangeRows, onChainRows []workingRow
	var invalidRows []models.RowError

	for i, row := range rows {
		// Filtro de elegibilidad: solo filas completadas en BTC.
		// El resto se descarta en silencio, los exports reales traen
		// filas irrelevantes y eso no es un error.
		if row[colStatus] != models.StatusCompleted || row[colCurrency] != models.CurrencyBTC {
			continue
		}

		txType := row[colType]
		if txType != models.TransactionExchange && txType != models.TransactionOnChain {
			continue
		}

		// Validar los campos requeridos. Una fila con un valor numérico o
		// de fecha inválido se excluye y se reporta, nunca se deja entrar
		// un NaN a las sumas.
		date, ok := parseDate(row[colTime])
		if !ok {
			invalidRows = append(invalidRows, models.RowError{
				Row: i + 1, Field: colTime, Value: row[colTime], Reason: "fecha inválida",
			})
			continue
		}

		amount, err := decimal.NewFromString(row[colAmount])
		if err != nil {
			invalidRows = append(invalidRows, models.RowError{
				Row: i + 1, Field: colAmount, Value: row[colAmount], Reason: "monto no numérico",
			})
			continue
		}

		w := workingRow{date: date, amount: amount, isOnChain: txType == models.TransactionOnChain}

		if !w.isOnChain {
			rate, err := decimal.NewFromString(row[colRate])
			if err != nil {
				invalidRows = append(invalidRows, models.RowError{
					Row: i + 1, Field: colRate, Value: row[colRate], Reason: "tasa de cambio no numérica",
				})
				continue
			}
			w.rate = rate
		}

		if w.isOnChain {
			onChainRows = append(onChainRows, w)
		} else {
			exchangeRows = append(exchangeRows, w)
		}
	}

	// El conjunto de trabajo son las compras en exchange, más las
	// transferencias on-chain solo si el usuario las habilitó
	working := exchangeRows
	includesOnChain := includeOnChain && len(onChainRows) > 0
	if includesOnChain {
		working = make([]workingRow, 0, len(exchangeRows)+len(onChainRows))
		working = append(working, exchangeRows...)
		working = append(working, onChainRows...)
	}

	if len(working) == 0 {
		return nil, ErrNoTransactions
	}

	// Orden cronológico ascendente. El orden estable mantiene el orden del
	// archivo entre fechas iguales y es requisito para el acumulado de BTC
	// y para leer la primera/última compra de los extremos de la lista.
	sort.SliceStable(working, func(i, j int) bool {
		return working[i].date.Before(working[j].date)
	})

	var (
		totalBtc      float64 // Solo exchange
		onChainBtc    float64
		totalInvested float64
		cumulativeBtc float64
		transactions  = make([]models.Transaction, 0, len(working))

		bestPurchaseRate  float64
		bestPurchaseIndex = -1
	)

	for index, w := range working {
		btcAmount := w.amount.InexactFloat64()

		if w.isOnChain {
			onChainBtc += btcAmount
			cumulativeBtc += btcAmount

			transactions = append(transactions, models.Transaction{
				Date:          w.date,
				BtcAmount:     btcAmount,
				IsOnChain:     true,
				CumulativeBtc: cumulativeBtc,
				CurrentValue:  btcAmount * currentPrice,
			})
			continue
		}

		exchangeRate := w.rate.InexactFloat64()
		costBasis := w.amount.Mul(w.rate).InexactFloat64()

		totalBtc += btcAmount
		totalInvested += costBasis
		cumulativeBtc += btcAmount

		// Mejor compra: la de menor tasa. La comparación estricta hace que
		// ante un empate gane la primera ocurrencia.
		if bestPurchaseIndex == -1 || exchangeRate < bestPurchaseRate {
			bestPurchaseRate = exchangeRate
			bestPurchaseIndex = index
		}

		currentValue := btcAmount * currentPrice
		profitLoss := currentValue - costBasis

		transactions = append(transactions, models.Transaction{
			Date:          w.date,
			BtcAmount:     btcAmount,
			ExchangeRate:  exchangeRate,
			CostBasis:     costBasis,
			CumulativeBtc: cumulativeBtc,
			CurrentValue:  currentValue,
			ProfitLoss:    profitLoss,
			Roi:           safePercent(profitLoss, costBasis),
		})
	}

	totalBtcWithOnChain := totalBtc + onChainBtc
	exchangeOnlyValue := totalBtc * currentPrice
	currentValueWithOnChain := totalBtcWithOnChain * currentPrice

	// Las ganancias siempre se calculan solo con las compras en exchange,
	// sin importar si las on-chain están incluidas en las tenencias
	totalProfit := exchangeOnlyValue - totalInvested

	exchangeTransactions := filterExchange(transactions)

	snapshot := &models.PerformanceSnapshot{
		CurrentPrice: currentPrice,

		TotalBtc:        totalBtcWithOnChain,
		ExchangeOnlyBtc: totalBtc,
		OnChainBtc:      onChainBtc,
		IncludesOnChain: includesOnChain,

		TotalInvested:     totalInvested,
		CurrentValue:      currentValueWithOnChain,
		ExchangeOnlyValue: exchangeOnlyValue,
		TotalProfit:       totalProfit,
		TotalRoi:          safePercent(totalProfit, totalInvested),

		AvgPurchasePrice:  safeDiv(totalInvested, totalBtc),
		AvgPurchaseAmount: safeDiv(totalInvested, float64(len(exchangeRows))),

		FirstPurchaseDate:  working[0].date,
		LatestPurchaseDate: working[len(working)-1].date,

		TransactionCount:         len(working),
		ExchangeTransactionCount: len(exchangeRows),
		OnChainTransactionCount:  len(onChainRows),

		BestPurchaseRate:  bestPurchaseRate,
		BestPurchaseIndex: bestPurchaseIndex,

		ConsistencyScore: ConsistencyScore(exchangeTransactions),
		DcaVsLumpSum:     LumpSumComparison(exchangeTransactions, totalInvested, exchangeOnlyValue, currentPrice),

		Transactions: transactions,
		InvalidRows:  invalidRows,
	}

	return snapshot, nil
}

// parseDate intenta los formatos de fecha conocidos del export
func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// filterExchange devuelve solo las compras en exchange, preservando el
// orden cronológico de la lista ya ordenada
func filterExchange(transactions []models.Transaction) []models.Transaction {
	var result []models.Transaction
	for _, tx := range transactions {
		if !tx.IsOnChain {
			result = append(result, tx)
		}
	}
	return result
}

// safeDiv es la política de división con denominador cero: el resultado es 0,
// nunca NaN ni infinito
func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// safePercent calcula num/den como porcentaje con la misma política
func safePercent(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return (num / den) * 100
}
