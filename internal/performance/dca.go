package performance

import "github.com/AgusMolinaCode/BTC_DCA_Tracker.git/internal/models"

// LumpSumComparison compara el resultado real del DCA contra el
// contrafáctico de invertir todo el capital de una sola vez a la primera
// tasa de cambio disponible.
//
// exchangeTransactions es la lista de compras en exchange ya ordenada;
// exchangeOnlyValue es su valor actual. El resultado es un porcentaje con
// signo: positivo significa que el DCA superó a la inversión única.
func LumpSumComparison(exchangeTransactions []models.Transaction, totalInvested, exchangeOnlyValue, currentPrice float64) float64 {
	if len(exchangeTransactions) == 0 {
		return 0
	}

	firstRate := exchangeTransactions[0].ExchangeRate
	if firstRate == 0 {
		return 0
	}

	lumpSumBtc := totalInvested / firstRate
	lumpSumValue := lumpSumBtc * currentPrice
	if lumpSumValue == 0 {
		return 0
	}

	return ((exchangeOnlyValue - lumpSumValue) / lumpSumValue) * 100
}
