package performance

import "github.com/AgusMolinaCode/BTC_DCA_Tracker.git/internal/models"

// Refresh recalcula en el snapshot todos los campos que dependen del precio
// usando solo la lista de transacciones ya clasificada y los totales ya
// computados. No vuelve a filtrar, clasificar ni ordenar, y tampoco
// recalcula el puntaje de consistencia ni la comparación con lump sum:
// esos quedan fijos desde la agregación original, acá solo cambia el precio.
//
// Esto mantiene el refresco periódico en O(n) sobre la lista de
// transacciones. La operación es idempotente para un mismo precio.
func Refresh(snapshot *models.PerformanceSnapshot, newPrice float64) {
	if snapshot == nil {
		return
	}

	snapshot.CurrentPrice = newPrice
	snapshot.CurrentValue = snapshot.TotalBtc * newPrice
	snapshot.ExchangeOnlyValue = snapshot.ExchangeOnlyBtc * newPrice

	// Las ganancias siempre salen de las compras en exchange
	snapshot.TotalProfit = snapshot.ExchangeOnlyValue - snapshot.TotalInvested
	snapshot.TotalRoi = safePercent(snapshot.TotalProfit, snapshot.TotalInvested)

	for i := range snapshot.Transactions {
		tx := &snapshot.Transactions[i]
		tx.CurrentValue = tx.BtcAmount * newPrice

		// Las on-chain no tienen costo de adquisición: su ganancia y ROI
		// se mantienen exactamente en 0
		if !tx.IsOnChain {
			tx.ProfitLoss = tx.CurrentValue - tx.CostBasis
			tx.Roi = safePercent(tx.ProfitLoss, tx.CostBasis)
		}
	}
}
