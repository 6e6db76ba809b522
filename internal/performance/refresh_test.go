package performance

import (
	"reflect"
	"testing"

	"github.com/AgusMolinaCode/BTC_DCA_Tracker.git/internal/models"
)

func snapshotWithOnChain(t *testing.T, price float64) *models.PerformanceSnapshot {
	t.Helper()
	rows := append(baseRows(),
		row("tx-4", "2024-01-20 10:00:00", "Completed", "On-Chain", "0.005", "BTC", ""),
	)
	snapshot, err := Calculate(rows, price, true)
	if err != nil {
		t.Fatalf("Calculate devolvió error: %v", err)
	}
	return snapshot
}

func TestRefreshRecomputesPriceDependentFields(t *testing.T) {
	snapshot := snapshotWithOnChain(t, 70000)

	Refresh(snapshot, 80000)

	if !almostEqual(snapshot.CurrentPrice, 80000) {
		t.Errorf("CurrentPrice esperado 80000, se obtuvo %f", snapshot.CurrentPrice)
	}
	if !almostEqual(snapshot.CurrentValue, snapshot.TotalBtc*80000) {
		t.Errorf("CurrentValue esperado %f, se obtuvo %f", snapshot.TotalBtc*80000, snapshot.CurrentValue)
	}
	if !almostEqual(snapshot.ExchangeOnlyValue, snapshot.ExchangeOnlyBtc*80000) {
		t.Errorf("ExchangeOnlyValue esperado %f, se obtuvo %f", snapshot.ExchangeOnlyBtc*80000, snapshot.ExchangeOnlyValue)
	}
	if !almostEqual(snapshot.TotalProfit, snapshot.ExchangeOnlyValue-snapshot.TotalInvested) {
		t.Errorf("TotalProfit no coincide con ExchangeOnlyValue - TotalInvested")
	}

	for i, tx := range snapshot.Transactions {
		if !almostEqual(tx.CurrentValue, tx.BtcAmount*80000) {
			t.Errorf("Transacción %d: CurrentValue esperado %f, se obtuvo %f", i, tx.BtcAmount*80000, tx.CurrentValue)
		}
		if tx.IsOnChain && (tx.ProfitLoss != 0 || tx.Roi != 0) {
			t.Errorf("Transacción %d on-chain: ganancia y ROI deben seguir en 0", i)
		}
		if !tx.IsOnChain && !almostEqual(tx.ProfitLoss, tx.CurrentValue-tx.CostBasis) {
			t.Errorf("Transacción %d: ProfitLoss no coincide tras el refresco", i)
		}
	}
}

func TestRefreshIdempotent(t *testing.T) {
	once := snapshotWithOnChain(t, 70000)
	twice := snapshotWithOnChain(t, 70000)

	Refresh(once, 81234.56)
	Refresh(twice, 81234.56)
	Refresh(twice, 81234.56)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Refrescar dos veces con el mismo precio debe dar el mismo resultado que una vez")
	}
}

func TestRefreshMatchesFreshCalculation(t *testing.T) {
	// El snapshot refrescado nunca puede divergir de un recálculo completo
	// sobre las mismas filas al precio nuevo
	refreshed := snapshotWithOnChain(t, 70000)
	Refresh(refreshed, 90000)

	fresh := snapshotWithOnChain(t, 90000)

	if !almostEqual(refreshed.CurrentValue, fresh.CurrentValue) {
		t.Errorf("CurrentValue divergió: refrescado %f, recalculado %f", refreshed.CurrentValue, fresh.CurrentValue)
	}
	if !almostEqual(refreshed.TotalProfit, fresh.TotalProfit) {
		t.Errorf("TotalProfit divergió: refrescado %f, recalculado %f", refreshed.TotalProfit, fresh.TotalProfit)
	}
	if !almostEqual(refreshed.TotalRoi, fresh.TotalRoi) {
		t.Errorf("TotalRoi divergió: refrescado %f, recalculado %f", refreshed.TotalRoi, fresh.TotalRoi)
	}
	for i := range refreshed.Transactions {
		if !almostEqual(refreshed.Transactions[i].CurrentValue, fresh.Transactions[i].CurrentValue) {
			t.Errorf("Transacción %d: CurrentValue divergió tras el refresco", i)
		}
		if !almostEqual(refreshed.Transactions[i].Roi, fresh.Transactions[i].Roi) {
			t.Errorf("Transacción %d: Roi divergió tras el refresco", i)
		}
	}
}

func TestRefreshDoesNotTouchClassification(t *testing.T) {
	snapshot := snapshotWithOnChain(t, 70000)

	countBefore := len(snapshot.Transactions)
	scoreBefore := snapshot.ConsistencyScore
	dcaBefore := snapshot.DcaVsLumpSum
	bestBefore := snapshot.BestPurchaseIndex
	firstBefore := snapshot.FirstPurchaseDate

	Refresh(snapshot, 95000)

	if len(snapshot.Transactions) != countBefore {
		t.Errorf("El refresco no debe alterar la lista de transacciones")
	}
	if snapshot.ConsistencyScore != scoreBefore {
		t.Errorf("El refresco no debe recalcular el puntaje de consistencia")
	}
	if snapshot.DcaVsLumpSum != dcaBefore {
		t.Errorf("El refresco no debe recalcular la comparación con lump sum")
	}
	if snapshot.BestPurchaseIndex != bestBefore {
		t.Errorf("El refresco no debe recalcular la mejor compra")
	}
	if !snapshot.FirstPurchaseDate.Equal(firstBefore) {
		t.Errorf("El refresco no debe alterar las fechas de primera/última compra")
	}
}

func TestRefreshNilSnapshot(t *testing.T) {
	// No debe entrar en pánico
	Refresh(nil, 70000)
}
