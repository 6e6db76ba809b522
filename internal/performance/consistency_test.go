package performance

import (
	"testing"
	"time"

	"github.com/AgusMolinaCode/BTC_DCA_Tracker.git/internal/models"
)

func txAt(dates ...string) []models.Transaction {
	txs := make([]models.Transaction, 0, len(dates))
	for _, d := range dates {
		parsed, err := time.Parse("2006-01-02 15:04:05", d)
		if err != nil {
			panic(err)
		}
		txs = append(txs, models.Transaction{Date: parsed, BtcAmount: 0.001})
	}
	return txs
}

func TestConsistencyScoreSingleTransaction(t *testing.T) {
	score := ConsistencyScore(txAt("2024-01-01 10:00:00"))
	if score != 100 {
		t.Errorf("Con una sola compra el puntaje esperado es 100, se obtuvo %d", score)
	}
}

func TestConsistencyScoreEmpty(t *testing.T) {
	score := ConsistencyScore(nil)
	if score != 100 {
		t.Errorf("Sin compras el puntaje esperado es 100, se obtuvo %d", score)
	}
}

func TestConsistencyScorePerfectWeekly(t *testing.T) {
	// Compras exactamente cada 7 días: variación cero, puntaje 100
	score := ConsistencyScore(txAt(
		"2024-01-01 10:00:00",
		"2024-01-08 10:00:00",
		"2024-01-15 10:00:00",
		"2024-01-22 10:00:00",
		"2024-01-29 10:00:00",
	))
	if score != 100 {
		t.Errorf("Compras perfectamente semanales: puntaje esperado 100, se obtuvo %d", score)
	}
}

func TestConsistencyScoreIrregular(t *testing.T) {
	// Espaciado muy irregular: el puntaje cae bien por debajo de 100
	score := ConsistencyScore(txAt(
		"2024-01-01 10:00:00",
		"2024-01-02 10:00:00",
		"2024-03-01 10:00:00",
		"2024-03-02 10:00:00",
		"2024-06-01 10:00:00",
	))
	if score >= 60 {
		t.Errorf("Espaciado irregular: se esperaba un puntaje bajo, se obtuvo %d", score)
	}
	if score < 0 || score > 100 {
		t.Errorf("El puntaje debe estar acotado a [0, 100], se obtuvo %d", score)
	}
}

func TestConsistencyScoreMoreRegularScoresHigher(t *testing.T) {
	regular := ConsistencyScore(txAt(
		"2024-01-01 10:00:00",
		"2024-01-08 10:00:00",
		"2024-01-14 10:00:00",
		"2024-01-22 10:00:00",
	))
	irregular := ConsistencyScore(txAt(
		"2024-01-01 10:00:00",
		"2024-01-02 10:00:00",
		"2024-02-15 10:00:00",
		"2024-02-16 10:00:00",
	))
	if regular <= irregular {
		t.Errorf("Un espaciado más regular debe puntuar más alto: regular=%d, irregular=%d", regular, irregular)
	}
}

func TestConsistencyScoreZeroMeanGap(t *testing.T) {
	// Todas las compras en el mismo instante: intervalo promedio cero.
	// Convención: variación cero en el tiempo es máximamente consistente.
	score := ConsistencyScore(txAt(
		"2024-01-01 10:00:00",
		"2024-01-01 10:00:00",
		"2024-01-01 10:00:00",
	))
	if score != 100 {
		t.Errorf("Con intervalo promedio cero el puntaje esperado es 100, se obtuvo %d", score)
	}
}
