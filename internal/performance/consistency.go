package performance

import (
	"math"

	"github.com/AgusMolinaCode/BTC_DCA_Tracker.git/internal/models"
)

// ConsistencyScore mide la regularidad de las compras con un puntaje de 0 a
// 100. Recibe solo las compras en exchange, ya ordenadas cronológicamente.
//
// Se calculan los intervalos en días entre compras consecutivas y su
// coeficiente de variación (desvío estándar poblacional / promedio); el
// puntaje es 100·e^(-cv) redondeado y acotado a [0, 100]. Intervalos
// parejos dan un puntaje cercano a 100, compras irregulares lo acercan a 0.
func ConsistencyScore(transactions []models.Transaction) int {
	// Con 0 o 1 compras no hay intervalos que medir
	if len(transactions) <= 1 {
		return 100
	}

	intervals := make([]float64, 0, len(transactions)-1)
	for i := 1; i < len(transactions); i++ {
		days := transactions[i].Date.Sub(transactions[i-1].Date).Hours() / 24
		intervals = append(intervals, days)
	}

	var sum float64
	for _, interval := range intervals {
		sum += interval
	}
	mean := sum / float64(len(intervals))

	// Todas las compras en el mismo instante: variación cero en el tiempo,
	// se considera máximamente consistente
	if mean == 0 {
		return 100
	}

	var squaredSum float64
	for _, interval := range intervals {
		diff := interval - mean
		squaredSum += diff * diff
	}
	variance := squaredSum / float64(len(intervals))
	stdDev := math.Sqrt(variance)

	cv := stdDev / mean
	score := 100 * math.Exp(-cv)

	return int(math.Min(100, math.Max(0, math.Round(score))))
}
