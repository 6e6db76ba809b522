package parser

import (
	"errors"
	"strings"

	"github.com/AgusMolinaCode/BTC_DCA_Tracker.git/internal/models"
)

// ErrInvalidFormat indica que el CSV no tiene una fila de encabezados reconocible
var ErrInvalidFormat = errors.New("formato CSV inválido: no se encontró la fila de encabezados")

// headerMarker es la columna que identifica la fila de encabezados dentro
// del export. Algunos exports traen un preámbulo antes de los encabezados,
// por eso se busca la primera línea que la contenga.
const headerMarker = "Transaction ID"

// ParseCSV convierte el texto crudo del CSV en una secuencia de filas
// (mapa encabezado -> valor recortado) en el orden del archivo.
// Las filas con menos valores que encabezados solo llenan las columnas que
// tienen valor; el resto de las claves no se agrega (parseo deliberadamente
// tolerante, los exports reales traen filas incompletas).
func ParseCSV(csvText string) ([]models.RawTransactionRow, error) {
	lines := strings.Split(csvText, "\n")

	// Buscar la fila de encabezados; las líneas anteriores se ignoran
	headerRowIndex := 0
	for headerRowIndex < len(lines) && !strings.Contains(lines[headerRowIndex], headerMarker) {
		headerRowIndex++
	}

	if headerRowIndex >= len(lines) {
		return nil, ErrInvalidFormat
	}

	headers := splitLine(lines[headerRowIndex])
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	var result []models.RawTransactionRow
	for i := headerRowIndex + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}

		values := splitLine(lines[i])

		row := models.RawTransactionRow{}
		for j, header := range headers {
			if j < len(values) {
				row[header] = strings.TrimSpace(values[j])
			}
		}

		result = append(result, row)
	}

	return result, nil
}

// splitLine separa una línea en campos respetando comillas dobles:
// una comilla alterna el estado "dentro de comillas" y la coma solo separa
// campos cuando no estamos dentro de comillas. El último campo se agrega
// al terminar la línea.
func splitLine(line string) []string {
	var values []string
	var current strings.Builder
	inQuotes := false

	for _, char := range line {
		switch {
		case char == '"':
			inQuotes = !inQuotes
		case char == ',' && !inQuotes:
			values = append(values, current.String())
			current.Reset()
		default:
			current.WriteRune(char)
		}
	}
	values = append(values, current.String())

	return values
}
