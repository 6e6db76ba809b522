package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/AgusMolinaCode/BTC_DCA_Tracker.git/internal/models"
)

// Moneda por defecto cuando todavía no hay preferencias guardadas
const defaultCurrency = "USD"

type PreferencesRepository struct {
	db *sql.DB
}

func NewPreferencesRepository(db *sql.DB) *PreferencesRepository {
	return &PreferencesRepository{db: db}
}

// GetPreferences obtiene las preferencias guardadas del usuario.
// Si todavía no hay fila devuelve los valores por defecto.
func (r *PreferencesRepository) GetPreferences() (*models.Preferences, error) {
	query := `
		SELECT currency, auto_refresh, include_onchain, updated_at
		FROM preferences WHERE id = 1
	`

	var prefs models.Preferences
	var autoRefresh, includeOnChain int
	err := r.db.QueryRow(query).Scan(&prefs.Currency, &autoRefresh, &includeOnChain, &prefs.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return &models.Preferences{Currency: defaultCurrency}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error al leer las preferencias: %v", err)
	}

	prefs.AutoRefresh = autoRefresh == 1
	prefs.IncludeOnChain = includeOnChain == 1
	return &prefs, nil
}

// SavePreferences guarda las preferencias del usuario (inserta o actualiza
// la única fila)
func (r *PreferencesRepository) SavePreferences(prefs *models.Preferences) error {
	query := `
		INSERT INTO preferences (id, currency, auto_refresh, include_onchain, updated_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			currency = excluded.currency,
			auto_refresh = excluded.auto_refresh,
			include_onchain = excluded.include_onchain,
			updated_at = excluded.updated_at
	`

	_, err := r.db.Exec(
		query,
		prefs.Currency,
		boolToInt(prefs.AutoRefresh),
		boolToInt(prefs.IncludeOnChain),
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("error al guardar las preferencias: %v", err)
	}

	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
