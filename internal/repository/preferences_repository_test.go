package repository

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/AgusMolinaCode/BTC_DCA_Tracker.git/internal/models"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("No se pudo abrir la base en memoria: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	createSQL := `
	CREATE TABLE preferences (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		currency TEXT NOT NULL DEFAULT 'USD',
		auto_refresh INTEGER NOT NULL DEFAULT 0,
		include_onchain INTEGER NOT NULL DEFAULT 0,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := db.Exec(createSQL); err != nil {
		t.Fatalf("No se pudo crear la tabla de preferencias: %v", err)
	}
	return db
}

func TestGetPreferencesDefaults(t *testing.T) {
	repo := NewPreferencesRepository(newTestDB(t))

	prefs, err := repo.GetPreferences()
	if err != nil {
		t.Fatalf("GetPreferences devolvió error: %v", err)
	}

	if prefs.Currency != "USD" {
		t.Errorf("Moneda por defecto esperada 'USD', se obtuvo '%s'", prefs.Currency)
	}
	if prefs.AutoRefresh || prefs.IncludeOnChain {
		t.Errorf("Los flags por defecto deben estar apagados: %+v", prefs)
	}
}

func TestSaveAndGetPreferences(t *testing.T) {
	repo := NewPreferencesRepository(newTestDB(t))

	err := repo.SavePreferences(&models.Preferences{
		Currency:       "EUR",
		AutoRefresh:    true,
		IncludeOnChain: true,
	})
	if err != nil {
		t.Fatalf("SavePreferences devolvió error: %v", err)
	}

	prefs, err := repo.GetPreferences()
	if err != nil {
		t.Fatalf("GetPreferences devolvió error: %v", err)
	}

	if prefs.Currency != "EUR" {
		t.Errorf("Moneda esperada 'EUR', se obtuvo '%s'", prefs.Currency)
	}
	if !prefs.AutoRefresh || !prefs.IncludeOnChain {
		t.Errorf("Los flags guardados deben estar encendidos: %+v", prefs)
	}

	// Guardar de nuevo actualiza la misma fila
	if err := repo.SavePreferences(&models.Preferences{Currency: "GBP"}); err != nil {
		t.Fatalf("SavePreferences devolvió error: %v", err)
	}

	prefs, err = repo.GetPreferences()
	if err != nil {
		t.Fatalf("GetPreferences devolvió error: %v", err)
	}
	if prefs.Currency != "GBP" {
		t.Errorf("Moneda esperada 'GBP' tras actualizar, se obtuvo '%s'", prefs.Currency)
	}
	if prefs.AutoRefresh {
		t.Errorf("AutoRefresh debía quedar apagado tras actualizar")
	}
}
