package database

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

var DB *sql.DB

// InitDB abre la base local y crea el esquema si no existe. Acá solo viven
// las preferencias del usuario: las transacciones del CSV nunca se
// persisten, el análisis vive en memoria mientras dura la sesión.
func InitDB() error {
	// Crear el directorio database si no existe
	if err := os.MkdirAll("database", 0755); err != nil {
		return err
	}

	var err error
	DB, err = sql.Open("sqlite3", filepath.Join("database", "preferences.db"))
	if err != nil {
		return err
	}

	// Crear tabla de preferencias si no existe. Una sola fila: la
	// herramienta es de un solo usuario.
	createPreferencesTableSQL := `
	CREATE TABLE IF NOT EXISTS preferences (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		currency TEXT NOT NULL DEFAULT 'USD',
		auto_refresh INTEGER NOT NULL DEFAULT 0,
		include_onchain INTEGER NOT NULL DEFAULT 0,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	_, err = DB.Exec(createPreferencesTableSQL)
	if err != nil {
		return err
	}

	// Ejecutar migraciones para actualizar el esquema
	err = RunMigrations()
	return err
}
