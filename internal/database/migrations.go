package database

import (
	"log"
)

// RunMigrations ejecuta las migraciones necesarias para actualizar el esquema de la base de datos
func RunMigrations() error {
	log.Println("Ejecutando migraciones de la base de datos...")

	// Migración para añadir el flag include_onchain a instalaciones viejas
	addIncludeOnChainColumnSQL := `
	ALTER TABLE preferences ADD COLUMN include_onchain INTEGER NOT NULL DEFAULT 0;
	`

	_, err := DB.Exec(addIncludeOnChainColumnSQL)
	if err != nil {
		log.Printf("Migración include_onchain omitida: %v", err)
		// No retornamos error porque SQLite da error si la columna ya existe
		// y queremos que la migración continúe
	} else {
		log.Println("Columna include_onchain añadida correctamente")
	}

	return nil
}
