package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Poses table - named snapshots of the target state
		`CREATE TABLE IF NOT EXISTS poses (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			pos_x REAL NOT NULL DEFAULT 0,
			pos_y REAL NOT NULL DEFAULT 0,
			pos_z REAL NOT NULL DEFAULT 0,
			rot_x REAL NOT NULL DEFAULT 0,
			rot_y REAL NOT NULL DEFAULT 0,
			rot_z REAL NOT NULL DEFAULT 0,
			scale REAL NOT NULL DEFAULT 1,
			color TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Command log - every voice command received, for diagnostics
		`CREATE TABLE IF NOT EXISTS command_log (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			action TEXT NOT NULL,
			value TEXT NOT NULL DEFAULT '',
			received_at DATETIME NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_command_log_received_at ON command_log(received_at)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
