package store

import (
	"database/sql"
	"time"
)

// CommandRecord is one received voice command.
type CommandRecord struct {
	ID         int64
	Action     string
	Value      string
	ReceivedAt time.Time
}

// CommandLogRepository records and queries received voice commands.
type CommandLogRepository struct {
	db *sql.DB
}

// CommandLog returns the command log repository for this store.
func (s *Store) CommandLog() *CommandLogRepository {
	return &CommandLogRepository{db: s.db}
}

// Insert appends a command to the log.
func (r *CommandLogRepository) Insert(action, value string, receivedAt time.Time) error {
	_, err := r.db.Exec(
		`INSERT INTO command_log (action, value, received_at) VALUES (?, ?, ?)`,
		action, value, receivedAt,
	)
	return err
}

// Recent returns the most recent commands, newest first, up to limit.
func (r *CommandLogRepository) Recent(limit int) ([]*CommandRecord, error) {
	rows, err := r.db.Query(
		`SELECT id, action, value, received_at FROM command_log
		 ORDER BY received_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*CommandRecord
	for rows.Next() {
		rec := &CommandRecord{}
		if err := rows.Scan(&rec.ID, &rec.Action, &rec.Value, &rec.ReceivedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
