package store

import (
	"database/sql"
	"errors"
	"time"
)

// Pose is a named snapshot of the target state that can be re-applied later.
type Pose struct {
	ID        string
	Name      string
	PosX      float64
	PosY      float64
	PosZ      float64
	RotX      float64
	RotY      float64
	RotZ      float64
	Scale     float64
	Color     string
	CreatedAt time.Time
}

// PoseRepository provides CRUD operations for poses.
type PoseRepository struct {
	db *sql.DB
}

// Poses returns the pose repository for this store.
func (s *Store) Poses() *PoseRepository {
	return &PoseRepository{db: s.db}
}

// Create inserts a new pose.
func (r *PoseRepository) Create(p *Pose) error {
	p.CreatedAt = time.Now()

	_, err := r.db.Exec(
		`INSERT INTO poses (id, name, pos_x, pos_y, pos_z, rot_x, rot_y, rot_z, scale, color, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.PosX, p.PosY, p.PosZ, p.RotX, p.RotY, p.RotZ, p.Scale, p.Color, p.CreatedAt,
	)
	return err
}

// GetByID retrieves a pose by its ID.
func (r *PoseRepository) GetByID(id string) (*Pose, error) {
	p := &Pose{}

	err := r.db.QueryRow(
		`SELECT id, name, pos_x, pos_y, pos_z, rot_x, rot_y, rot_z, scale, color, created_at
		 FROM poses WHERE id = ?`,
		id,
	).Scan(&p.ID, &p.Name, &p.PosX, &p.PosY, &p.PosZ, &p.RotX, &p.RotY, &p.RotZ, &p.Scale, &p.Color, &p.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return p, nil
}

// List retrieves all poses, newest first.
func (r *PoseRepository) List() ([]*Pose, error) {
	rows, err := r.db.Query(
		`SELECT id, name, pos_x, pos_y, pos_z, rot_x, rot_y, rot_z, scale, color, created_at
		 FROM poses ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var poses []*Pose
	for rows.Next() {
		p := &Pose{}
		if err := rows.Scan(&p.ID, &p.Name, &p.PosX, &p.PosY, &p.PosZ, &p.RotX, &p.RotY, &p.RotZ, &p.Scale, &p.Color, &p.CreatedAt); err != nil {
			return nil, err
		}
		poses = append(poses, p)
	}

	return poses, rows.Err()
}

// Delete removes a pose by its ID.
func (r *PoseRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM poses WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
