package replay

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Schema creates the replay table. Records are stored gzip-compressed.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS attack_replays (
		id TEXT PRIMARY KEY,
		weapon TEXT NOT NULL,
		kind TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		replay_data BLOB NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_attack_replays_created ON attack_replays(created_at)`,
}

// Summary is the listing view of a stored record.
type Summary struct {
	ID        uuid.UUID `json:"id"`
	Weapon    string    `json:"weapon"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"createdAt"`
}

type SQLiteStore struct {
	DB *sql.DB
}

// NewSQLiteStore wraps db, which must already carry Schema.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{DB: db}
}

// Save writes rec, replacing any record with the same id.
func (s *SQLiteStore) Save(ctx context.Context, rec *Record) error {
	data, err := Encode(rec)
	if err != nil {
		return err
	}
	kind := ""
	if rec.Result != nil {
		kind = string(rec.Result.Kind())
	}
	_, err = s.DB.ExecContext(ctx,
		`INSERT OR REPLACE INTO attack_replays (id, weapon, kind, created_at, replay_data) VALUES (?, ?, ?, ?, ?)`,
		rec.ID.String(), rec.Attack.Weapon.String(), kind, rec.CreatedAt.UnixNano(), data)
	if err != nil {
		return fmt.Errorf("save replay %s: %w", rec.ID, err)
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context, id uuid.UUID) (*Record, error) {
	var data []byte
	err := s.DB.QueryRowContext(ctx,
		`SELECT replay_data FROM attack_replays WHERE id = ?`, id.String()).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("load replay %s: %w", id, err)
	}
	return Decode(data)
}

// List returns the newest records first. A limit of zero or less lists
// everything.
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]Summary, error) {
	q := `SELECT id, weapon, kind, created_at FROM attack_replays ORDER BY created_at DESC, id`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list replays: %w", err)
	}
	defer rows.Close()

	out := []Summary{}
	for rows.Next() {
		var (
			sm      Summary
			id      string
			created int64
		)
		if err := rows.Scan(&id, &sm.Weapon, &sm.Kind, &created); err != nil {
			return nil, fmt.Errorf("scan replay: %w", err)
		}
		if sm.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("replay id %q: %w", id, err)
		}
		sm.CreatedAt = time.Unix(0, created).UTC()
		out = append(out, sm)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM attack_replays WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("delete replay %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}
