package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/stagehand/internal/db"
	"github.com/alexanderramin/stagehand/internal/domain"
)

// SQLiteEventRepo implements EventRepo using a SQLite database.
type SQLiteEventRepo struct {
	db db.DBTX
}

// NewSQLiteEventRepo creates a new SQLiteEventRepo. It accepts either a
// *sql.DB or a transaction from UnitOfWork.WithinTx.
func NewSQLiteEventRepo(db db.DBTX) *SQLiteEventRepo {
	return &SQLiteEventRepo{db: db}
}

func (r *SQLiteEventRepo) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Name,
		e.CreatedAt.Format(time.RFC3339),
		e.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}

func (r *SQLiteEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT id, name, created_at, updated_at FROM events WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var e domain.Event
	var createdAtStr, updatedAtStr string
	if err := row.Scan(&e.ID, &e.Name, &createdAtStr, &updatedAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("event %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning event: %w", err)
	}

	var err error
	e.CreatedAt, e.UpdatedAt, err = parseTimestamps(createdAtStr, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing event timestamps: %w", err)
	}
	return &e, nil
}

func (r *SQLiteEventRepo) List(ctx context.Context, query string) ([]*domain.Event, error) {
	var rows *sql.Rows
	var err error
	if query == "" {
		rows, err = r.db.QueryContext(ctx,
			`SELECT id, name, created_at, updated_at FROM events ORDER BY created_at DESC, id`)
	} else {
		rows, err = r.db.QueryContext(ctx,
			`SELECT id, name, created_at, updated_at FROM events
			 WHERE name LIKE '%' || ? || '%' COLLATE NOCASE
			 ORDER BY created_at DESC, id`, query)
	}
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		var e domain.Event
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&e.ID, &e.Name, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning event row: %w", err)
		}
		e.CreatedAt, e.UpdatedAt, err = parseTimestamps(createdAtStr, updatedAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing event timestamps: %w", err)
		}
		events = append(events, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return events, nil
}

func (r *SQLiteEventRepo) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events SET name = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		e.Name,
		e.UpdatedAt.Format(time.RFC3339),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating event: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("event %s: %w", e.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *SQLiteEventRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("event %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
