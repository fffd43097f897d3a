package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/stagehand/internal/db"
	"github.com/alexanderramin/stagehand/internal/domain"
)

const holdingColumns = `id, event_id, name, date, channel_id, mention, created_at, updated_at`

// SQLiteHoldingRepo implements HoldingRepo using a SQLite database.
type SQLiteHoldingRepo struct {
	db db.DBTX
}

// NewSQLiteHoldingRepo creates a new SQLiteHoldingRepo.
func NewSQLiteHoldingRepo(db db.DBTX) *SQLiteHoldingRepo {
	return &SQLiteHoldingRepo{db: db}
}

func (r *SQLiteHoldingRepo) Create(ctx context.Context, h *domain.Holding) error {
	query := `INSERT INTO holdings (` + holdingColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		h.ID,
		nullableStringToValue(h.EventID),
		h.Name,
		h.Date.Format(dateLayout),
		h.ChannelID,
		h.Mention,
		h.CreatedAt.Format(time.RFC3339),
		h.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting holding: %w", err)
	}
	return nil
}

func (r *SQLiteHoldingRepo) GetByID(ctx context.Context, id string) (*domain.Holding, error) {
	query := `SELECT ` + holdingColumns + ` FROM holdings WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	h, err := scanHolding(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("holding %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning holding: %w", err)
	}
	return h, nil
}

func (r *SQLiteHoldingRepo) List(ctx context.Context) ([]*domain.Holding, error) {
	query := `SELECT ` + holdingColumns + ` FROM holdings ORDER BY date DESC, id`
	return r.queryHoldings(ctx, query)
}

func (r *SQLiteHoldingRepo) ListByEvent(ctx context.Context, eventID string) ([]*domain.Holding, error) {
	query := `SELECT ` + holdingColumns + ` FROM holdings WHERE event_id = ? ORDER BY date DESC, id`
	return r.queryHoldings(ctx, query, eventID)
}

func (r *SQLiteHoldingRepo) Update(ctx context.Context, h *domain.Holding) error {
	query := `UPDATE holdings SET name = ?, date = ?, channel_id = ?, mention = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		h.Name,
		h.Date.Format(dateLayout),
		h.ChannelID,
		h.Mention,
		h.UpdatedAt.Format(time.RFC3339),
		h.ID,
	)
	if err != nil {
		return fmt.Errorf("updating holding: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("holding %s: %w", h.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *SQLiteHoldingRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM holdings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting holding: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("holding %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *SQLiteHoldingRepo) queryHoldings(ctx context.Context, query string, args ...any) ([]*domain.Holding, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing holdings: %w", err)
	}
	defer rows.Close()

	var holdings []*domain.Holding
	for rows.Next() {
		h, err := scanHolding(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning holding row: %w", err)
		}
		holdings = append(holdings, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating holdings: %w", err)
	}
	return holdings, nil
}

func scanHolding(scan func(dest ...any) error) (*domain.Holding, error) {
	var h domain.Holding
	var eventID sql.NullString
	var dateStr, createdAtStr, updatedAtStr string
	if err := scan(&h.ID, &eventID, &h.Name, &dateStr, &h.ChannelID, &h.Mention,
		&createdAtStr, &updatedAtStr); err != nil {
		return nil, err
	}

	h.EventID = parseNullableString(eventID)

	var err error
	h.Date, err = time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, fmt.Errorf("parsing holding date: %w", err)
	}
	h.CreatedAt, h.UpdatedAt, err = parseTimestamps(createdAtStr, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing holding timestamps: %w", err)
	}
	return &h, nil
}
