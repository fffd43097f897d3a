package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/stagehand/internal/db"
	"github.com/alexanderramin/stagehand/internal/domain"
)

const holdingTaskColumns = `id, holding_id, name, days_before, description, reminded, created_at, updated_at`

// SQLiteHoldingTaskRepo implements HoldingTaskRepo using a SQLite database.
type SQLiteHoldingTaskRepo struct {
	db db.DBTX
}

// NewSQLiteHoldingTaskRepo creates a new SQLiteHoldingTaskRepo.
func NewSQLiteHoldingTaskRepo(db db.DBTX) *SQLiteHoldingTaskRepo {
	return &SQLiteHoldingTaskRepo{db: db}
}

func (r *SQLiteHoldingTaskRepo) Create(ctx context.Context, t *domain.HoldingTask) error {
	query := `INSERT INTO holding_tasks (` + holdingTaskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.HoldingID,
		t.Name,
		t.DaysBefore,
		t.Description,
		boolToInt(t.Reminded),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting holding task: %w", err)
	}
	return nil
}

func (r *SQLiteHoldingTaskRepo) GetByID(ctx context.Context, id string) (*domain.HoldingTask, error) {
	query := `SELECT ` + holdingTaskColumns + ` FROM holding_tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	t, err := scanHoldingTask(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("holding task %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning holding task: %w", err)
	}
	return t, nil
}

func (r *SQLiteHoldingTaskRepo) ListByHolding(ctx context.Context, holdingID string) ([]*domain.HoldingTask, error) {
	query := `SELECT ` + holdingTaskColumns + ` FROM holding_tasks
		WHERE holding_id = ? ORDER BY days_before DESC, id`
	rows, err := r.db.QueryContext(ctx, query, holdingID)
	if err != nil {
		return nil, fmt.Errorf("listing holding tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.HoldingTask
	for rows.Next() {
		t, err := scanHoldingTask(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning holding task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating holding tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteHoldingTaskRepo) ListDue(ctx context.Context, now time.Time) ([]DueTask, error) {
	// due date = holding date minus lead time, computed in SQL so the
	// sweep is a single query.
	query := `SELECT t.id, t.holding_id, t.name, t.days_before, t.description, t.reminded,
			t.created_at, t.updated_at, h.channel_id, h.mention
		FROM holding_tasks t
		JOIN holdings h ON h.id = t.holding_id
		WHERE t.reminded = 0
		  AND date(h.date, '-' || t.days_before || ' days') <= date(?)
		ORDER BY h.date, t.days_before DESC, t.id`
	rows, err := r.db.QueryContext(ctx, query, now.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing due tasks: %w", err)
	}
	defer rows.Close()

	var due []DueTask
	for rows.Next() {
		var t domain.HoldingTask
		var reminded int
		var createdAtStr, updatedAtStr, channelID, mention string
		if err := rows.Scan(&t.ID, &t.HoldingID, &t.Name, &t.DaysBefore, &t.Description,
			&reminded, &createdAtStr, &updatedAtStr, &channelID, &mention); err != nil {
			return nil, fmt.Errorf("scanning due task row: %w", err)
		}
		t.Reminded = intToBool(reminded)
		t.CreatedAt, t.UpdatedAt, err = parseTimestamps(createdAtStr, updatedAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing due task timestamps: %w", err)
		}
		due = append(due, DueTask{Task: t, ChannelID: channelID, Mention: mention})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating due tasks: %w", err)
	}
	return due, nil
}

func (r *SQLiteHoldingTaskRepo) Update(ctx context.Context, t *domain.HoldingTask) error {
	query := `UPDATE holding_tasks SET name = ?, days_before = ?, description = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Name,
		t.DaysBefore,
		t.Description,
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating holding task: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("holding task %s: %w", t.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *SQLiteHoldingTaskRepo) MarkReminded(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE holding_tasks SET reminded = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("marking holding task reminded: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("holding task %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *SQLiteHoldingTaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM holding_tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting holding task: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("holding task %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanHoldingTask(scan func(dest ...any) error) (*domain.HoldingTask, error) {
	var t domain.HoldingTask
	var reminded int
	var createdAtStr, updatedAtStr string
	if err := scan(&t.ID, &t.HoldingID, &t.Name, &t.DaysBefore, &t.Description,
		&reminded, &createdAtStr, &updatedAtStr); err != nil {
		return nil, err
	}
	t.Reminded = intToBool(reminded)

	var err error
	t.CreatedAt, t.UpdatedAt, err = parseTimestamps(createdAtStr, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing holding task timestamps: %w", err)
	}
	return &t, nil
}
