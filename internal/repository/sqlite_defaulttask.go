package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/stagehand/internal/db"
	"github.com/alexanderramin/stagehand/internal/domain"
)

const defaultTaskColumns = `id, event_id, name, days_before, description, created_at, updated_at`

// SQLiteDefaultTaskRepo implements DefaultTaskRepo using a SQLite database.
type SQLiteDefaultTaskRepo struct {
	db db.DBTX
}

// NewSQLiteDefaultTaskRepo creates a new SQLiteDefaultTaskRepo.
func NewSQLiteDefaultTaskRepo(db db.DBTX) *SQLiteDefaultTaskRepo {
	return &SQLiteDefaultTaskRepo{db: db}
}

func (r *SQLiteDefaultTaskRepo) Create(ctx context.Context, t *domain.DefaultTask) error {
	query := `INSERT INTO default_tasks (` + defaultTaskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.EventID,
		t.Name,
		t.DaysBefore,
		t.Description,
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting default task: %w", err)
	}
	return nil
}

func (r *SQLiteDefaultTaskRepo) GetByID(ctx context.Context, id string) (*domain.DefaultTask, error) {
	query := `SELECT ` + defaultTaskColumns + ` FROM default_tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	t, err := scanDefaultTask(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("default task %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning default task: %w", err)
	}
	return t, nil
}

func (r *SQLiteDefaultTaskRepo) ListByEvent(ctx context.Context, eventID string) ([]*domain.DefaultTask, error) {
	query := `SELECT ` + defaultTaskColumns + ` FROM default_tasks
		WHERE event_id = ? ORDER BY days_before DESC, id`
	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("listing default tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.DefaultTask
	for rows.Next() {
		t, err := scanDefaultTask(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning default task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating default tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteDefaultTaskRepo) Update(ctx context.Context, t *domain.DefaultTask) error {
	query := `UPDATE default_tasks SET name = ?, days_before = ?, description = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Name,
		t.DaysBefore,
		t.Description,
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating default task: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("default task %s: %w", t.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *SQLiteDefaultTaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM default_tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting default task: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("default task %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanDefaultTask(scan func(dest ...any) error) (*domain.DefaultTask, error) {
	var t domain.DefaultTask
	var createdAtStr, updatedAtStr string
	if err := scan(&t.ID, &t.EventID, &t.Name, &t.DaysBefore, &t.Description,
		&createdAtStr, &updatedAtStr); err != nil {
		return nil, err
	}
	var err error
	t.CreatedAt, t.UpdatedAt, err = parseTimestamps(createdAtStr, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing default task timestamps: %w", err)
	}
	return &t, nil
}
