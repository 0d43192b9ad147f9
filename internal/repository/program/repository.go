package program

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"workout-plan-bot/internal/models"
	"workout-plan-bot/internal/repository"

	"github.com/jmoiron/sqlx"
)

type programRepository struct {
	db *sqlx.DB
}

func NewProgramRepository(db *sqlx.DB) repository.ProgramRepository {
	return &programRepository{db: db}
}

func (r *programRepository) Get(ctx context.Context, day int, intensity models.Intensity) (*models.Program, error) {
	var p models.Program
	query := r.db.Rebind(`SELECT id, day, intensity, program_data FROM programs WHERE day = ? AND intensity = ?`)
	err := r.db.GetContext(ctx, &p, query, day, string(intensity))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get program day=%d intensity=%s: %w", day, intensity, err)
	}
	return &p, nil
}

// Upsert перезаписывает программу дня при повторном импорте.
func (r *programRepository) Upsert(ctx context.Context, p *models.Program) error {
	query := r.db.Rebind(`
		INSERT INTO programs (day, intensity, program_data)
		VALUES (?, ?, ?)
		ON CONFLICT (day, intensity)
		DO UPDATE SET program_data = EXCLUDED.program_data
	`)

	_, err := r.db.ExecContext(ctx, query, p.Day, string(p.Intensity), p.Data)
	if err != nil {
		return fmt.Errorf("upsert program day=%d intensity=%s: %w", p.Day, p.Intensity, err)
	}
	return nil
}

func (r *programRepository) ReplaceAll(ctx context.Context, programs []*models.Program) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM programs`); err != nil {
		return fmt.Errorf("clear programs: %w", err)
	}

	query := tx.Rebind(`INSERT INTO programs (day, intensity, program_data) VALUES (?, ?, ?)`)
	for _, p := range programs {
		if _, err := tx.ExecContext(ctx, query, p.Day, string(p.Intensity), p.Data); err != nil {
			return fmt.Errorf("insert program day=%d intensity=%s: %w", p.Day, p.Intensity, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *programRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM programs`); err != nil {
		return 0, fmt.Errorf("count programs: %w", err)
	}
	return n, nil
}
