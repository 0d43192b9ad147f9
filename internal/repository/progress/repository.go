package progress

import (
	"context"
	"fmt"

	"workout-plan-bot/internal/models"
	"workout-plan-bot/internal/repository"

	"github.com/jmoiron/sqlx"
)

type progressRepository struct {
	db *sqlx.DB
}

func NewProgressRepository(db *sqlx.DB) repository.ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Create(ctx context.Context, e *models.ProgressEntry) error {
	query := r.db.Rebind(`
		INSERT INTO progress (user_id, date, exercise, reps, weight)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`)

	err := r.db.QueryRowxContext(ctx, query,
		e.UserID,
		e.Date,
		e.Exercise,
		e.Reps,
		e.Weight,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("insert progress of user %d: %w", e.UserID, err)
	}
	return nil
}

func (r *progressRepository) ListByUser(ctx context.Context, userID int64) ([]models.ProgressEntry, error) {
	entries := []models.ProgressEntry{}
	query := r.db.Rebind(`
		SELECT id, user_id, date, exercise, reps, weight
		FROM progress
		WHERE user_id = ?
		ORDER BY id
	`)

	if err := r.db.SelectContext(ctx, &entries, query, userID); err != nil {
		return nil, fmt.Errorf("list progress of user %d: %w", userID, err)
	}
	return entries, nil
}
