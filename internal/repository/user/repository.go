package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"workout-plan-bot/internal/models"
	"workout-plan-bot/internal/repository"

	"github.com/jmoiron/sqlx"
)

const userColumns = `id, name, weight, height, goal, training_days, start_time`

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) (bool, error) {
	query := r.db.Rebind(`
		INSERT INTO users (id, name, weight, height, goal, training_days, start_time)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING
	`)

	res, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Name,
		user.Weight,
		user.Height,
		user.Goal,
		user.TrainingDays,
		user.StartTime,
	)
	if err != nil {
		return false, fmt.Errorf("insert user %d: %w", user.ID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	query := r.db.Rebind(`SELECT ` + userColumns + ` FROM users WHERE id = ?`)
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &user, nil
}

func (r *userRepository) UpdateTrainingDays(ctx context.Context, id int64, days string) error {
	query := r.db.Rebind(`UPDATE users SET training_days = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query, days, id)
	if err != nil {
		return fmt.Errorf("update training days of user %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := r.db.Rebind(`DELETE FROM users WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete user %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *userRepository) ListScheduled(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE training_days <> '' ORDER BY id`

	err := r.db.SelectContext(ctx, &users, query)
	if err != nil {
		return nil, fmt.Errorf("list scheduled users: %w", err)
	}

	return users, nil
}
