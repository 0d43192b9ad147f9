package repository

import (
	"context"
	"errors"

	"workout-plan-bot/internal/models"
)

// ErrNotFound возвращается, когда запись с таким ключом отсутствует.
var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	// Create добавляет пользователя, если его ещё нет. created=false, если запись уже была.
	Create(ctx context.Context, user *models.User) (created bool, err error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	UpdateTrainingDays(ctx context.Context, id int64, days string) error
	// Delete удаляет пользователя и сообщает, была ли запись.
	Delete(ctx context.Context, id int64) (bool, error)

	// Пользователи с заполненными днями тренировок
	ListScheduled(ctx context.Context) ([]*models.User, error)
}

type ProgramRepository interface {
	Get(ctx context.Context, day int, intensity models.Intensity) (*models.Program, error)
	Upsert(ctx context.Context, program *models.Program) error
	// ReplaceAll заменяет весь каталог одной транзакцией.
	ReplaceAll(ctx context.Context, programs []*models.Program) error
	Count(ctx context.Context) (int, error)
}

type ProgressRepository interface {
	Create(ctx context.Context, entry *models.ProgressEntry) error
	ListByUser(ctx context.Context, userID int64) ([]models.ProgressEntry, error)
}

type SessionRepository interface {
	Get(ctx context.Context, userID int64) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, userID int64) error
}
