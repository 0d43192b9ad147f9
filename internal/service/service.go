package service

import (
	"context"
	"errors"

	"workout-plan-bot/internal/models"
)

// ErrInvalidEntry возвращается для записи прогресса без упражнения, даты или с отрицательными значениями.
var ErrInvalidEntry = errors.New("invalid progress entry")

type UserService interface {
	// Register создаёт пользователя при первом контакте. created=false для уже известного.
	Register(ctx context.Context, id int64, name string) (user *models.User, created bool, err error)
	Get(ctx context.Context, id int64) (*models.User, error)
	SetTrainingDays(ctx context.Context, id int64, days []string) error
	ClearTrainingDays(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) (bool, error)

	ListScheduled(ctx context.Context) ([]*models.User, error)
}

// CatalogService - доступ к общему каталогу программ.
type CatalogService interface {
	// Lookup возвращает nil, nil если программа на этот день не загружена.
	// Битый program_data даёт ошибку, оборачивающую models.ErrMalformedProgram.
	Lookup(ctx context.Context, day int, intensity models.Intensity) (*models.Program, error)

	// Для импорта
	Save(ctx context.Context, day int, intensity models.Intensity, exercises []models.Exercise) error
	// Replace заменяет весь каталог: программы, которых нет в списке, удаляются.
	Replace(ctx context.Context, programs []*models.Program) error
	Count(ctx context.Context) (int, error)
}

type ProgressService interface {
	Record(ctx context.Context, entry *models.ProgressEntry) error
	History(ctx context.Context, userID int64) ([]models.ProgressEntry, error)
}
