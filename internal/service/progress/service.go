package progress_service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"workout-plan-bot/internal/models"
	"workout-plan-bot/internal/repository"
	"workout-plan-bot/internal/service"
)

type progressService struct {
	progressRepo repository.ProgressRepository
}

func NewProgressService(progressRepo repository.ProgressRepository) service.ProgressService {
	return &progressService{progressRepo: progressRepo}
}

// Record добавляет запись в журнал. Название упражнения с каталогом не сверяется.
func (s *progressService) Record(ctx context.Context, e *models.ProgressEntry) error {
	e.Exercise = strings.TrimSpace(e.Exercise)
	if e.Exercise == "" {
		return fmt.Errorf("%w: exercise is required", service.ErrInvalidEntry)
	}
	if e.Reps < 0 || e.Weight < 0 {
		return fmt.Errorf("%w: negative reps or weight", service.ErrInvalidEntry)
	}
	if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
		return fmt.Errorf("%w: weight %v is not a number", service.ErrInvalidEntry, e.Weight)
	}
	if _, err := time.Parse(models.DateLayout, e.Date); err != nil {
		return fmt.Errorf("%w: bad date %q", service.ErrInvalidEntry, e.Date)
	}

	return s.progressRepo.Create(ctx, e)
}

func (s *progressService) History(ctx context.Context, userID int64) ([]models.ProgressEntry, error) {
	return s.progressRepo.ListByUser(ctx, userID)
}
