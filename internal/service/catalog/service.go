package catalog_service

import (
	"context"
	"errors"
	"fmt"

	"workout-plan-bot/internal/models"
	"workout-plan-bot/internal/repository"
	"workout-plan-bot/internal/service"
)

type catalogService struct {
	programRepo repository.ProgramRepository
}

func NewCatalogService(programRepo repository.ProgramRepository) service.CatalogService {
	return &catalogService{programRepo: programRepo}
}

func (s *catalogService) Lookup(ctx context.Context, day int, intensity models.Intensity) (*models.Program, error) {
	p, err := s.programRepo.Get(ctx, day, intensity)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	exercises, err := models.DecodeExercises(p.Data)
	if err != nil {
		return nil, fmt.Errorf("program day=%d intensity=%s: %w", day, intensity, err)
	}
	p.Exercises = exercises
	return p, nil
}

func (s *catalogService) Save(ctx context.Context, day int, intensity models.Intensity, exercises []models.Exercise) error {
	p := &models.Program{Day: day, Intensity: intensity, Exercises: exercises}
	if err := encode(p); err != nil {
		return err
	}
	return s.programRepo.Upsert(ctx, p)
}

func (s *catalogService) Replace(ctx context.Context, programs []*models.Program) error {
	for _, p := range programs {
		if err := encode(p); err != nil {
			return err
		}
	}
	return s.programRepo.ReplaceAll(ctx, programs)
}

// encode проверяет ключ программы и заполняет Data из Exercises.
func encode(p *models.Program) error {
	if p.Day < 1 {
		return fmt.Errorf("invalid program day %d", p.Day)
	}
	if p.Intensity == "" {
		return fmt.Errorf("program day %d: empty intensity", p.Day)
	}

	data, err := models.EncodeExercises(p.Exercises)
	if err != nil {
		return err
	}
	p.Data = data
	return nil
}

func (s *catalogService) Count(ctx context.Context) (int, error) {
	return s.programRepo.Count(ctx)
}
