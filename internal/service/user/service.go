package user_service

import (
	"context"
	"fmt"

	"workout-plan-bot/internal/models"
	"workout-plan-bot/internal/repository"
	"workout-plan-bot/internal/service"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) service.UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Register(ctx context.Context, id int64, name string) (*models.User, bool, error) {
	created, err := s.userRepo.Create(ctx, &models.User{ID: id, Name: name})
	if err != nil {
		return nil, false, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return user, created, nil
}

func (s *userService) Get(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) SetTrainingDays(ctx context.Context, id int64, days []string) error {
	if len(days) == 0 {
		return fmt.Errorf("user %d: empty training days", id)
	}
	// список заменяется целиком, повторное подтверждение не дописывает дни
	return s.userRepo.UpdateTrainingDays(ctx, id, models.JoinDays(days))
}

func (s *userService) ClearTrainingDays(ctx context.Context, id int64) error {
	return s.userRepo.UpdateTrainingDays(ctx, id, "")
}

func (s *userService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.userRepo.Delete(ctx, id)
}

func (s *userService) ListScheduled(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.ListScheduled(ctx)
}
