package scheduler

import (
	"context"
	"fmt"
	"time"

	"workout-plan-bot/internal/schedule"
	"workout-plan-bot/internal/service"
	"workout-plan-bot/pkg/locales"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// Notifier отправляет текст пользователю
type Notifier interface {
	Notify(ctx context.Context, userID int64, text string) error
}

// Scheduler раз в день напоминает пользователям о тренировке.
type Scheduler struct {
	scheduler *gocron.Scheduler
	at        string
	loc       *time.Location

	users    service.UserService
	resolver *schedule.Resolver
	text     *locales.Locales
	notifier Notifier
	log      *zap.Logger
}

// New создаёт планировщик. at - время отправки в формате HH:MM в часовом поясе loc.
func New(
	at string,
	loc *time.Location,
	users service.UserService,
	resolver *schedule.Resolver,
	text *locales.Locales,
	notifier Notifier,
	log *zap.Logger,
) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(loc),
		at:        at,
		loc:       loc,
		users:     users,
		resolver:  resolver,
		text:      text,
		notifier:  notifier,
		log:       log,
	}
}

// Start запускает ежедневную задачу
func (s *Scheduler) Start() error {
	_, err := s.scheduler.Every(1).Day().At(s.at).Do(s.sendReminders)
	if err != nil {
		return fmt.Errorf("schedule reminders at %s: %w", s.at, err)
	}

	s.scheduler.StartAsync()
	s.log.Info("reminders scheduled", zap.String("at", s.at), zap.String("timezone", s.loc.String()))
	return nil
}

// Stop останавливает планировщик
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) sendReminders() {
	sent, err := s.RunOnce(context.Background(), time.Now().In(s.loc))
	if err != nil {
		s.log.Error("reminders failed", zap.Error(err))
		return
	}
	s.log.Info("reminders sent", zap.Int("count", sent))
}

// RunOnce отправляет напоминания всем, у кого date - день тренировки.
// Ошибка отправки одному пользователю не останавливает остальных.
func (s *Scheduler) RunOnce(ctx context.Context, date time.Time) (int, error) {
	users, err := s.users.ListScheduled(ctx)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, user := range users {
		slot, ok := s.resolver.Slot(user.Days(), date)
		if !ok {
			continue
		}
		if err := s.notifier.Notify(ctx, user.ID, fmt.Sprintf(s.text.Reminder.Text, slot)); err != nil {
			s.log.Warn("failed to send reminder", zap.Int64("user_id", user.ID), zap.Error(err))
			continue
		}
		sent++
	}
	return sent, nil
}
