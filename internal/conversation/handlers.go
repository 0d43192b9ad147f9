package conversation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"workout-plan-bot/internal/models"
	"workout-plan-bot/internal/repository"
	"workout-plan-bot/internal/schedule"
	"workout-plan-bot/internal/service"

	"go.uber.org/zap"
)

// Первый контакт или /start.
func (m *Machine) handleStart(ctx context.Context, _ Session, in Input) (Step, error) {
	user, created, err := m.users.Register(ctx, in.UserID, in.Name)
	if err != nil {
		return Step{}, err
	}
	name := user.Name
	if name == "" {
		name = in.Name
	}

	if user.HasSchedule() {
		return Step{
			Replies: []Reply{
				m.say(m.text.Onboarding.GreetingAgain, name),
				m.mainMenu(),
			},
			Next: StateMainMenu,
		}, nil
	}

	greeting := m.text.Onboarding.Greeting
	if !created {
		greeting = m.text.Onboarding.GreetingAgain
	}
	return Step{
		Replies: []Reply{
			m.say(greeting, name),
			{Text: m.text.Onboarding.AskDays, RemoveKeyboard: true},
		},
		Next: StateAwaitingDays,
	}, nil
}

func (m *Machine) handleDays(_ context.Context, _ Session, in Input) (Step, error) {
	days := schedule.ParseDays(in.Text)
	if len(days) == 0 {
		return Step{Replies: []Reply{{Text: m.text.Onboarding.NoDays}}, Next: StateAwaitingDays}, nil
	}
	if unknown := m.resolver.Unrecognized(days); len(unknown) > 0 {
		return Step{
			Replies: []Reply{m.say(m.text.Onboarding.UnknownDays, strings.Join(unknown, ", "))},
			Next:    StateAwaitingDays,
		}, nil
	}

	var b strings.Builder
	b.WriteString(m.text.Onboarding.ConfirmHeader)
	for i, day := range days {
		b.WriteString("\n")
		fmt.Fprintf(&b, m.text.Onboarding.ConfirmLine, i+1, day)
	}
	b.WriteString("\n\n")
	b.WriteString(m.text.Onboarding.ConfirmQuestion)

	return Step{
		Replies: []Reply{{Text: b.String(), Keyboard: m.answerKeyboard()}},
		Next:    StateConfirmingDays,
		Pending: days,
	}, nil
}

func (m *Machine) handleConfirmation(ctx context.Context, s Session, in Input) (Step, error) {
	switch in.Kind {
	case KindAffirm:
		if len(s.Pending) == 0 {
			return Step{
				Replies: []Reply{{Text: m.text.Onboarding.AskDaysAgain, RemoveKeyboard: true}},
				Next:    StateAwaitingDays,
			}, nil
		}
		if err := m.users.SetTrainingDays(ctx, in.UserID, s.Pending); err != nil {
			return Step{}, err
		}
		return Step{Replies: []Reply{m.mainMenu()}, Next: StateMainMenu}, nil

	case KindDeny:
		return Step{
			Replies: []Reply{{Text: m.text.Onboarding.AskDaysAgain, RemoveKeyboard: true}},
			Next:    StateAwaitingDays,
		}, nil
	}

	return Step{
		Replies: []Reply{{Text: m.text.Onboarding.ConfirmRetry, Keyboard: m.answerKeyboard()}},
		Next:    StateConfirmingDays,
		Pending: s.Pending,
	}, nil
}

func (m *Machine) handleMenu(ctx context.Context, _ Session, in Input) (Step, error) {
	switch in.Kind {
	case KindMenuPlan:
		user, err := m.scheduledUser(ctx, in.UserID)
		if err != nil || user == nil {
			return m.needDays(), err
		}
		return Step{
			Replies: []Reply{{Text: m.text.IntensityMenu.Text, Keyboard: m.intensityKeyboard()}},
			Next:    StateSelectingPlanIntensity,
		}, nil

	case KindMenuToday:
		user, err := m.scheduledUser(ctx, in.UserID)
		if err != nil || user == nil {
			return m.needDays(), err
		}
		text, err := m.renderToday(ctx, user)
		if err != nil {
			return Step{}, err
		}
		return Step{Replies: []Reply{{Text: text, Keyboard: m.mainMenuKeyboard()}}, Next: StateMainMenu}, nil

	case KindMenuProgress:
		text, err := m.renderProgress(ctx, in.UserID)
		if err != nil {
			return Step{}, err
		}
		return Step{Replies: []Reply{{Text: text, Keyboard: m.mainMenuKeyboard()}}, Next: StateMainMenu}, nil
	}

	return Step{
		Replies: []Reply{{Text: m.text.Errors.UnknownCommand, Keyboard: m.mainMenuKeyboard()}},
		Next:    StateMainMenu,
	}, nil
}

// Выбор интенсивности для полного плана. Любой другой ввод возвращает в главное меню.
func (m *Machine) handlePlanIntensity(ctx context.Context, _ Session, in Input) (Step, error) {
	tier, ok := m.text.IntensityByTier(string(in.Intensity))
	if in.Kind != KindIntensity || !ok {
		return Step{
			Replies: []Reply{{Text: m.text.Errors.UnknownCommand}, m.mainMenu()},
			Next:    StateMainMenu,
		}, nil
	}

	user, err := m.scheduledUser(ctx, in.UserID)
	if err != nil || user == nil {
		return m.needDays(), err
	}

	sections, err := m.planSections(ctx, user.Days(), tier)
	if err != nil {
		return Step{}, err
	}
	text := tier.PlanHeader + "\n" + strings.Join(sections, "\n\n")

	return Step{
		Replies: []Reply{{Text: text}, m.mainMenu()},
		Next:    StateMainMenu,
	}, nil
}

func (m *Machine) handleDeleteAccount(ctx context.Context, _ Session, in Input) (Step, error) {
	removed, err := m.users.Delete(ctx, in.UserID)
	if err != nil {
		return Step{}, err
	}

	text := m.text.Account.NotRegistered
	if removed {
		text = m.text.Account.Deleted
		m.log.Info("account deleted", zap.Int64("user_id", in.UserID))
	}
	return Step{Replies: []Reply{{Text: text, RemoveKeyboard: true}}, Forget: true}, nil
}

// /reset забывает дни тренировок и заново спрашивает их.
func (m *Machine) handleReset(ctx context.Context, _ Session, in Input) (Step, error) {
	if _, _, err := m.users.Register(ctx, in.UserID, in.Name); err != nil {
		return Step{}, err
	}
	if err := m.users.ClearTrainingDays(ctx, in.UserID); err != nil {
		return Step{}, err
	}
	return Step{
		Replies: []Reply{{Text: m.text.Onboarding.AskDays, RemoveKeyboard: true}},
		Next:    StateAwaitingDays,
	}, nil
}

// /log <упражнение> <повторения> <вес>. Состояние диалога не меняется.
func (m *Machine) handleLogProgress(ctx context.Context, s Session, in Input) (Step, error) {
	stay := Step{Next: s.State, Pending: s.Pending}

	entry, ok := parseLogArgs(in.Args)
	if !ok {
		stay.Replies = []Reply{{Text: m.text.Progress.Usage}}
		return stay, nil
	}
	entry.UserID = in.UserID
	entry.Date = m.now().Format(models.DateLayout)

	err := m.progress.Record(ctx, entry)
	if errors.Is(err, service.ErrInvalidEntry) {
		stay.Replies = []Reply{{Text: m.text.Progress.Usage}}
		return stay, nil
	}
	if err != nil {
		return Step{}, err
	}

	stay.Replies = []Reply{m.say(m.text.Progress.Saved, entry.Exercise, entry.Reps, formatWeight(entry.Weight))}
	return stay, nil
}

// Последние два аргумента - повторения и вес, остальное - название упражнения.
func parseLogArgs(args []string) (*models.ProgressEntry, bool) {
	if len(args) < 3 {
		return nil, false
	}
	n := len(args)
	reps, err := strconv.Atoi(args[n-2])
	if err != nil {
		return nil, false
	}
	weight, err := strconv.ParseFloat(strings.Replace(args[n-1], ",", ".", 1), 64)
	// ParseFloat понимает "NaN" и "Inf"
	if err != nil || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return nil, false
	}
	return &models.ProgressEntry{
		Exercise: strings.Join(args[:n-2], " "),
		Reps:     reps,
		Weight:   weight,
	}, true
}

// scheduledUser возвращает nil, nil для неизвестного пользователя или без подтверждённых дней.
func (m *Machine) scheduledUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := m.users.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !user.HasSchedule() {
		return nil, nil
	}
	return user, nil
}

func (m *Machine) needDays() Step {
	return Step{
		Replies: []Reply{{Text: m.text.Onboarding.NeedDays, RemoveKeyboard: true}},
		Next:    StateIdle,
	}
}

func (m *Machine) tryAgain() Reply {
	return Reply{Text: m.text.Errors.TryAgain}
}

func (m *Machine) say(format string, args ...any) Reply {
	return Reply{Text: fmt.Sprintf(format, args...)}
}
