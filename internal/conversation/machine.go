package conversation

import (
	"context"
	"time"

	"workout-plan-bot/internal/schedule"
	"workout-plan-bot/internal/service"
	"workout-plan-bot/pkg/locales"

	"go.uber.org/zap"
)

type handler func(ctx context.Context, s Session, in Input) (Step, error)

// Deps - всё, что нужно машине. Now должен возвращать время в часовом поясе бота.
type Deps struct {
	Users    service.UserService
	Catalog  service.CatalogService
	Progress service.ProgressService
	Sessions SessionStore
	Resolver *schedule.Resolver
	Locales  *locales.Locales
	Logger   *zap.Logger
	Now      func() time.Time
}

// Machine выбирает обработчик по команде или текущему состоянию и применяет
// возвращённый им Step. Обработчики друг друга не вызывают.
type Machine struct {
	users    service.UserService
	catalog  service.CatalogService
	progress service.ProgressService
	sessions SessionStore
	resolver *schedule.Resolver
	text     *locales.Locales
	log      *zap.Logger
	now      func() time.Time

	commands map[Kind]handler
	states   map[State]handler
}

func NewMachine(d Deps) *Machine {
	m := &Machine{
		users:    d.Users,
		catalog:  d.Catalog,
		progress: d.Progress,
		sessions: d.Sessions,
		resolver: d.Resolver,
		text:     d.Locales,
		log:      d.Logger,
		now:      d.Now,
	}
	if m.resolver == nil {
		m.resolver = schedule.NewResolver(m.text.WeekdayNames())
	}
	if m.log == nil {
		m.log = zap.NewNop()
	}
	if m.now == nil {
		m.now = time.Now
	}

	// команды доступны из любого состояния
	m.commands = map[Kind]handler{
		KindStart:         m.handleStart,
		KindDeleteAccount: m.handleDeleteAccount,
		KindReset:         m.handleReset,
		KindLogProgress:   m.handleLogProgress,
	}
	m.states = map[State]handler{
		StateIdle:                   m.handleStart,
		StateAwaitingDays:           m.handleDays,
		StateConfirmingDays:         m.handleConfirmation,
		StateMainMenu:               m.handleMenu,
		StateSelectingPlanIntensity: m.handlePlanIntensity,
	}
	return m
}

// Handle обрабатывает одно сообщение и возвращает ответы. Ошибка хранилища
// превращается в ответ "попробуй еще раз", сессия при этом не меняется.
func (m *Machine) Handle(ctx context.Context, in Input) []Reply {
	log := m.log.With(zap.Int64("user_id", in.UserID), zap.Stringer("kind", in.Kind))

	s, err := m.sessions.Load(ctx, in.UserID)
	if err != nil {
		log.Error("failed to load session", zap.Error(err))
		return []Reply{m.tryAgain()}
	}
	log = log.With(zap.String("state", string(s.State)))

	step, err := m.route(s, in)(ctx, s, in)
	if err != nil {
		log.Error("handler failed", zap.Error(err))
		return []Reply{m.tryAgain()}
	}

	if step.Forget {
		err = m.sessions.Delete(ctx, in.UserID)
	} else {
		err = m.sessions.Save(ctx, Session{UserID: in.UserID, State: step.Next, Pending: step.Pending})
	}
	if err != nil {
		log.Error("failed to store session", zap.Error(err))
		return []Reply{m.tryAgain()}
	}

	if step.Next != s.State {
		log.Debug("transition", zap.String("next", string(step.Next)))
	}
	return step.Replies
}

func (m *Machine) route(s Session, in Input) handler {
	if h, ok := m.commands[in.Kind]; ok {
		return h
	}
	if h, ok := m.states[s.State]; ok {
		return h
	}
	return m.handleStart
}
