// Package conversation - диалог с пользователем: состояния, входящие сообщения
// с тегами от транспорта и машина переходов.
package conversation

import "workout-plan-bot/internal/models"

type State string

const (
	StateIdle                   State = "idle"
	StateAwaitingDays           State = "awaiting_days"
	StateConfirmingDays         State = "confirming_days"
	StateMainMenu               State = "main_menu"
	StateSelectingPlanIntensity State = "selecting_plan_intensity"
)

// Valid сообщает, известно ли состояние машине.
func (s State) Valid() bool {
	switch s {
	case StateIdle, StateAwaitingDays, StateConfirmingDays, StateMainMenu, StateSelectingPlanIntensity:
		return true
	}
	return false
}

// Kind - тег входящего сообщения, который присваивает транспорт.
type Kind int

const (
	KindText Kind = iota
	KindStart
	KindDeleteAccount
	KindReset
	KindLogProgress
	KindAffirm
	KindDeny
	KindMenuPlan
	KindMenuToday
	KindMenuProgress
	KindIntensity
)

var kindNames = [...]string{
	KindText:          "text",
	KindStart:         "start",
	KindDeleteAccount: "delete_account",
	KindReset:         "reset",
	KindLogProgress:   "log_progress",
	KindAffirm:        "affirm",
	KindDeny:          "deny",
	KindMenuPlan:      "menu_plan",
	KindMenuToday:     "menu_today",
	KindMenuProgress:  "menu_progress",
	KindIntensity:     "intensity",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Input - одно входящее сообщение после классификации.
type Input struct {
	UserID    int64
	Name      string
	Kind      Kind
	Text      string           // исходный текст, нужен для ввода дней
	Intensity models.Intensity // для KindIntensity
	Args      []string         // аргументы команды /log
}

// Reply - исходящее сообщение. Keyboard - строки кнопок быстрого ответа.
type Reply struct {
	Text           string
	Keyboard       [][]string
	RemoveKeyboard bool
}

// Step - результат обработчика: ответы и следующее состояние.
// Переход применяет только диспетчер Machine.Handle.
type Step struct {
	Replies []Reply
	Next    State
	Pending []string
	// Forget удаляет сессию вместо сохранения
	Forget bool
}

// Session - состояние диалога одного пользователя.
type Session struct {
	UserID  int64
	State   State
	Pending []string // дни, ожидающие подтверждения
}
