package models

// Session - сохранённое состояние диалога пользователя.
type Session struct {
	UserID      int64  `db:"user_id" json:"user_id"`
	State       string `db:"state" json:"state"`
	PendingDays string `db:"pending_days" json:"pending_days"` // дни, ожидающие подтверждения
}
