package models

import "strings"

// DaysSeparator разделитель дней тренировок в колонке training_days
const DaysSeparator = ","

type User struct {
	ID           int64  `db:"id" json:"id"` // Telegram user ID
	Name         string `db:"name" json:"name"`
	Weight       int    `db:"weight" json:"weight"`
	Height       int    `db:"height" json:"height"`
	Goal         string `db:"goal" json:"goal"`
	TrainingDays string `db:"training_days" json:"training_days"` // "Понедельник, Среда, Пятница"
	StartTime    string `db:"start_time" json:"start_time"`
}

// Days возвращает дни тренировок в порядке, в котором их указал пользователь.
func (u *User) Days() []string {
	return SplitDays(u.TrainingDays)
}

// HasSchedule сообщает, подтверждены ли дни тренировок.
func (u *User) HasSchedule() bool {
	return len(u.Days()) > 0
}

// SplitDays разбирает сохранённую строку дней, пустые элементы отбрасываются.
func SplitDays(s string) []string {
	var days []string
	for _, part := range strings.Split(s, DaysSeparator) {
		if day := strings.TrimSpace(part); day != "" {
			days = append(days, day)
		}
	}
	return days
}

// JoinDays собирает список дней в строку для хранения.
func JoinDays(days []string) string {
	return strings.Join(days, DaysSeparator+" ")
}
