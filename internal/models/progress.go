package models

// DateLayout формат даты в записях прогресса
const DateLayout = "2006-01-02"

// ProgressEntry - запись журнала прогресса. Только добавление.
type ProgressEntry struct {
	ID       int64   `db:"id" json:"id"`
	UserID   int64   `db:"user_id" json:"user_id"`
	Date     string  `db:"date" json:"date"`
	Exercise string  `db:"exercise" json:"exercise"`
	Reps     int     `db:"reps" json:"reps"`
	Weight   float64 `db:"weight" json:"weight"`
}
