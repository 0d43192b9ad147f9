// Package schedule сопоставляет дни тренировок пользователя с днями недели.
package schedule

import (
	"strings"
	"time"
)

// DefaultNames - таблица дней, если в локали своей нет.
var DefaultNames = map[string]time.Weekday{
	"понедельник": time.Monday,
	"вторник":     time.Tuesday,
	"среда":       time.Wednesday,
	"четверг":     time.Thursday,
	"пятница":     time.Friday,
	"суббота":     time.Saturday,
	"воскресенье": time.Sunday,
	"monday":      time.Monday,
	"tuesday":     time.Tuesday,
	"wednesday":   time.Wednesday,
	"thursday":    time.Thursday,
	"friday":      time.Friday,
	"saturday":    time.Saturday,
	"sunday":      time.Sunday,
}

// Resolver определяет, какой по счёту день цикла выпадает на дату.
// Таблица не меняется после создания, поэтому Resolver можно делить между горутинами.
type Resolver struct {
	names map[string]int
}

// NewResolver строит Resolver по таблице названий. Регистр и пробелы
// по краям не учитываются.
func NewResolver(names map[string]time.Weekday) *Resolver {
	if len(names) == 0 {
		names = DefaultNames
	}
	r := &Resolver{names: make(map[string]int, len(names))}
	for name, wd := range names {
		r.names[normalize(name)] = Canonical(wd)
	}
	return r
}

// Canonical: понедельник=1 ... воскресенье=7.
func Canonical(wd time.Weekday) int {
	if wd == time.Sunday {
		return 7
	}
	return int(wd)
}

// Weekday возвращает номер дня по названию.
func (r *Resolver) Weekday(name string) (int, bool) {
	n, ok := r.names[normalize(name)]
	return n, ok
}

func (r *Resolver) Recognized(name string) bool {
	_, ok := r.Weekday(name)
	return ok
}

// Slot возвращает позицию (с 1) дня недели date в days. При повторах
// берётся первое вхождение, неизвестные названия не совпадают ни с чем.
func (r *Resolver) Slot(days []string, date time.Time) (int, bool) {
	today := Canonical(date.Weekday())
	for i, day := range days {
		if n, ok := r.Weekday(day); ok && n == today {
			return i + 1, true
		}
	}
	return 0, false
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
