package schedule

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ParseDays разбивает ввод по запятым. Пробелы обрезаются, пустые куски
// отбрасываются, каждое название с заглавной буквы ("  среда" -> "Среда").
func ParseDays(text string) []string {
	// Caser хранит состояние, общий экземпляр небезопасен
	title := cases.Title(language.Russian)

	var days []string
	for _, part := range strings.Split(text, ",") {
		token := strings.TrimSpace(part)
		if token == "" {
			continue
		}
		days = append(days, title.String(strings.ToLower(token)))
	}
	return days
}

// Unrecognized возвращает названия, которых нет в таблице дней.
func (r *Resolver) Unrecognized(days []string) []string {
	var unknown []string
	for _, day := range days {
		if !r.Recognized(day) {
			unknown = append(unknown, day)
		}
	}
	return unknown
}
