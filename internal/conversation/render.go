package conversation

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"workout-plan-bot/internal/models"
	"workout-plan-bot/pkg/locales"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type programStatus int

const (
	programLoaded programStatus = iota
	programMissing
	programMalformed
)

// program ищет программу дня и форматирует упражнения. Отсутствующая или битая
// запись - не ошибка, ошибкой считается только сбой хранилища.
func (m *Machine) program(ctx context.Context, slot int, tier locales.Intensity) (string, programStatus, error) {
	p, err := m.catalog.Lookup(ctx, slot, models.Intensity(tier.Tier))
	switch {
	case errors.Is(err, models.ErrMalformedProgram):
		m.log.Warn("malformed program",
			zap.Int("slot", slot), zap.String("intensity", tier.Tier), zap.Error(err))
		return "", programMalformed, nil
	case err != nil:
		return "", 0, err
	case p == nil:
		return "", programMissing, nil
	}

	if len(p.Exercises) == 0 {
		return m.text.Plan.EmptyProgram, programLoaded, nil
	}
	lines := make([]string, 0, len(p.Exercises))
	for _, e := range p.Exercises {
		lines = append(lines, fmt.Sprintf(m.text.Plan.ExerciseLine, e.Name, e.Sets, e.Reps))
	}
	return strings.Join(lines, "\n"), programLoaded, nil
}

// renderToday показывает программу сегодняшнего слота для всех уровней нагрузки.
func (m *Machine) renderToday(ctx context.Context, user *models.User) (string, error) {
	slot, ok := m.resolver.Slot(user.Days(), m.now())
	if !ok {
		return m.text.Plan.NoTrainingToday, nil
	}

	parts := []string{fmt.Sprintf(m.text.Plan.TodayHeader, slot)}
	for _, tier := range m.text.Intensities {
		body, status, err := m.program(ctx, slot, tier)
		if err != nil {
			return "", err
		}
		switch status {
		case programLoaded:
			parts = append(parts, tier.Title+":\n"+body)
		case programMissing:
			parts = append(parts, tier.TodayMissing)
		case programMalformed:
			parts = append(parts, tier.Malformed)
		}
	}
	return strings.Join(parts, "\n\n"), nil
}

// planSections возвращает ровно по одной секции на каждый день пользователя.
func (m *Machine) planSections(ctx context.Context, days []string, tier locales.Intensity) ([]string, error) {
	sections := make([]string, 0, len(days))
	for i, day := range days {
		body, status, err := m.program(ctx, i+1, tier)
		if err != nil {
			return nil, err
		}
		switch status {
		case programLoaded:
			sections = append(sections, day+":\n"+body)
		case programMissing:
			sections = append(sections, day+": "+tier.PlanMissing)
		case programMalformed:
			sections = append(sections, day+": "+tier.Malformed)
		}
	}
	return sections, nil
}

func (m *Machine) renderProgress(ctx context.Context, userID int64) (string, error) {
	entries, err := m.progress.History(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return m.text.Progress.Empty, nil
	}

	var b strings.Builder
	b.WriteString(m.text.Progress.Header)
	for _, e := range entries {
		b.WriteString("\n")
		fmt.Fprintf(&b, m.text.Progress.Line, e.Date, e.Exercise, e.Reps, formatWeight(e.Weight))
	}
	return b.String(), nil
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

func (m *Machine) mainMenu() Reply {
	return Reply{Text: m.text.MainMenu.Text, Keyboard: m.mainMenuKeyboard()}
}

func (m *Machine) mainMenuKeyboard() [][]string {
	buttons := m.text.MainMenu.Buttons
	return [][]string{
		{buttons.Plan},
		{buttons.Today},
		{buttons.Progress},
	}
}

func (m *Machine) intensityKeyboard() [][]string {
	rows := make([][]string, 0, len(m.text.Intensities))
	for _, tier := range m.text.Intensities {
		rows = append(rows, []string{tier.Button})
	}
	return rows
}

func (m *Machine) answerKeyboard() [][]string {
	return [][]string{{
		capitalize(m.text.Answers.Yes[0]),
		capitalize(m.text.Answers.No[0]),
	}}
}

func capitalize(s string) string {
	return cases.Title(language.Russian).String(s)
}
