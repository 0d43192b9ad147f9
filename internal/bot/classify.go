package bot

import (
	"strings"

	"workout-plan-bot/internal/conversation"
	"workout-plan-bot/internal/models"
	"workout-plan-bot/pkg/locales"
)

var commands = map[string]conversation.Kind{
	"start":      conversation.KindStart,
	"deleteuser": conversation.KindDeleteAccount,
	"reset":      conversation.KindReset,
	"log":        conversation.KindLogProgress,
}

// Classifier превращает текст сообщения в тег по словарю из locales.
// Сравнение без учета регистра и пробелов по краям.
type Classifier struct {
	words map[string]conversation.Kind
	tiers map[string]models.Intensity
}

func NewClassifier(text *locales.Locales) *Classifier {
	c := &Classifier{
		words: make(map[string]conversation.Kind),
		tiers: make(map[string]models.Intensity),
	}
	for _, w := range text.Answers.Yes {
		c.words[normalize(w)] = conversation.KindAffirm
	}
	for _, w := range text.Answers.No {
		c.words[normalize(w)] = conversation.KindDeny
	}

	buttons := text.MainMenu.Buttons
	c.words[normalize(buttons.Plan)] = conversation.KindMenuPlan
	c.words[normalize(buttons.Today)] = conversation.KindMenuToday
	c.words[normalize(buttons.Progress)] = conversation.KindMenuProgress

	for _, in := range text.Intensities {
		c.words[normalize(in.Button)] = conversation.KindIntensity
		c.tiers[normalize(in.Button)] = models.Intensity(in.Tier)
	}
	return c
}

func (c *Classifier) Classify(text string) conversation.Input {
	in := conversation.Input{Kind: conversation.KindText, Text: text}

	if name, args, ok := parseCommand(text); ok {
		if kind, known := commands[name]; known {
			in.Kind = kind
			in.Args = args
		}
		return in
	}

	key := normalize(text)
	if kind, ok := c.words[key]; ok {
		in.Kind = kind
		in.Intensity = c.tiers[key]
	}
	return in
}

// parseCommand разбирает "/log@bot Жим 10 40" в ("log", [Жим 10 40]).
func parseCommand(text string) (string, []string, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return "", nil, false
	}
	name := strings.TrimPrefix(fields[0], "/")
	if i := strings.Index(name, "@"); i >= 0 {
		name = name[:i]
	}
	return strings.ToLower(name), fields[1:], true
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
