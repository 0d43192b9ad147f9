package locales

import (
	_ "embed"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed locales.yaml
var localesYAML []byte

// Locales содержит все тексты бота и словарь для классификации ввода
type Locales struct {
	Weekdays      map[string][]string `yaml:"weekdays"`
	Answers       Answers             `yaml:"answers"`
	MainMenu      MainMenu            `yaml:"main_menu"`
	IntensityMenu IntensityMenu       `yaml:"intensity_menu"`
	Intensities   []Intensity         `yaml:"intensities"`
	Onboarding    Onboarding          `yaml:"onboarding"`
	Plan          Plan                `yaml:"plan"`
	Progress      Progress            `yaml:"progress"`
	Account       Account             `yaml:"account"`
	Reminder      Reminder            `yaml:"reminder"`
	Errors        Errors              `yaml:"errors"`
}

type Answers struct {
	Yes []string `yaml:"yes"`
	No  []string `yaml:"no"`
}

type MainMenu struct {
	Text    string `yaml:"text"`
	Buttons struct {
		Plan     string `yaml:"plan"`
		Today    string `yaml:"today"`
		Progress string `yaml:"progress"`
	} `yaml:"buttons"`
}

type IntensityMenu struct {
	Text string `yaml:"text"`
}

// Intensity описывает один уровень нагрузки, который предлагает бот.
type Intensity struct {
	Tier         string `yaml:"tier"`
	Button       string `yaml:"button"`
	Title        string `yaml:"title"`
	PlanHeader   string `yaml:"plan_header"`
	PlanMissing  string `yaml:"plan_missing"`
	TodayMissing string `yaml:"today_missing"`
	Malformed    string `yaml:"malformed"`
}

type Onboarding struct {
	Greeting        string `yaml:"greeting"`
	GreetingAgain   string `yaml:"greeting_again"`
	AskDays         string `yaml:"ask_days"`
	AskDaysAgain    string `yaml:"ask_days_again"`
	NoDays          string `yaml:"no_days"`
	UnknownDays     string `yaml:"unknown_days"`
	ConfirmHeader   string `yaml:"confirm_header"`
	ConfirmLine     string `yaml:"confirm_line"`
	ConfirmQuestion string `yaml:"confirm_question"`
	ConfirmRetry    string `yaml:"confirm_retry"`
	NeedDays        string `yaml:"need_days"`
}

type Plan struct {
	TodayHeader     string `yaml:"today_header"`
	NoTrainingToday string `yaml:"no_training_today"`
	ExerciseLine    string `yaml:"exercise_line"`
	EmptyProgram    string `yaml:"empty_program"`
}

type Progress struct {
	Header string `yaml:"header"`
	Line   string `yaml:"line"`
	Empty  string `yaml:"empty"`
	Saved  string `yaml:"saved"`
	Usage  string `yaml:"usage"`
}

type Account struct {
	Deleted       string `yaml:"deleted"`
	NotRegistered string `yaml:"not_registered"`
}

type Reminder struct {
	Text string `yaml:"text"`
}

type Errors struct {
	UnknownCommand string `yaml:"unknown_command"`
	TryAgain       string `yaml:"try_again"`
}

var weekdayKeys = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Load разбирает встроенный locales.yaml.
func Load() (*Locales, error) {
	return Parse(localesYAML)
}

// Parse разбирает YAML с текстами и проверяет, что словарь полный.
func Parse(data []byte) (*Locales, error) {
	l := &Locales{}
	if err := yaml.Unmarshal(data, l); err != nil {
		return nil, fmt.Errorf("parse locales: %w", err)
	}
	if err := l.validate(); err != nil {
		return nil, fmt.Errorf("invalid locales: %w", err)
	}
	return l, nil
}

func (l *Locales) validate() error {
	for key := range l.Weekdays {
		if _, ok := weekdayKeys[key]; !ok {
			return fmt.Errorf("unknown weekday key %q", key)
		}
	}
	if len(l.Weekdays) != len(weekdayKeys) {
		return fmt.Errorf("weekdays: want 7 entries, got %d", len(l.Weekdays))
	}
	if len(l.Answers.Yes) == 0 || len(l.Answers.No) == 0 {
		return fmt.Errorf("answers: yes and no words are required")
	}
	if len(l.Intensities) == 0 {
		return fmt.Errorf("at least one intensity is required")
	}
	seen := make(map[string]bool)
	for _, in := range l.Intensities {
		if in.Tier == "" || in.Button == "" {
			return fmt.Errorf("intensity needs tier and button")
		}
		if seen[in.Tier] {
			return fmt.Errorf("duplicate intensity tier %q", in.Tier)
		}
		seen[in.Tier] = true
	}
	return nil
}

// WeekdayNames возвращает таблицу "название дня -> день недели" для резолвера.
func (l *Locales) WeekdayNames() map[string]time.Weekday {
	names := make(map[string]time.Weekday)
	for key, list := range l.Weekdays {
		for _, name := range list {
			names[strings.ToLower(strings.TrimSpace(name))] = weekdayKeys[key]
		}
	}
	return names
}

// IntensityByTier ищет описание уровня нагрузки.
func (l *Locales) IntensityByTier(tier string) (Intensity, bool) {
	for _, in := range l.Intensities {
		if in.Tier == tier {
			return in, true
		}
	}
	return Intensity{}, false
}
