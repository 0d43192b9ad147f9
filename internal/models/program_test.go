package models

import (
	"errors"
	"reflect"
	"testing"
)

func TestDecodeExercises(t *testing.T) {
	payload := `[
		{"day": 1, "intensity": "active", "exercise": "Приседания", "sets": 3, "reps": 12},
		{"exercise": "Отжимания", "sets": 4, "reps": 10}
	]`

	got, err := DecodeExercises(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Exercise{
		{Name: "Приседания", Sets: 3, Reps: 12},
		{Name: "Отжимания", Sets: 4, Reps: 10},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeExercises = %+v, want %+v", got, want)
	}
}

// Всё, кроме чистого JSON-списка упражнений, - ошибка.
func TestDecodeExercisesRejectsMalformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"empty", ""},
		{"python repr", `[{'exercise': 'Планка', 'sets': 3, 'reps': 1}]`},
		{"expression", `__import__('os').system('rm -rf /')`},
		{"object instead of list", `{"exercise": "Планка", "sets": 3, "reps": 1}`},
		{"null", `null`},
		{"null item", `[null]`},
		{"missing name", `[{"sets": 3, "reps": 10}]`},
		{"string sets", `[{"exercise": "Планка", "sets": "3", "reps": 10}]`},
		{"fractional reps", `[{"exercise": "Планка", "sets": 3, "reps": 10.5}]`},
		{"negative sets", `[{"exercise": "Планка", "sets": -1, "reps": 10}]`},
		{"trailing data", `[{"exercise": "Планка", "sets": 3, "reps": 10}] []`},
		{"trailing bracket", `[{"exercise": "Планка", "sets": 3, "reps": 10}]]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeExercises(tt.payload)
			if !errors.Is(err, ErrMalformedProgram) {
				t.Errorf("DecodeExercises(%q) error = %v, want ErrMalformedProgram", tt.payload, err)
			}
		})
	}
}

func TestEncodeDecodeExercises(t *testing.T) {
	in := []Exercise{{Name: "Выпады", Sets: 3, Reps: 15}}

	data, err := EncodeExercises(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if data != `[{"exercise":"Выпады","sets":3,"reps":15}]` {
		t.Errorf("encoded = %s", data)
	}

	empty, err := EncodeExercises(nil)
	if err != nil || empty != "[]" {
		t.Errorf("EncodeExercises(nil) = %q, %v", empty, err)
	}
}

func TestSplitJoinDays(t *testing.T) {
	days := SplitDays(" Понедельник,  Среда ,, Пятница ")
	want := []string{"Понедельник", "Среда", "Пятница"}
	if !reflect.DeepEqual(days, want) {
		t.Fatalf("SplitDays = %q, want %q", days, want)
	}
	if got := JoinDays(days); got != "Понедельник, Среда, Пятница" {
		t.Errorf("JoinDays = %q", got)
	}
	if SplitDays("") != nil {
		t.Error("SplitDays(\"\") should be empty")
	}

	u := &User{TrainingDays: ""}
	if u.HasSchedule() {
		t.Error("user without days should not have a schedule")
	}
}
