package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedProgram возвращается, когда program_data не удалось разобрать.
var ErrMalformedProgram = errors.New("malformed program payload")

type Intensity string

const (
	IntensityActive Intensity = "active"
	IntensityLight  Intensity = "light"
)

// Program - запись общего каталога программ, одна на пару (день, интенсивность).
type Program struct {
	ID        int64      `db:"id" json:"id"`
	Day       int        `db:"day" json:"day"`
	Intensity Intensity  `db:"intensity" json:"intensity"`
	Data      string     `db:"program_data" json:"-"`
	Exercises []Exercise `db:"-" json:"exercises"`
}

type Exercise struct {
	Name string `json:"exercise"`
	Sets int    `json:"sets"`
	Reps int    `json:"reps"`
}

// EncodeExercises сериализует список упражнений в формат колонки program_data.
func EncodeExercises(exercises []Exercise) (string, error) {
	if exercises == nil {
		exercises = []Exercise{}
	}
	data, err := json.Marshal(exercises)
	if err != nil {
		return "", fmt.Errorf("encode exercises: %w", err)
	}
	return string(data), nil
}

// DecodeExercises строго разбирает program_data: только JSON-массив объектов
// с непустым exercise и неотрицательными целыми sets/reps. Лишние поля
// (например, day и intensity из исходной таблицы) допускаются.
func DecodeExercises(data string) ([]Exercise, error) {
	dec := json.NewDecoder(strings.NewReader(data))

	var raw []*Exercise
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedProgram, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: payload is not a list", ErrMalformedProgram)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after list", ErrMalformedProgram)
	}

	exercises := make([]Exercise, 0, len(raw))
	for i, e := range raw {
		if e == nil {
			return nil, fmt.Errorf("%w: item %d is null", ErrMalformedProgram, i+1)
		}
		if e.Name == "" {
			return nil, fmt.Errorf("%w: item %d has no exercise name", ErrMalformedProgram, i+1)
		}
		if e.Sets < 0 || e.Reps < 0 {
			return nil, fmt.Errorf("%w: item %d has negative sets or reps", ErrMalformedProgram, i+1)
		}
		exercises = append(exercises, *e)
	}
	return exercises, nil
}
