// Package importer загружает общий каталог программ из таблицы (xlsx или csv).
//
// Первая строка - заголовок с колонками day, intensity, exercise, sets, reps
// в любом порядке и регистре. Строки группируются по (day, intensity)
// в порядке появления в файле.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"workout-plan-bot/internal/models"
	"workout-plan-bot/internal/service"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var requiredColumns = []string{"day", "intensity", "exercise", "sets", "reps"}

// ImportConfig - что и откуда импортировать. Пустой SheetName - первый лист.
type ImportConfig struct {
	FilePath  string // .xlsx или .csv
	SheetName string // лист книги Excel, по умолчанию первый
}

// ImportResult - итог импорта
type ImportResult struct {
	TotalRows int
	Programs  int
	Skipped   int
	Errors    []string
}

type groupKey struct {
	day       int
	intensity models.Intensity
}

type group struct {
	key       groupKey
	exercises []models.Exercise
}

type Importer struct {
	catalog service.CatalogService
	log     *zap.Logger
}

func New(catalog service.CatalogService, log *zap.Logger) *Importer {
	return &Importer{catalog: catalog, log: log}
}

// Import читает файл и заменяет им весь каталог: программы, которых нет в файле,
// удаляются. Ошибки в отдельных строках попадают в ImportResult.Errors,
// ошибка хранилища прерывает импорт и оставляет старый каталог.
func (im *Importer) Import(ctx context.Context, cfg ImportConfig) (*ImportResult, error) {
	rows, err := readRows(cfg)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Errors: make([]string, 0)}
	groups, err := groupRows(rows, result)
	if err != nil {
		return nil, err
	}

	// без единой годной строки каталог не трогаем
	if len(groups) == 0 {
		im.log.Warn("nothing to import, catalog left as is", zap.String("file", cfg.FilePath))
		return result, nil
	}

	programs := make([]*models.Program, 0, len(groups))
	for _, g := range groups {
		programs = append(programs, &models.Program{
			Day:       g.key.day,
			Intensity: g.key.intensity,
			Exercises: g.exercises,
		})
	}
	if err := im.catalog.Replace(ctx, programs); err != nil {
		return result, fmt.Errorf("replace catalog: %w", err)
	}
	result.Programs = len(programs)

	im.log.Info("catalog imported",
		zap.String("file", cfg.FilePath),
		zap.Int("rows", result.TotalRows),
		zap.Int("programs", result.Programs),
		zap.Int("skipped", result.Skipped))
	for _, e := range result.Errors {
		im.log.Warn("catalog row skipped", zap.String("reason", e))
	}
	return result, nil
}

func readRows(cfg ImportConfig) ([][]string, error) {
	if strings.ToLower(filepath.Ext(cfg.FilePath)) == ".csv" {
		return readCSV(cfg.FilePath)
	}
	return readExcel(cfg)
}

func readExcel(cfg ImportConfig) ([][]string, error) {
	f, err := excelize.OpenFile(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := cfg.SheetName
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", cfg.FilePath)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows of sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func groupRows(rows [][]string, result *ImportResult) ([]*group, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("file is empty")
	}

	columns := make(map[string]int)
	for i, name := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("header has no %q column", name)
		}
	}

	var groups []*group
	index := make(map[groupKey]*group)

	for i, row := range rows[1:] {
		line := i + 2
		if isBlank(row) {
			continue
		}
		result.TotalRows++

		cell := func(name string) string {
			idx := columns[name]
			if idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		key, exercise, err := parseRow(cell)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", line, err))
			continue
		}

		g, ok := index[key]
		if !ok {
			g = &group{key: key}
			index[key] = g
			groups = append(groups, g)
		}
		g.exercises = append(g.exercises, exercise)
	}
	return groups, nil
}

func parseRow(cell func(string) string) (groupKey, models.Exercise, error) {
	day, err := parseCount(cell("day"))
	if err != nil || day < 1 {
		return groupKey{}, models.Exercise{}, fmt.Errorf("bad day %q", cell("day"))
	}
	intensity := strings.ToLower(cell("intensity"))
	if intensity == "" {
		return groupKey{}, models.Exercise{}, fmt.Errorf("empty intensity")
	}
	name := cell("exercise")
	if name == "" {
		return groupKey{}, models.Exercise{}, fmt.Errorf("empty exercise")
	}
	sets, err := parseCount(cell("sets"))
	if err != nil || sets < 0 {
		return groupKey{}, models.Exercise{}, fmt.Errorf("bad sets %q", cell("sets"))
	}
	reps, err := parseCount(cell("reps"))
	if err != nil || reps < 0 {
		return groupKey{}, models.Exercise{}, fmt.Errorf("bad reps %q", cell("reps"))
	}

	return groupKey{day: day, intensity: models.Intensity(intensity)},
		models.Exercise{Name: name, Sets: sets, Reps: reps}, nil
}

// parseCount принимает "3" и "3.0" (так числа иногда выгружаются из Excel).
func parseCount(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}
	return int(f), nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
