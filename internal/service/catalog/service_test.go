package catalog_service

import (
	"context"
	"errors"
	"testing"

	"workout-plan-bot/internal/models"
	"workout-plan-bot/internal/repository"
)

type key struct {
	day       int
	intensity models.Intensity
}

type fakeProgramRepo struct {
	rows map[key]string
	err  error
}

func (f *fakeProgramRepo) Get(_ context.Context, day int, intensity models.Intensity) (*models.Program, error) {
	if f.err != nil {
		return nil, f.err
	}
	data, ok := f.rows[key{day, intensity}]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &models.Program{Day: day, Intensity: intensity, Data: data}, nil
}

func (f *fakeProgramRepo) Upsert(_ context.Context, p *models.Program) error {
	if f.rows == nil {
		f.rows = make(map[key]string)
	}
	f.rows[key{p.Day, p.Intensity}] = p.Data
	return nil
}

func (f *fakeProgramRepo) ReplaceAll(_ context.Context, programs []*models.Program) error {
	if f.err != nil {
		return f.err
	}
	f.rows = make(map[key]string)
	for _, p := range programs {
		f.rows[key{p.Day, p.Intensity}] = p.Data
	}
	return nil
}

func (f *fakeProgramRepo) Count(context.Context) (int, error) {
	return len(f.rows), nil
}

func TestLookup(t *testing.T) {
	repo := &fakeProgramRepo{rows: map[key]string{
		{1, models.IntensityActive}: `[{"exercise":"Планка","sets":3,"reps":1}]`,
		{2, models.IntensityActive}: `[{'exercise': 'Планка', 'sets': 3, 'reps': 1}]`,
	}}
	svc := NewCatalogService(repo)
	ctx := context.Background()

	t.Run("loaded", func(t *testing.T) {
		p, err := svc.Lookup(ctx, 1, models.IntensityActive)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p == nil || len(p.Exercises) != 1 || p.Exercises[0].Name != "Планка" {
			t.Errorf("Lookup = %+v", p)
		}
	})

	t.Run("absent", func(t *testing.T) {
		p, err := svc.Lookup(ctx, 1, models.IntensityLight)
		if err != nil || p != nil {
			t.Errorf("Lookup = %+v, %v, want nil, nil", p, err)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := svc.Lookup(ctx, 2, models.IntensityActive)
		if !errors.Is(err, models.ErrMalformedProgram) {
			t.Errorf("Lookup error = %v, want ErrMalformedProgram", err)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		boom := errors.New("db is down")
		_, err := NewCatalogService(&fakeProgramRepo{err: boom}).Lookup(ctx, 1, models.IntensityActive)
		if !errors.Is(err, boom) {
			t.Errorf("Lookup error = %v, want %v", err, boom)
		}
	})
}

func TestSave(t *testing.T) {
	repo := &fakeProgramRepo{}
	svc := NewCatalogService(repo)
	ctx := context.Background()

	exercises := []models.Exercise{{Name: "Отжимания", Sets: 3, Reps: 15}}
	if err := svc.Save(ctx, 3, models.IntensityLight, exercises); err != nil {
		t.Fatalf("Save: %v", err)
	}
	p, err := svc.Lookup(ctx, 3, models.IntensityLight)
	if err != nil || p == nil || p.Exercises[0] != exercises[0] {
		t.Errorf("Lookup after Save = %+v, %v", p, err)
	}

	if err := svc.Save(ctx, 0, models.IntensityLight, exercises); err == nil {
		t.Error("expected error for day 0")
	}
	if err := svc.Save(ctx, 1, "", exercises); err == nil {
		t.Error("expected error for empty intensity")
	}

	n, _ := svc.Count(ctx)
	if n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}

func TestReplace(t *testing.T) {
	repo := &fakeProgramRepo{rows: map[key]string{
		{1, models.IntensityLight}: `[{"exercise":"Ходьба","sets":1,"reps":1}]`,
	}}
	svc := NewCatalogService(repo)
	ctx := context.Background()

	programs := []*models.Program{
		{Day: 1, Intensity: models.IntensityActive, Exercises: []models.Exercise{{Name: "Жим", Sets: 5, Reps: 5}}},
		{Day: 2, Intensity: models.IntensityActive, Exercises: []models.Exercise{{Name: "Тяга", Sets: 3, Reps: 8}}},
	}
	if err := svc.Replace(ctx, programs); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	if p, err := svc.Lookup(ctx, 1, models.IntensityLight); err != nil || p != nil {
		t.Errorf("dropped program still served: %+v, %v", p, err)
	}
	p, err := svc.Lookup(ctx, 2, models.IntensityActive)
	if err != nil || p == nil || p.Exercises[0].Name != "Тяга" {
		t.Errorf("Lookup = %+v, %v", p, err)
	}

	before := len(repo.rows)
	bad := []*models.Program{{Day: 0, Intensity: models.IntensityActive}}
	if err := svc.Replace(ctx, bad); err == nil {
		t.Error("expected error for day 0")
	}
	if len(repo.rows) != before {
		t.Error("catalog changed after invalid Replace")
	}
}
