package program

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"workout-plan-bot/internal/models"
	"workout-plan-bot/internal/models/config"
	"workout-plan-bot/internal/repository"
	database "workout-plan-bot/pkg"

	"go.uber.org/zap"
)

func TestProgramRepository(t *testing.T) {
	db, err := database.New(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "test.db"),
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	repo := NewProgramRepository(db)

	if _, err := repo.Get(ctx, 1, models.IntensityActive); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("Get on empty catalog = %v, want ErrNotFound", err)
	}

	first := `[{"exercise":"Приседания","sets":3,"reps":12}]`
	second := `[{"exercise":"Выпады","sets":4,"reps":10}]`

	if err := repo.Upsert(ctx, &models.Program{Day: 1, Intensity: models.IntensityActive, Data: first}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := repo.Upsert(ctx, &models.Program{Day: 1, Intensity: models.IntensityLight, Data: first}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := repo.Upsert(ctx, &models.Program{Day: 1, Intensity: models.IntensityActive, Data: second}); err != nil {
		t.Fatalf("Upsert replace: %v", err)
	}

	p, err := repo.Get(ctx, 1, models.IntensityActive)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.Data != second || p.Day != 1 || p.Intensity != models.IntensityActive {
		t.Errorf("Get = %+v", p)
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 2 {
		t.Errorf("Count = %d, want 2", n)
	}

	// день 1 light в новом каталоге отсутствует и должен исчезнуть
	err = repo.ReplaceAll(ctx, []*models.Program{
		{Day: 1, Intensity: models.IntensityActive, Data: first},
		{Day: 2, Intensity: models.IntensityActive, Data: second},
	})
	if err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}
	if _, err := repo.Get(ctx, 1, models.IntensityLight); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Get dropped program = %v, want ErrNotFound", err)
	}
	if p, err := repo.Get(ctx, 1, models.IntensityActive); err != nil || p.Data != first {
		t.Errorf("Get replaced program = %+v, %v", p, err)
	}
	if n, _ := repo.Count(ctx); n != 2 {
		t.Errorf("Count after ReplaceAll = %d, want 2", n)
	}

	// дубликат ключа откатывает всю замену
	err = repo.ReplaceAll(ctx, []*models.Program{
		{Day: 5, Intensity: models.IntensityActive, Data: first},
		{Day: 5, Intensity: models.IntensityActive, Data: second},
	})
	if err == nil {
		t.Fatal("expected error for duplicate program")
	}
	if n, _ := repo.Count(ctx); n != 2 {
		t.Errorf("Count after failed ReplaceAll = %d, want 2", n)
	}
	if _, err := repo.Get(ctx, 2, models.IntensityActive); err != nil {
		t.Errorf("program lost after rollback: %v", err)
	}
}
