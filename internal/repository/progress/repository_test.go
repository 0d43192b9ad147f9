package progress

import (
	"context"
	"path/filepath"
	"testing"

	"workout-plan-bot/internal/models"
	"workout-plan-bot/internal/models/config"
	database "workout-plan-bot/pkg"

	"go.uber.org/zap"
)

func TestAppendAndList(t *testing.T) {
	db, err := database.New(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "test.db"),
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	repo := NewProgressRepository(db)

	empty, err := repo.ListByUser(ctx, 7)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("ListByUser on empty ledger = %#v, want empty slice", empty)
	}

	entries := []models.ProgressEntry{
		{UserID: 7, Date: "2026-10-12", Exercise: "Жим лежа", Reps: 10, Weight: 40},
		{UserID: 8, Date: "2026-10-12", Exercise: "Тяга", Reps: 8, Weight: 60},
		{UserID: 7, Date: "2026-10-11", Exercise: "Приседания", Reps: 12, Weight: 50.5},
	}
	for i := range entries {
		if err := repo.Create(ctx, &entries[i]); err != nil {
			t.Fatalf("Create: %v", err)
		}
		if entries[i].ID == 0 {
			t.Errorf("entry %d has no id", i)
		}
	}

	got, err := repo.ListByUser(ctx, 7)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// порядок вставки, а не даты
	if got[0].Exercise != "Жим лежа" || got[1].Exercise != "Приседания" || got[1].Weight != 50.5 {
		t.Errorf("ListByUser = %+v", got)
	}
}
