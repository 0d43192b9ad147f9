package session

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

func TestSaveGetDelete(t *testing.T) {
	db, err := database.New(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "test.db"),
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	repo := NewSessionRepository(db)

	if _, err := repo.Get(ctx, 5); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("Get missing = %v, want ErrNotFound", err)
	}

	if err := repo.Save(ctx, &models.Session{UserID: 5, State: "confirming_days", PendingDays: "Среда"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Save(ctx, &models.Session{UserID: 5, State: "main_menu"}); err != nil {
		t.Fatalf("Save overwrite: %v", err)
	}

	s, err := repo.Get(ctx, 5)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s.State != "main_menu" || s.PendingDays != "" {
		t.Errorf("Get = %+v", s)
	}

	if err := repo.Delete(ctx, 5); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, 5); err != nil {
		t.Errorf("Delete of missing session: %v", err)
	}
	if _, err := repo.Get(ctx, 5); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Get after delete = %v", err)
	}
}
