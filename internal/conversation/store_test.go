package conversation

import (
	"context"
	"path/filepath"
	"testing"

	"workout-plan-bot/internal/models/config"
	"workout-plan-bot/internal/repository/session"
	database "workout-plan-bot/pkg"

	"go.uber.org/zap"
)

func TestStores(t *testing.T) {
	db, err := database.New(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "test.db"),
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	defer db.Close()

	stores := map[string]SessionStore{
		"memory":   NewMemoryStore(),
		"database": NewRepositoryStore(session.NewSessionRepository(db)),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			s, err := store.Load(ctx, 1)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if s.State != StateIdle || s.UserID != 1 {
				t.Errorf("new session = %+v", s)
			}

			pending := []string{"Понедельник", "Среда"}
			if err := store.Save(ctx, Session{UserID: 1, State: StateConfirmingDays, Pending: pending}); err != nil {
				t.Fatalf("Save: %v", err)
			}
			pending[0] = "изменено"

			s, err = store.Load(ctx, 1)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if s.State != StateConfirmingDays || len(s.Pending) != 2 || s.Pending[0] != "Понедельник" {
				t.Errorf("loaded session = %+v", s)
			}

			if err := store.Delete(ctx, 1); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if s, _ = store.Load(ctx, 1); s.State != StateIdle {
				t.Errorf("state after delete = %s", s.State)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if KindMenuToday.String() != "menu_today" {
		t.Errorf("KindMenuToday = %q", KindMenuToday.String())
	}
	if Kind(99).String() != "unknown" {
		t.Errorf("Kind(99) = %q", Kind(99).String())
	}
}
