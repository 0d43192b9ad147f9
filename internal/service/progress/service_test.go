package progress_service

import (
	"context"
	"errors"
	"math"
	"testing"

	"workout-plan-bot/internal/models"
	"workout-plan-bot/internal/service"
)

type fakeProgressRepo struct {
	entries []models.ProgressEntry
}

func (f *fakeProgressRepo) Create(_ context.Context, e *models.ProgressEntry) error {
	e.ID = int64(len(f.entries) + 1)
	f.entries = append(f.entries, *e)
	return nil
}

func (f *fakeProgressRepo) ListByUser(_ context.Context, userID int64) ([]models.ProgressEntry, error) {
	out := []models.ProgressEntry{}
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func TestRecord(t *testing.T) {
	tests := []struct {
		name    string
		entry   models.ProgressEntry
		wantErr bool
	}{
		{"valid", models.ProgressEntry{UserID: 1, Date: "2026-10-18", Exercise: " Тяга ", Reps: 8, Weight: 60}, false},
		{"any exercise name", models.ProgressEntry{UserID: 1, Date: "2026-10-18", Exercise: "Чего нет в каталоге", Reps: 1}, false},
		{"empty exercise", models.ProgressEntry{UserID: 1, Date: "2026-10-18", Exercise: "  ", Reps: 8}, true},
		{"negative reps", models.ProgressEntry{UserID: 1, Date: "2026-10-18", Exercise: "Тяга", Reps: -1}, true},
		{"negative weight", models.ProgressEntry{UserID: 1, Date: "2026-10-18", Exercise: "Тяга", Weight: -5}, true},
		{"NaN weight", models.ProgressEntry{UserID: 1, Date: "2026-10-18", Exercise: "Тяга", Reps: 5, Weight: math.NaN()}, true},
		{"infinite weight", models.ProgressEntry{UserID: 1, Date: "2026-10-18", Exercise: "Тяга", Reps: 5, Weight: math.Inf(1)}, true},
		{"bad date", models.ProgressEntry{UserID: 1, Date: "18.10.2026", Exercise: "Тяга"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewProgressService(&fakeProgressRepo{})
			entry := tt.entry
			err := svc.Record(context.Background(), &entry)
			if tt.wantErr {
				if !errors.Is(err, service.ErrInvalidEntry) {
					t.Errorf("Record error = %v, want ErrInvalidEntry", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if entry.ID == 0 {
				t.Error("entry id not set")
			}
		})
	}
}

func TestHistoryOrder(t *testing.T) {
	ctx := context.Background()
	svc := NewProgressService(&fakeProgressRepo{})

	for _, ex := range []string{"Жим", " Тяга ", "Присед"} {
		if err := svc.Record(ctx, &models.ProgressEntry{UserID: 3, Date: "2026-10-18", Exercise: ex, Reps: 5}); err != nil {
			t.Fatal(err)
		}
	}

	got, err := svc.History(ctx, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0].Exercise != "Жим" || got[2].Exercise != "Присед" {
		t.Errorf("History = %+v", got)
	}
	if got[1].Exercise != "Тяга" {
		t.Errorf("exercise not trimmed: %q", got[1].Exercise)
	}
}
