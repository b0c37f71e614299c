package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/sleepystudio/terminai/internal/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	return newSQLiteStoreAt(filepath.Join(t.TempDir(), "history.db"))
}

func TestSaveAndRecords(t *testing.T) {
	store := newTestStore(t)

	rec := domain.HistoryRecord{
		ID:         uuid.NewString(),
		Timestamp:  time.Now().Truncate(time.Second),
		Invocation: "gti status",
		Command:    "git status",
		Verdict:    string(domain.VerdictSafe),
		Executed:   true,
		Provider:   "xai",
		Model:      "grok-3",
		DurationMS: 420,
	}
	if err := store.Save(rec); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	records, err := store.Records(10)
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("record count = %d, want 1", len(records))
	}
	got := records[0]
	if got.ID != rec.ID || got.Invocation != rec.Invocation || got.Command != rec.Command ||
		got.Verdict != rec.Verdict || !got.Executed || got.DurationMS != rec.DurationMS {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, rec)
	}
}

func TestRecordsNewestFirstAndLimited(t *testing.T) {
	store := newTestStore(t)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		rec := domain.HistoryRecord{
			ID:         uuid.NewString(),
			Timestamp:  base.Add(time.Duration(i) * time.Minute),
			Invocation: "cmd",
		}
		if err := store.Save(rec); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	records, err := store.Records(2)
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("record count = %d, want 2", len(records))
	}
	if !records[0].Timestamp.After(records[1].Timestamp) {
		t.Fatalf("expected newest first, got %v then %v", records[0].Timestamp, records[1].Timestamp)
	}
}

func TestClear(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save(domain.HistoryRecord{ID: uuid.NewString(), Timestamp: time.Now()}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	records, err := store.Records(0)
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("record count = %d after clear", len(records))
	}
}
