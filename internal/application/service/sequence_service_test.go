package service

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/madhuram-pos/pos-api/internal/domain/entity"
	"github.com/madhuram-pos/pos-api/internal/infrastructure/repository"
)

func TestSequenceIssuesSequentialNumbersWithinDay(t *testing.T) {
	db := newTestDB(t)
	clock := &fakeClock{t: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)}
	seq := NewSequenceService(repository.NewSettingsRepository(db), 5, clock.Now)

	want := []string{"00001", "00002", "00003"}
	for _, w := range want {
		got, err := seq.IssueNext(context.Background())
		if err != nil {
			t.Fatalf("IssueNext: %v", err)
		}
		if got != w {
			t.Errorf("IssueNext = %q, want %q", got, w)
		}
	}
}

func TestSequenceRestartsOnDateBoundary(t *testing.T) {
	db := newTestDB(t)
	clock := &fakeClock{t: time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)}
	seq := NewSequenceService(repository.NewSettingsRepository(db), 5, clock.Now)

	for i := 0; i < 3; i++ {
		if _, err := seq.IssueNext(context.Background()); err != nil {
			t.Fatalf("IssueNext: %v", err)
		}
	}

	clock.Set(time.Date(2026, 3, 15, 0, 1, 0, 0, time.UTC))
	got, err := seq.IssueNext(context.Background())
	if err != nil {
		t.Fatalf("IssueNext after rollover: %v", err)
	}
	if got != "00001" {
		t.Errorf("first number of new day = %q, want %q", got, "00001")
	}
}

func TestSequenceResetSameDay(t *testing.T) {
	db := newTestDB(t)
	clock := &fakeClock{t: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)}
	seq := NewSequenceService(repository.NewSettingsRepository(db), 5, clock.Now)

	for i := 0; i < 5; i++ {
		if _, err := seq.IssueNext(context.Background()); err != nil {
			t.Fatalf("IssueNext: %v", err)
		}
	}
	if err := seq.Reset(context.Background()); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	got, err := seq.IssueNext(context.Background())
	if err != nil {
		t.Fatalf("IssueNext after reset: %v", err)
	}
	if got != "00001" {
		t.Errorf("first number after same-day reset = %q, want %q", got, "00001")
	}
}

func TestSequenceResetThenNewDay(t *testing.T) {
	db := newTestDB(t)
	clock := &fakeClock{t: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)}
	seq := NewSequenceService(repository.NewSettingsRepository(db), 5, clock.Now)

	if _, err := seq.IssueNext(context.Background()); err != nil {
		t.Fatalf("IssueNext: %v", err)
	}
	if err := seq.Reset(context.Background()); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	// The reset leaves the stored date untouched; the rollover branch must
	// still fire on the next day.
	clock.Set(time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC))
	got, err := seq.IssueNext(context.Background())
	if err != nil {
		t.Fatalf("IssueNext: %v", err)
	}
	if got != "00001" {
		t.Errorf("first number of new day after reset = %q, want %q", got, "00001")
	}
}

func TestSequenceResumesAfterRestart(t *testing.T) {
	db := newTestDB(t)
	clock := &fakeClock{t: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)}

	seq := NewSequenceService(repository.NewSettingsRepository(db), 5, clock.Now)
	for i := 0; i < 4; i++ {
		if _, err := seq.IssueNext(context.Background()); err != nil {
			t.Fatalf("IssueNext: %v", err)
		}
	}

	// A fresh service over the same store stands in for a process restart.
	seq2 := NewSequenceService(repository.NewSettingsRepository(db), 5, clock.Now)
	got, err := seq2.IssueNext(context.Background())
	if err != nil {
		t.Fatalf("IssueNext on restarted service: %v", err)
	}
	if got != "00005" {
		t.Errorf("number after restart = %q, want %q", got, "00005")
	}
}

func TestSequenceConcurrentIssueIsGapless(t *testing.T) {
	db := newTestDB(t)
	clock := &fakeClock{t: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)}
	seq := NewSequenceService(repository.NewSettingsRepository(db), 5, clock.Now)

	const n = 20
	results := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, err := seq.IssueNext(context.Background())
			if err != nil {
				t.Errorf("IssueNext: %v", err)
				return
			}
			results[i] = got
		}(i)
	}
	wg.Wait()

	sort.Strings(results)
	for i, got := range results {
		want := seq.Format(i + 1)
		if got != want {
			t.Fatalf("sorted results[%d] = %q, want %q", i, got, want)
		}
	}
}

func TestSequenceFailsOnCorruptCounter(t *testing.T) {
	db := newTestDB(t)
	clock := &fakeClock{t: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)}
	settingsRepo := repository.NewSettingsRepository(db)
	seq := NewSequenceService(settingsRepo, 5, clock.Now)

	// Plant a corrupt counter under today's date so the increment branch
	// has to read it.
	if err := settingsRepo.Set(context.Background(), entity.SettingLastBillDate, "2026-03-14"); err != nil {
		t.Fatalf("set date: %v", err)
	}
	if err := settingsRepo.Set(context.Background(), entity.SettingLastBillNumber, "not-a-number"); err != nil {
		t.Fatalf("set counter: %v", err)
	}

	if _, err := seq.IssueNext(context.Background()); err == nil {
		t.Fatal("IssueNext on corrupt counter succeeded, want error")
	}

	// The corrupt value must not be overwritten by a failed issue.
	stored, err := settingsRepo.Get(context.Background(), entity.SettingLastBillNumber)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored != "not-a-number" {
		t.Errorf("stored counter = %q, want untouched %q", stored, "not-a-number")
	}
}

func TestSequenceWidthIsConfigurable(t *testing.T) {
	db := newTestDB(t)
	clock := &fakeClock{t: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)}
	seq := NewSequenceService(repository.NewSettingsRepository(db), 3, clock.Now)

	got, err := seq.IssueNext(context.Background())
	if err != nil {
		t.Fatalf("IssueNext: %v", err)
	}
	if got != "001" {
		t.Errorf("width-3 number = %q, want %q", got, "001")
	}
}
