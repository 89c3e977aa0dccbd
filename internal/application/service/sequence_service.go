package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/madhuram-pos/pos-api/internal/domain/entity"
	"github.com/madhuram-pos/pos-api/internal/domain/repository"
)

const sequenceDateLayout = "2006-01-02"

// SequenceService issues the daily-resetting bill/KOT numbers. Numbers are
// unique and strictly increasing from 1 within a calendar date; crossing a
// date boundary restarts at 1. KOT numbers are unified with bill numbers
// (the historical separate 3-digit KOT counter is gone; only the pad width
// is configurable).
//
// The counter state lives in the settings table, so a restarted process
// resumes where it left off. The mutex plus the transactional write make
// IssueNext atomic: concurrent finalize actions can never observe
// duplicate or skipped numbers.
type SequenceService struct {
	mu           sync.Mutex
	settingsRepo repository.SettingsRepository
	width        int
	now          func() time.Time
}

// NewSequenceService creates a sequence service. width is the zero-pad
// width of formatted numbers (5 in production). now may be nil, in which
// case the system clock is used; tests inject a fake clock to drive day
// rollover.
func NewSequenceService(settingsRepo repository.SettingsRepository, width int, now func() time.Time) *SequenceService {
	if width <= 0 {
		width = 5
	}
	if now == nil {
		now = time.Now
	}
	return &SequenceService{
		settingsRepo: settingsRepo,
		width:        width,
		now:          now,
	}
}

// IssueNext issues the next bill number for today and returns it
// zero-padded. Both counter fields are persisted in one transaction before
// the number is returned; if storage is unreachable the call fails and no
// number is consumed.
func (s *SequenceService) IssueNext(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.now().Format(sequenceDateLayout)

	lastDate, err := s.settingsRepo.Get(ctx, entity.SettingLastBillDate)
	if err != nil {
		return "", fmt.Errorf("sequence: read last date: %w", err)
	}

	var next int
	if lastDate != today {
		// New day (or never issued): restart from 1.
		next = 1
	} else {
		lastRaw, err := s.settingsRepo.Get(ctx, entity.SettingLastBillNumber)
		if err != nil {
			return "", fmt.Errorf("sequence: read last number: %w", err)
		}
		// A non-numeric stored counter is corruption, not a fresh day;
		// restarting at 1 here could hand out duplicate numbers.
		last, err := strconv.Atoi(lastRaw)
		if err != nil {
			return "", fmt.Errorf("sequence: corrupt stored counter %q: %w", lastRaw, err)
		}
		next = last + 1
	}

	err = s.settingsRepo.SetMany(ctx, map[string]string{
		entity.SettingLastBillNumber: strconv.Itoa(next),
		entity.SettingLastBillDate:   today,
	})
	if err != nil {
		return "", fmt.Errorf("sequence: persist counter: %w", err)
	}

	return s.Format(next), nil
}

// Reset zeroes the counter without touching the stored date. The next
// IssueNext on the same date produces 1 via the increment branch; on a new
// date the day-rollover branch produces 1 anyway.
func (s *SequenceService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.settingsRepo.Set(ctx, entity.SettingLastBillNumber, "0"); err != nil {
		return fmt.Errorf("sequence: reset counter: %w", err)
	}
	return nil
}

// Format zero-pads a raw counter value to the configured width.
func (s *SequenceService) Format(n int) string {
	return fmt.Sprintf("%0*d", s.width, n)
}
