package store

import (
	"context"
	"testing"
	"time"

	"github.com/roach88/kringle/internal/engine"
)

func TestRecordDraw(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	draw := createTestDraw("draw-1", time.Date(2026, 1, 5, 10, 30, 0, 0, time.UTC))
	if err := s.RecordDraw(ctx, draw); err != nil {
		t.Fatalf("RecordDraw() failed: %v", err)
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM draws").Scan(&count); err != nil {
		t.Fatalf("count draws: %v", err)
	}
	if count != 1 {
		t.Errorf("draws count = %d, expected 1", count)
	}

	if err := s.db.QueryRow("SELECT COUNT(*) FROM draw_pairs WHERE draw_id = ?", "draw-1").Scan(&count); err != nil {
		t.Fatalf("count pairs: %v", err)
	}
	if count != 3 {
		t.Errorf("pairs count = %d, expected 3", count)
	}
}

func TestRecordDraw_DerivesParticipantCount(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	draw := createTestDraw("draw-1", time.Now())
	draw.ParticipantCount = 99 // ignored; the pairs are the truth

	if err := s.RecordDraw(ctx, draw); err != nil {
		t.Fatalf("RecordDraw() failed: %v", err)
	}

	var count int
	if err := s.db.QueryRow("SELECT participant_count FROM draws WHERE id = ?", "draw-1").Scan(&count); err != nil {
		t.Fatalf("read participant_count: %v", err)
	}
	if count != 3 {
		t.Errorf("participant_count = %d, expected 3", count)
	}
}

func TestRecordDraw_NormalizesTimeToUTC(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	offset := time.FixedZone("UTC+3", 3*60*60)
	local := time.Date(2026, 1, 5, 13, 30, 0, 0, offset)

	draw := createTestDraw("draw-1", local)
	if err := s.RecordDraw(ctx, draw); err != nil {
		t.Fatalf("RecordDraw() failed: %v", err)
	}

	var stored string
	if err := s.db.QueryRow("SELECT drawn_at FROM draws WHERE id = ?", "draw-1").Scan(&stored); err != nil {
		t.Fatalf("read drawn_at: %v", err)
	}
	if stored != "2026-01-05T10:30:00Z" {
		t.Errorf("drawn_at = %q, expected %q", stored, "2026-01-05T10:30:00Z")
	}
}

func TestRecordDraw_IdempotentByID(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	first := createTestDraw("draw-1", time.Date(2026, 1, 5, 10, 30, 0, 0, time.UTC))
	if err := s.RecordDraw(ctx, first); err != nil {
		t.Fatalf("first RecordDraw() failed: %v", err)
	}

	// Same ID, different pairs: the second write must change nothing.
	second := first
	second.RosterName = "other-roster"
	second.Pairs = []engine.Pair{{Giver: "Dave", Recipient: "Erin"}}
	if err := s.RecordDraw(ctx, second); err != nil {
		t.Fatalf("second RecordDraw() failed: %v", err)
	}

	var rosterName string
	if err := s.db.QueryRow("SELECT roster_name FROM draws WHERE id = ?", "draw-1").Scan(&rosterName); err != nil {
		t.Fatalf("read roster_name: %v", err)
	}
	if rosterName != "guild-exchange" {
		t.Errorf("roster_name = %q, expected original %q", rosterName, "guild-exchange")
	}

	var pairs int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM draw_pairs WHERE draw_id = ?", "draw-1").Scan(&pairs); err != nil {
		t.Fatalf("count pairs: %v", err)
	}
	if pairs != 3 {
		t.Errorf("pairs count = %d, expected the original 3", pairs)
	}
}

func TestRecordDraw_EmptyPairs(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	draw := Draw{
		ID:         "draw-empty",
		DrawnAt:    time.Now(),
		RosterName: "guild-exchange",
		Strategy:   "permutation",
	}
	if err := s.RecordDraw(ctx, draw); err != nil {
		t.Fatalf("RecordDraw() failed: %v", err)
	}

	var count int
	if err := s.db.QueryRow("SELECT participant_count FROM draws WHERE id = ?", "draw-empty").Scan(&count); err != nil {
		t.Fatalf("read participant_count: %v", err)
	}
	if count != 0 {
		t.Errorf("participant_count = %d, expected 0", count)
	}
}
