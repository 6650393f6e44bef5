package store

import (
	"context"
	"fmt"
	"time"

	"github.com/roach88/kringle/internal/engine"
)

// Draw is one recorded draw: its metadata and, when read back by ID, its
// assignment pairs. ListDraws leaves Pairs nil; only GetDraw fills it.
type Draw struct {
	ID               string        `json:"id"`
	DrawnAt          time.Time     `json:"drawn_at"`
	RosterName       string        `json:"roster_name"`
	Strategy         string        `json:"strategy"`
	ParticipantCount int           `json:"participant_count"`
	Pairs            []engine.Pair `json:"pairs,omitempty"`
}

// RecordDraw inserts a draw and its pairs in one transaction.
// Uses ON CONFLICT(id) DO NOTHING for idempotency - recording the same
// draw ID twice leaves the first record in place, pairs included.
//
// ParticipantCount is derived from the pairs; the caller-provided value
// is ignored. DrawnAt is stored in RFC 3339 form, normalized to UTC.
func (s *Store) RecordDraw(ctx context.Context, d Draw) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("record draw: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	result, err := tx.ExecContext(ctx, `
		INSERT INTO draws
		(id, drawn_at, roster_name, strategy, participant_count)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		d.ID,
		d.DrawnAt.UTC().Format(time.RFC3339),
		d.RosterName,
		d.Strategy,
		len(d.Pairs),
	)
	if err != nil {
		return fmt.Errorf("record draw: insert draw: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("record draw: rows affected: %w", err)
	}
	if rowsAffected == 0 {
		// Draw already recorded; keep the original pairs untouched.
		return tx.Commit()
	}

	for _, pair := range d.Pairs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO draw_pairs
			(draw_id, giver, recipient)
			VALUES (?, ?, ?)
		`,
			d.ID,
			pair.Giver,
			pair.Recipient,
		)
		if err != nil {
			return fmt.Errorf("record draw: insert pair %q: %w", pair.Giver, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("record draw: commit: %w", err)
	}

	return nil
}
