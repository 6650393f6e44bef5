package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/roach88/kringle/internal/engine"
)

// ListDraws returns every recorded draw, newest first, without pairs.
// Draws sharing a timestamp are ordered by ID, so results are deterministic.
//
// Returns an empty slice (not nil) if no draws are recorded.
func (s *Store) ListDraws(ctx context.Context) ([]Draw, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, drawn_at, roster_name, strategy, participant_count
		FROM draws
		ORDER BY drawn_at DESC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query draws: %w", err)
	}
	defer rows.Close()

	var draws []Draw
	for rows.Next() {
		d, err := scanDraw(rows)
		if err != nil {
			return nil, err
		}
		draws = append(draws, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate draws: %w", err)
	}

	if draws == nil {
		draws = []Draw{}
	}

	return draws, nil
}

// GetDraw retrieves a single draw by ID, pairs included. Pairs are ordered
// by giver.
func (s *Store) GetDraw(ctx context.Context, id string) (*Draw, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, drawn_at, roster_name, strategy, participant_count
		FROM draws
		WHERE id = ?
	`, id)

	d, err := scanDraw(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("draw %q not found", id)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT giver, recipient
		FROM draw_pairs
		WHERE draw_id = ?
		ORDER BY giver COLLATE BINARY ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("query pairs: %w", err)
	}
	defer rows.Close()

	d.Pairs = []engine.Pair{}
	for rows.Next() {
		var p engine.Pair
		if err := rows.Scan(&p.Giver, &p.Recipient); err != nil {
			return nil, fmt.Errorf("scan pair: %w", err)
		}
		d.Pairs = append(d.Pairs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pairs: %w", err)
	}

	return &d, nil
}

// RecentPairs returns the pairs of the lastN most recent draws, newest
// draw first, pairs ordered by giver within each draw. The draw command
// turns these into exclusions when asked to avoid repeats.
//
// Returns an empty slice (not nil) if no draws are recorded. lastN larger
// than the recorded history is not an error.
func (s *Store) RecentPairs(ctx context.Context, lastN int) ([]engine.Pair, error) {
	if lastN <= 0 {
		return []engine.Pair{}, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT p.giver, p.recipient
		FROM draw_pairs p
		JOIN draws d ON p.draw_id = d.id
		WHERE d.id IN (
			SELECT id FROM draws
			ORDER BY drawn_at DESC, id COLLATE BINARY ASC
			LIMIT ?
		)
		ORDER BY d.drawn_at DESC, d.id COLLATE BINARY ASC, p.giver COLLATE BINARY ASC
	`, lastN)
	if err != nil {
		return nil, fmt.Errorf("query recent pairs: %w", err)
	}
	defer rows.Close()

	pairs := []engine.Pair{}
	for rows.Next() {
		var p engine.Pair
		if err := rows.Scan(&p.Giver, &p.Recipient); err != nil {
			return nil, fmt.Errorf("scan recent pair: %w", err)
		}
		pairs = append(pairs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recent pairs: %w", err)
	}

	return pairs, nil
}

// scanner abstracts sql.Row and sql.Rows for scanDraw.
type scanner interface {
	Scan(dest ...any) error
}

func scanDraw(row scanner) (Draw, error) {
	var d Draw
	var drawnAt string
	if err := row.Scan(&d.ID, &drawnAt, &d.RosterName, &d.Strategy, &d.ParticipantCount); err != nil {
		if err == sql.ErrNoRows {
			return Draw{}, err
		}
		return Draw{}, fmt.Errorf("scan draw: %w", err)
	}

	t, err := time.Parse(time.RFC3339, drawnAt)
	if err != nil {
		return Draw{}, fmt.Errorf("scan draw %q: bad drawn_at %q: %w", d.ID, drawnAt, err)
	}
	d.DrawnAt = t

	return d, nil
}
