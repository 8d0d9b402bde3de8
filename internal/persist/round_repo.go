package persist

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/breachpoint/server/internal/core/event"
)

// RoundRepo records round outcomes in the rounds table.
type RoundRepo struct {
	db *DB
}

func NewRoundRepo(db *DB) *RoundRepo {
	return &RoundRepo{db: db}
}

// Insert writes one finished round. Elapsed is stored in milliseconds.
func (r *RoundRepo) Insert(ctx context.Context, ev event.RoundEnded) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO rounds (round, winner, attacker_score, defender_score, elapsed_ms)
		 VALUES ($1, $2, $3, $4, $5)`,
		ev.Round, ev.Winner, ev.AttackerScore, ev.DefenderScore,
		ev.Elapsed.Milliseconds())
	return err
}

// Subscribe hooks the repository onto the event bus. Writes happen on
// the game loop goroutine with a short timeout so a slow database does
// not stall ticks for long.
func (r *RoundRepo) Subscribe(bus *event.Bus) {
	event.Subscribe(bus, func(ev event.RoundEnded) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := r.Insert(ctx, ev); err != nil {
			r.db.log.Error("record round", zap.Int("round", ev.Round), zap.Error(err))
		}
	})
}
