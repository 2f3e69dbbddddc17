package poller

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

type Refresher interface {
	Refresh(ctx context.Context) error
}

// Poller keeps the snapshot cache warm by refreshing it on a fixed interval.
type Poller struct {
	target   Refresher
	interval time.Duration
	log      zerolog.Logger
}

func New(target Refresher, interval time.Duration, log zerolog.Logger) *Poller {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Poller{target: target, interval: interval, log: log}
}

// Run refreshes once immediately and then on every tick until ctx is done.
func (p *Poller) Run(ctx context.Context) {
	p.log.Info().Dur("interval", p.interval).Msg("snapshot poller started")

	p.tick(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.Info().Msg("snapshot poller stopped")
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *Poller) tick(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	start := time.Now()
	if err := p.target.Refresh(ctx); err != nil {
		p.log.Warn().Err(err).Msg("snapshot refresh failed")
		return
	}
	p.log.Debug().Dur("took", time.Since(start)).Msg("snapshots refreshed")
}
