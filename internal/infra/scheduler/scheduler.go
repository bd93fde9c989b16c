package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Pacer blocks the calling goroutine until the next activation of a cron
// schedule. Unlike cron.Cron it never starts goroutines of its own, so at
// most one poll runs at a time.
type Pacer struct {
	schedule cron.Schedule
	spec     string
	logger   *logrus.Entry
	now      func() time.Time
	after    func(time.Duration) <-chan time.Time
}

// NewPacer parses spec with the standard cron parser. Descriptors such as
// "@every 10m" and five-field expressions are both accepted.
func NewPacer(spec string, logger *logrus.Entry) (*Pacer, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid poll schedule %q: %w", spec, err)
	}
	return &Pacer{
		schedule: schedule,
		spec:     spec,
		logger:   logger,
		now:      time.Now,
		after:    time.After,
	}, nil
}

// Next reports when the following poll is due.
func (p *Pacer) Next() time.Time {
	return p.schedule.Next(p.now())
}

// Wait sleeps until the next activation or until ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	next := p.Next()
	delay := next.Sub(p.now())
	if delay < 0 {
		delay = 0
	}
	p.logger.WithFields(logrus.Fields{
		"schedule": p.spec,
		"next_run": next.Format(time.RFC3339),
	}).Debug("Sleeping until next poll")

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.after(delay):
		return nil
	}
}
