package worker

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Progress counts finished jobs and logs at most once per interval
type Progress struct {
	total     int
	done      atomic.Int64
	failed    atomic.Int64
	sometimes *rate.Sometimes
	logger    *zap.Logger
}

// NewProgress creates a progress reporter for total jobs
func NewProgress(logger *zap.Logger, total int, interval time.Duration) *Progress {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Progress{
		total:     total,
		sometimes: &rate.Sometimes{First: 1, Interval: interval},
		logger:    logger,
	}
}

// Record marks one job as finished
func (p *Progress) Record(err error) {
	done := p.done.Add(1)
	if err != nil {
		p.failed.Add(1)
	}

	p.sometimes.Do(func() {
		p.logger.Info("Translating relations",
			zap.Int64("done", done),
			zap.Int("total", p.total),
			zap.Int64("failed", p.failed.Load()))
	})
}

// Done returns the number of finished jobs
func (p *Progress) Done() int64 {
	return p.done.Load()
}

// Failed returns the number of failed jobs
func (p *Progress) Failed() int64 {
	return p.failed.Load()
}
