package notify

import (
	"context"
	"errors"

	domain "loan-origination-backend/internal/domain/notify"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Channel is one named delivery route.
type Channel struct {
	Name     string
	Notifier domain.Notifier
}

// Fanout delivers each event on every channel. One channel failing does
// not stop the others; failures are counted per channel and joined.
type Fanout struct {
	channels []Channel
	failures *prometheus.CounterVec
	log      *zap.Logger
}

func NewFanout(failures *prometheus.CounterVec, log *zap.Logger, channels ...Channel) *Fanout {
	if log == nil {
		log = zap.NewNop()
	}
	return &Fanout{channels: channels, failures: failures, log: log}
}

func (f *Fanout) StatusChanged(ctx context.Context, ev domain.StatusChanged) error {
	var errs []error
	for _, c := range f.channels {
		if err := c.Notifier.StatusChanged(ctx, ev); err != nil {
			if f.failures != nil {
				f.failures.WithLabelValues(c.Name).Inc()
			}
			f.log.Debug("notify channel failed", zap.String("channel", c.Name), zap.String("loan_id", ev.LoanID), zap.Error(err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
