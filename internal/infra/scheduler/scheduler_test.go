package scheduler

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return logrus.NewEntry(log)
}

func TestNewPacer(t *testing.T) {
	t.Run("EveryDescriptor", func(t *testing.T) {
		p, err := NewPacer("@every 10m", testLogger())
		require.NoError(t, err)

		base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		p.now = func() time.Time { return base }
		require.True(t, base.Add(10*time.Minute).Equal(p.Next()))
	})

	t.Run("FiveFieldExpression", func(t *testing.T) {
		p, err := NewPacer("*/5 * * * *", testLogger())
		require.NoError(t, err)

		base := time.Date(2024, 3, 1, 12, 1, 0, 0, time.UTC)
		p.now = func() time.Time { return base }
		require.True(t, time.Date(2024, 3, 1, 12, 5, 0, 0, time.UTC).Equal(p.Next()))
	})

	t.Run("InvalidSpec", func(t *testing.T) {
		_, err := NewPacer("every ten minutes", testLogger())
		require.Error(t, err)
	})
}

func TestPacer_Wait(t *testing.T) {
	t.Run("WaitsForComputedDelay", func(t *testing.T) {
		p, err := NewPacer("@every 10m", testLogger())
		require.NoError(t, err)

		base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		p.now = func() time.Time { return base }
		var got time.Duration
		p.after = func(d time.Duration) <-chan time.Time {
			got = d
			ch := make(chan time.Time, 1)
			ch <- base.Add(d)
			return ch
		}

		require.NoError(t, p.Wait(context.Background()))
		require.Equal(t, 10*time.Minute, got)
	})

	t.Run("ReturnsOnCancel", func(t *testing.T) {
		p, err := NewPacer("@every 1h", testLogger())
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.ErrorIs(t, p.Wait(ctx), context.Canceled)
	})
}
