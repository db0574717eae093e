package job_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/clientnudge/invoicing/pkg/job"
)

func TestService_RegisterJobReplacesByName(t *testing.T) {
	t.Parallel()

	var first, second atomic.Int64

	s := job.NewService().
		RegisterJob("sweep", time.Hour, func(context.Context) error {
			first.Add(1)
			return nil
		}).
		RegisterJob("sweep", time.Hour, func(context.Context) error {
			second.Add(1)
			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())

	s.Start(ctx)

	require.Eventually(t, func() bool {
		return second.Load() == 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	s.Stop()

	require.Zero(t, first.Load(), "replaced job must never run")
	require.Equal(t, int64(1), second.Load())
}
