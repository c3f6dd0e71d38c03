package cluster_test

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/devantler-tech/k3d-manager/pkg/di"
	"github.com/devantler-tech/k3d-manager/pkg/utils/runner/runnertest"
	"github.com/devantler-tech/k3d-manager/pkg/utils/timer"
	"github.com/spf13/cobra"
)

type sleepRecorder struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (s *sleepRecorder) sleep(_ context.Context, d time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.delays = append(s.delays, d)

	return nil
}

func (s *sleepRecorder) recorded() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]time.Duration(nil), s.delays...)
}

func newTestRuntime(fake *runnertest.FakeRunner, sleeps *sleepRecorder) *di.Runtime {
	return di.New(
		di.TimerModule(timer.New()),
		di.CommandRunnerModule(fake),
		di.SleeperModule(sleeps.sleep),
	)
}

func execute(cmd *cobra.Command, args ...string) (string, error) {
	var out bytes.Buffer

	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}
