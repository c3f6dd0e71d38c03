package bootstrapper

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/devantler-tech/k3d-manager/pkg/apis/cluster/v1alpha1"
	"github.com/devantler-tech/k3d-manager/pkg/client/kubectl"
	clusterprovisioner "github.com/devantler-tech/k3d-manager/pkg/svc/provisioner/cluster"
	"github.com/devantler-tech/k3d-manager/pkg/utils/notify"
	"github.com/devantler-tech/k3d-manager/pkg/utils/timer"
	"github.com/sirupsen/logrus"
)

// Verifier checks a freshly created cluster.
type Verifier interface {
	// Delay is the settle delay Verify waits before listing nodes.
	Delay() time.Duration
	Verify(ctx context.Context) error
}

// NodeWaiter blocks until the cluster described by spec has all of its nodes Ready.
type NodeWaiter interface {
	WaitForNodes(ctx context.Context, spec v1alpha1.ClusterSpec) error
}

// Option configures a Bootstrapper.
type Option func(*Bootstrapper)

// WithWriter sets where progress markers are written. Defaults to os.Stdout.
func WithWriter(writer io.Writer) Option {
	return func(b *Bootstrapper) {
		if writer != nil {
			b.writer = writer
		}
	}
}

// WithTimer appends timing to every success marker. A nil timer disables timing output.
func WithTimer(tmr timer.Timer) Option {
	return func(b *Bootstrapper) {
		b.timer = tmr
	}
}

// WithNodeWaiter enables the node readiness stage after verification.
func WithNodeWaiter(waiter NodeWaiter) Option {
	return func(b *Bootstrapper) {
		b.nodeWaiter = waiter
	}
}

// Bootstrapper sequences provisioning and verification of a single cluster.
type Bootstrapper struct {
	provisioner clusterprovisioner.ClusterProvisioner
	verifier    Verifier
	nodeWaiter  NodeWaiter
	writer      io.Writer
	timer       timer.Timer
}

// New creates a Bootstrapper.
func New(
	provisioner clusterprovisioner.ClusterProvisioner,
	verifier Verifier,
	opts ...Option,
) *Bootstrapper {
	b := &Bootstrapper{
		provisioner: provisioner,
		verifier:    verifier,
		writer:      os.Stdout,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Run creates the cluster described by spec and verifies it.
// Nothing after a failed step is executed.
func (b *Bootstrapper) Run(ctx context.Context, spec v1alpha1.ClusterSpec) error {
	if b.timer != nil {
		b.timer.Start()
	}

	logrus.WithField("cluster", spec.String()).Debug("starting bootstrap")

	stages := []stage{
		{
			TitleEmoji:   "🚀",
			TitleContent: "Create cluster...",
			ActivityContent: fmt.Sprintf(
				"creating cluster '%s' with %d control planes and %d workers",
				spec.Name, spec.ControlPlanes, spec.Workers,
			),
			SuccessContent:     "cluster created",
			ErrorMessagePrefix: "failed to create cluster",
			Action: func(ctx context.Context) error {
				return b.provisioner.Create(ctx, spec)
			},
		},
		{
			TitleEmoji:   "🔍",
			TitleContent: "Verify cluster...",
			ActivityContent: fmt.Sprintf(
				"waiting %s for the cluster to settle, then listing nodes",
				b.verifier.Delay(),
			),
			SuccessContent:     "nodes listed",
			ErrorMessagePrefix: "failed to verify cluster",
			Action:             b.verifier.Verify,
		},
	}

	if b.nodeWaiter != nil {
		stages = append(stages, stage{
			TitleEmoji:   "⏳",
			TitleContent: "Wait for nodes...",
			ActivityContent: fmt.Sprintf(
				"waiting for %d nodes to report Ready",
				spec.ControlPlanes+spec.Workers,
			),
			SuccessContent:     "all nodes ready",
			ErrorMessagePrefix: "failed waiting for nodes",
			Action: func(ctx context.Context) error {
				return b.nodeWaiter.WaitForNodes(ctx, spec)
			},
		})
	}

	for _, st := range stages {
		err := b.runStage(ctx, st)
		if err != nil {
			return err
		}
	}

	b.printHints(spec)

	return nil
}

func (b *Bootstrapper) printHints(spec v1alpha1.ClusterSpec) {
	notify.Infof(b.writer, "switch to the cluster with:\n%s", kubectl.UseContext(spec.ContextName()))
	notify.Infof(b.writer, "delete the cluster with:\nk3d cluster delete %s", spec.Name)
}
