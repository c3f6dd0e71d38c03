package notify_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/devantler-tech/k3d-manager/pkg/utils/notify"
	"github.com/devantler-tech/k3d-manager/pkg/utils/timer"
	"github.com/stretchr/testify/assert"
)

func TestWriteMessage_Symbols(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		msgType notify.MessageType
		want    string
	}{
		{name: "error", msgType: notify.ErrorType, want: "✗ provisioning failed\n"},
		{name: "warning", msgType: notify.WarningType, want: "⚠ provisioning failed\n"},
		{name: "activity", msgType: notify.ActivityType, want: "► provisioning failed\n"},
		{name: "success", msgType: notify.SuccessType, want: "✔ provisioning failed\n"},
		{name: "info", msgType: notify.InfoType, want: "ℹ provisioning failed\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer

			notify.WriteMessage(notify.Message{
				Type:    tc.msgType,
				Content: "provisioning failed",
				Writer:  &out,
			})

			assert.Equal(t, tc.want, out.String())
		})
	}
}

func TestWriteMessage_FormatsArgs(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	notify.Activityf(&out, "creating cluster %q with %d servers", "rusty-cluster", 3)

	assert.Equal(t, "► creating cluster \"rusty-cluster\" with 3 servers\n", out.String())
}

func TestWriteMessage_IndentsMultiline(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	notify.Infof(&out, "next steps:\nkubectl get nodes\n\nk3d cluster delete dev")

	assert.Equal(t, "ℹ next steps:\n  kubectl get nodes\n\n  k3d cluster delete dev\n", out.String())
}

func TestTitlef(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	notify.Titlef(&out, "🚀", "Create cluster...")
	notify.WriteMessage(notify.Message{Type: notify.TitleType, Content: "Untitled", Writer: &out})

	assert.Equal(t, "🚀 Create cluster...\nℹ️ Untitled\n", out.String())
}

func TestSuccessWithTimerf(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	ticks := []time.Time{base, base.Add(2 * time.Second), base.Add(5 * time.Second)}
	idx := 0

	tmr := timer.NewWithClock(func() time.Time {
		now := ticks[idx]
		if idx < len(ticks)-1 {
			idx++
		}

		return now
	})
	tmr.Start()
	tmr.NewStage()

	var out bytes.Buffer

	notify.SuccessWithTimerf(&out, tmr, "cluster created")

	assert.Equal(t, "✔ cluster created\n⏲ current: 3s\n  total:  5s\n", out.String())
}

func TestSuccessWithTimerf_NilTimer(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	notify.SuccessWithTimerf(&out, nil, "cluster created")

	assert.Equal(t, "✔ cluster created\n", out.String())
}
