package bootstrapper

import (
	"context"
	"fmt"

	"github.com/devantler-tech/k3d-manager/pkg/utils/notify"
)

// stage describes the messaging around one step of the flow.
type stage struct {
	TitleEmoji         string
	TitleContent       string
	ActivityContent    string
	SuccessContent     string
	ErrorMessagePrefix string
	Action             func(ctx context.Context) error
}

func (b *Bootstrapper) runStage(ctx context.Context, st stage) error {
	if b.timer != nil {
		b.timer.NewStage()
	}

	notify.Titlef(b.writer, st.TitleEmoji, "%s", st.TitleContent)
	notify.Activityf(b.writer, "%s", st.ActivityContent)

	err := st.Action(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", st.ErrorMessagePrefix, err)
	}

	notify.SuccessWithTimerf(b.writer, b.timer, "%s", st.SuccessContent)

	return nil
}
