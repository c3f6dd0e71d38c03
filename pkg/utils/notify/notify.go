package notify

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/devantler-tech/k3d-manager/pkg/utils/timer"
	fcolor "github.com/fatih/color"
)

// MessageType defines the type of notification message.
type MessageType int

// Message types, each with its own symbol and color.
const (
	// ErrorType is rendered red with a ✗ symbol.
	ErrorType MessageType = iota
	// WarningType is rendered yellow with a ⚠ symbol.
	WarningType
	// ActivityType is rendered in the default color with a ► symbol.
	ActivityType
	// SuccessType is rendered green with a ✔ symbol.
	SuccessType
	// InfoType is rendered blue with an ℹ symbol.
	InfoType
	// TitleType is rendered bold and led by an emoji.
	TitleType
)

// defaultTitleEmoji is used for titles that do not set one.
const defaultTitleEmoji = "ℹ️"

// Message represents a notification to be displayed to the operator.
type Message struct {
	Type    MessageType
	Content string
	Args    []any
	// Emoji is only used for TitleType.
	Emoji string
	// Timer is optional. For SuccessType it appends a timing block after the message.
	Timer timer.Timer
	// Writer defaults to os.Stdout when nil.
	Writer io.Writer
}

type style struct {
	symbol string
	color  *fcolor.Color
}

func styleFor(msgType MessageType) style {
	switch msgType {
	case ErrorType:
		return style{symbol: "✗ ", color: fcolor.New(fcolor.FgRed)}
	case WarningType:
		return style{symbol: "⚠ ", color: fcolor.New(fcolor.FgYellow)}
	case ActivityType:
		return style{symbol: "► ", color: fcolor.New(fcolor.Reset)}
	case SuccessType:
		return style{symbol: "✔ ", color: fcolor.New(fcolor.FgGreen)}
	case InfoType:
		return style{symbol: "ℹ ", color: fcolor.New(fcolor.FgBlue)}
	case TitleType:
		return style{color: fcolor.New(fcolor.Reset, fcolor.Bold)}
	default:
		return style{color: fcolor.New(fcolor.Reset)}
	}
}

// WriteMessage renders msg to its writer.
func WriteMessage(msg Message) {
	writer := msg.Writer
	if writer == nil {
		writer = os.Stdout
	}

	content := msg.Content
	if len(msg.Args) > 0 {
		content = fmt.Sprintf(msg.Content, msg.Args...)
	}

	st := styleFor(msg.Type)

	if msg.Type == TitleType {
		emoji := msg.Emoji
		if emoji == "" {
			emoji = defaultTitleEmoji
		}

		printf(st.color, writer, "%s %s\n", emoji, content)

		return
	}

	printf(st.color, writer, "%s%s\n", st.symbol, indent(content, st.symbol))

	if msg.Type == SuccessType && msg.Timer != nil {
		total, stage := msg.Timer.GetTiming()

		printf(st.color, writer, "⏲ current: %s\n", stage.String())
		printf(st.color, writer, "  total:  %s\n", total.String())
	}
}

// Errorf writes an error message to writer.
func Errorf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: ErrorType, Content: format, Args: args, Writer: writer})
}

// Warningf writes a warning message to writer.
func Warningf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: WarningType, Content: format, Args: args, Writer: writer})
}

// Activityf writes an activity message to writer.
func Activityf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: ActivityType, Content: format, Args: args, Writer: writer})
}

// Successf writes a success message to writer.
func Successf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: SuccessType, Content: format, Args: args, Writer: writer})
}

// SuccessWithTimerf writes a success message followed by tmr's timing block.
// A nil tmr behaves like Successf.
func SuccessWithTimerf(writer io.Writer, tmr timer.Timer, format string, args ...any) {
	WriteMessage(Message{Type: SuccessType, Content: format, Args: args, Timer: tmr, Writer: writer})
}

// Infof writes an informational message to writer.
func Infof(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: InfoType, Content: format, Args: args, Writer: writer})
}

// Titlef writes a title message led by emoji to writer.
func Titlef(writer io.Writer, emoji, format string, args ...any) {
	WriteMessage(Message{Type: TitleType, Content: fmt.Sprintf(format, args...), Emoji: emoji, Writer: writer})
}

// printf reports write failures on stderr instead of returning them; a broken
// progress marker must not abort the flow it describes.
func printf(c *fcolor.Color, writer io.Writer, format string, args ...any) {
	_, err := c.Fprintf(writer, format, args...)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "notify: failed to print message: %v\n", err)
	}
}

// indent aligns continuation lines of multi-line content under the first line's text.
func indent(content, symbol string) string {
	if symbol == "" || !strings.Contains(content, "\n") {
		return content
	}

	pad := strings.Repeat(" ", len([]rune(symbol)))
	lines := strings.Split(content, "\n")

	for i := 1; i < len(lines); i++ {
		if lines[i] != "" {
			lines[i] = pad + lines[i]
		}
	}

	return strings.Join(lines, "\n")
}
