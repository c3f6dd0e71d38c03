package runner

import "strings"

// Invocation describes a single external process call.
type Invocation struct {
	// Name is the executable, resolved through PATH.
	Name string
	// Args are passed to the executable in order.
	Args []string
}

// NewInvocation constructs an Invocation for name with the given arguments.
func NewInvocation(name string, args ...string) Invocation {
	return Invocation{Name: name, Args: args}
}

// String renders the invocation the way it would be typed in a shell, without quoting.
func (i Invocation) String() string {
	if len(i.Args) == 0 {
		return i.Name
	}

	return i.Name + " " + strings.Join(i.Args, " ")
}

// Result captures the outcome of a finished invocation.
// Stdout and Stderr contain everything the child wrote, including output produced
// before a failure.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}
