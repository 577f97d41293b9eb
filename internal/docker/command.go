package docker

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"cnoiddev/internal/session"
)

// Command is one docker CLI invocation, built from typed constructors so the
// set of issued subcommands stays closed.
type Command struct {
	verb string
	args []string
}

// StartCommand starts a stopped container.
func StartCommand(container string) Command {
	return Command{verb: "start", args: []string{container}}
}

// RunCommand creates a new interactive container from an image.
func RunCommand(spec session.RunSpec) Command {
	args := []string{"-it"}
	if spec.MountSource != "" {
		args = append(args, "-v", spec.MountSource+":"+spec.MountTarget)
	}
	for _, p := range spec.Publish {
		args = append(args, "-p", p)
	}
	args = append(args, spec.Image)
	args = append(args, spec.Args...)
	return Command{verb: "run", args: args}
}

// ExecCommand opens an interactive shell inside a running container.
func ExecCommand(container, shell string) Command {
	return Command{verb: "exec", args: []string{"-it", container, shell}}
}

// Argv is the full argument vector, docker binary included.
func (c Command) Argv() []string {
	return append([]string{"docker", c.verb}, c.args...)
}

func (c Command) String() string {
	return strings.Join(c.Argv(), " ")
}

var _ session.Runner = (*Invoker)(nil)

// Invoker executes mutating engine commands through the docker CLI with the
// caller's terminal attached, which is what makes run/exec interactive.
// In dry-run it prints each command instead, uniformly for every mutation.
type Invoker struct {
	dryRun bool
	out    io.Writer
}

// NewInvoker creates an Invoker. out receives dry-run command lines.
func NewInvoker(dryRun bool, out io.Writer) *Invoker {
	if out == nil {
		out = os.Stdout
	}
	return &Invoker{dryRun: dryRun, out: out}
}

func (v *Invoker) Start(ctx context.Context, container string) error {
	return v.invoke(ctx, StartCommand(container))
}

func (v *Invoker) Run(ctx context.Context, spec session.RunSpec) error {
	return v.invoke(ctx, RunCommand(spec))
}

func (v *Invoker) Exec(ctx context.Context, container, shell string) error {
	return v.invoke(ctx, ExecCommand(container, shell))
}

func (v *Invoker) invoke(ctx context.Context, cmd Command) error {
	if v.dryRun {
		_, err := fmt.Fprintln(v.out, cmd.String())
		return err
	}

	argv := cmd.Argv()
	ec := exec.CommandContext(ctx, argv[0], argv[1:]...)
	ec.Stdin = os.Stdin
	ec.Stdout = os.Stdout
	ec.Stderr = os.Stderr
	if err := ec.Run(); err != nil {
		return fmt.Errorf("%s: %w", cmd, err)
	}
	return nil
}
