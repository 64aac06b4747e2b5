package cli

import (
	"fmt"
	"time"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"

	"github.com/harborgrid-justin/appropriations/output"
	"github.com/harborgrid-justin/appropriations/workflow"
)

// WorkflowCmd replays a transition script against a fresh budget
// workflow instance, printing each hop.
type WorkflowCmd struct {
	File FileOrStdin `help:"Transition script filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Yes  bool        `help:"Skip confirmation before entering terminal states." short:"y"`
}

// transitionScript mirrors the YAML schema of a transition script.
type transitionScript struct {
	Transitions []transitionYAML `yaml:"transitions"`
}

type transitionYAML struct {
	To       string            `yaml:"to"`
	Actor    string            `yaml:"actor"`
	Approver string            `yaml:"approver"`
	Reason   string            `yaml:"reason"`
	Fields   map[string]string `yaml:"fields"`
}

func (cmd *WorkflowCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	contents, err := cmd.File.Read()
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var script transitionScript
	if err := yaml.Unmarshal(contents, &script); err != nil {
		return fmt.Errorf("failed to parse transition script: %w", err)
	}
	if len(script.Transitions) == 0 {
		return fmt.Errorf("transition script is empty")
	}

	styles := output.NewStyles(ctx.Stdout)
	instance := workflow.New()
	printInfof(ctx.Stdout, "Instance %s starting in %s", instance.ID(), styles.State(instance.State().String()))

	for i, tr := range script.Transitions {
		target, ok := workflow.ParseState(tr.To)
		if !ok {
			printError(ctx.Stderr, fmt.Sprintf("step %d: unknown state %q", i+1, tr.To))
			return NewCommandError(1)
		}

		if target.Terminal() && !cmd.Yes {
			confirmed, err := promptYesNo(ctx, fmt.Sprintf("Enter terminal state %s? This cannot be undone.", target))
			if err != nil {
				return err
			}
			if !confirmed && isTerminal() {
				printInfof(ctx.Stdout, "Stopped before %s", styles.State(target.String()))
				return nil
			}
		}

		err := instance.Transition(workflow.Request{
			To:        target,
			Actor:     tr.Actor,
			Approver:  tr.Approver,
			Reason:    tr.Reason,
			Fields:    tr.Fields,
			Timestamp: time.Now(),
		})
		if err != nil {
			printError(ctx.Stderr, fmt.Sprintf("step %d: %v", i+1, err))
			return NewCommandError(1)
		}

		history := instance.History()
		last := history[len(history)-1]
		_, _ = fmt.Fprintf(ctx.Stdout, "  %s %s %s %s\n",
			styles.State(last.From.String()),
			styles.Dim("->"),
			styles.State(last.To.String()),
			styles.Dim(fmt.Sprintf("(%s)", last.To.Phase())))
	}

	if ord, total, ok := instance.Progress(); ok {
		printSuccess(ctx.Stdout, fmt.Sprintf("Reached %s, step %d of %d", instance.State(), ord, total))
	} else {
		printSuccess(ctx.Stdout, fmt.Sprintf("Reached %s", instance.State()))
	}

	return nil
}
