package script

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bnema/remote-assist-console/internal/application"
)

// ShowFunc renders a console snapshot for the show directive.
type ShowFunc func(application.Snapshot) (string, error)

type Runner struct {
	service *application.Service
	out     io.Writer
	show    ShowFunc
}

type Result struct {
	Executed int
	Failed   int
}

func NewRunner(service *application.Service, out io.Writer, show ShowFunc) *Runner {
	if show == nil {
		show = showJSON
	}
	return &Runner{service: service, out: out, show: show}
}

// Run executes every directive in order. A failing directive is reported
// and the script carries on, the way an operator keeps clicking after an
// error toast.
func (r *Runner) Run(ctx context.Context, directives []Directive) (Result, error) {
	var result Result
	for _, directive := range directives {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		text, err := r.Exec(ctx, directive)
		result.Executed++
		if err != nil {
			result.Failed++
			text = "error: " + err.Error()
		}
		if _, werr := fmt.Fprintf(r.out, "%d> %s\n%s\n", directive.Line, directive.Text, text); werr != nil {
			return result, fmt.Errorf("write script output: %w", werr)
		}
	}

	return result, nil
}

// Exec runs one directive and describes what happened.
func (r *Runner) Exec(ctx context.Context, directive Directive) (string, error) {
	switch directive.Query {
	case QueryReady:
		return DescribeReadiness(r.service.Readiness()), nil
	case QueryShow:
		return r.show(r.service.Snapshot())
	}

	outcome, err := r.service.Execute(ctx, directive.Action)
	if err != nil {
		return "", err
	}
	return DescribeOutcome(outcome), nil
}

func DescribeReadiness(readiness application.Readiness) string {
	if readiness.Ready {
		return "ready: " + readiness.Hint
	}
	return "not ready: " + readiness.Hint
}

func DescribeOutcome(outcome application.Outcome) string {
	switch {
	case outcome.Command != nil:
		return "sent: " + outcome.Command.Summary()
	case outcome.Confirmation != nil:
		return "confirm? " + outcome.Confirmation.Prompt()
	case outcome.Take == application.TakeAssigned:
		return "ticket assigned to you"
	case outcome.Take == application.TakeAlreadyOwned:
		return "ticket already yours"
	case outcome.Released != nil && *outcome.Released:
		return "ticket released"
	case outcome.Released != nil:
		return "ticket not yours, nothing released"
	default:
		return "ok"
	}
}

func showJSON(snap application.Snapshot) (string, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	return string(data), nil
}
