package golden

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"

	"kvshell/internal/logger"
	"kvshell/internal/output"
	"kvshell/internal/session"
	"kvshell/internal/version"
)

// Status is the outcome of running a scenario.
type Status int

const (
	// StatusPassed means every step printed what was recorded.
	StatusPassed Status = iota
	// StatusFailed means at least one step differed.
	StatusFailed
	// StatusSkipped means the scenario requires another version.
	StatusSkipped
	// StatusUpdated means the recorded output was rewritten.
	StatusUpdated
)

// String returns the status label used in reports.
func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "PASS"
	case StatusFailed:
		return "FAIL"
	case StatusSkipped:
		return "SKIP"
	case StatusUpdated:
		return "UPDATE"
	default:
		return "UNKNOWN"
	}
}

// Result describes one scenario run.
type Result struct {
	Scenario *Scenario
	Status   Status
	Actual   []Step
	Diff     string
}

// Runner executes scenarios against fresh sessions.
type Runner struct {
	// Update rewrites scenario files with the actual output instead of
	// failing.
	Update bool

	log *log.Logger
}

// NewRunner creates a runner. When update is set, differing scenarios are
// rewritten.
func NewRunner(update bool) *Runner {
	return &Runner{Update: update, log: logger.NewStyledLogger("Golden")}
}

// Execute runs inputs through a new session and returns each line's plain
// output. Execution stops after exit, like the interactive shell.
func Execute(inputs []string) []Step {
	sess := session.New(session.Deterministic())

	steps := make([]Step, 0, len(inputs))
	for _, input := range inputs {
		resp := sess.Execute(input)
		steps = append(steps, Step{
			Input:  input,
			Output: strings.TrimSuffix(ansi.Strip(output.RenderPlain(resp)), "\n"),
		})
		if resp.Exit {
			break
		}
	}
	return steps
}

// Run executes one scenario.
func (r *Runner) Run(sc *Scenario) (*Result, error) {
	ok, err := version.Satisfies(sc.Requires)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}
	if !ok {
		r.log.Debug("Skipping scenario", "scenario", sc.Name, "requires", sc.Requires)
		return &Result{Scenario: sc, Status: StatusSkipped}, nil
	}

	actual := Execute(sc.Inputs())
	result := &Result{Scenario: sc, Actual: actual, Status: StatusPassed}

	result.Diff = Diff(Transcript(sc.Steps), Transcript(actual))
	if result.Diff == "" {
		return result, nil
	}

	if !r.Update {
		result.Status = StatusFailed
		return result, nil
	}

	sc.Steps = actual
	if err := sc.Save(); err != nil {
		return nil, err
	}
	r.log.Info("Updated scenario", "scenario", sc.Name, "path", sc.Path)
	result.Status = StatusUpdated
	return result, nil
}

// RunAll runs every scenario, writes a report to w and returns an error
// naming the failed scenarios.
func (r *Runner) RunAll(scenarios []*Scenario, w io.Writer) error {
	var failed []string
	counts := map[Status]int{}

	for _, sc := range scenarios {
		result, err := r.Run(sc)
		if err != nil {
			return err
		}
		counts[result.Status]++

		fmt.Fprintf(w, "%s %s\n", result.Status, sc.Name)
		if result.Status == StatusFailed {
			failed = append(failed, sc.Name)
			fmt.Fprint(w, result.Diff)
		}
	}

	fmt.Fprintf(w, "\nResults: %d passed, %d failed, %d skipped, %d updated\n",
		counts[StatusPassed], counts[StatusFailed], counts[StatusSkipped], counts[StatusUpdated])

	if len(failed) > 0 {
		return fmt.Errorf("scenarios failed: %s", strings.Join(failed, ", "))
	}
	return nil
}
