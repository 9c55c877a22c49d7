package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/teemow/labelguard/internal/instrumentation"
	"github.com/teemow/labelguard/internal/labelfield"
	"github.com/teemow/labelguard/internal/logging"
)

// Scanner walks the store and returns every tracked document it finds,
// expiring or not.
type Scanner interface {
	Scan(ctx context.Context) ([]labelfield.Document, error)
}

// Reporter persists the expiring documents for human review.
type Reporter interface {
	WriteReport(ctx context.Context, docs []labelfield.Document) error
}

// Notifier delivers one notice per document and returns how many went out.
type Notifier interface {
	Notify(ctx context.Context, docs []labelfield.Document) int
}

// Config parameterizes a run. Zero values fall back to sane behavior: a nil
// Now uses the wall clock, a nil Confirm declines, a zero Budget means
// unlimited.
type Config struct {
	// Days is the look-ahead window for the expiry cutoff
	Days int

	// Budget bounds the wall clock time of the run, checked between phases
	Budget time.Duration

	// Now supplies the current time, overridable in tests
	Now func() time.Time

	// Confirm decides whether the expiring documents should be notified
	Confirm func(docs []labelfield.Document) bool

	Logger  logging.Logger
	Metrics *instrumentation.Metrics
}

// Result describes how a run ended.
type Result struct {
	// State is the terminal state, StateDone or StateAborted
	State State

	// AbortReason explains an aborted run
	AbortReason string

	// ScannedCount is the number of tracked documents the scan saw
	ScannedCount int

	// ExpiringCount is how many of them fell inside the window
	ExpiringCount int

	// SentCount is the number of notices delivered
	SentCount int

	// NothingToDo is set when the scan found no expiring documents
	NothingToDo bool

	// TimedOut is set when the abort was caused by the run budget,
	// as opposed to a failed phase
	TimedOut bool
}

// Runner drives one expiration run through its states.
type Runner struct {
	scanner  Scanner
	reporter Reporter
	notifier Notifier
	config   Config

	state State
}

// NewRunner wires a runner from its three phases.
func NewRunner(scanner Scanner, reporter Reporter, notifier Notifier, config Config) *Runner {
	if config.Now == nil {
		config.Now = time.Now
	}
	if config.Confirm == nil {
		config.Confirm = func([]labelfield.Document) bool { return false }
	}
	if config.Logger == nil {
		config.Logger = logging.DefaultLogger()
	}
	if config.Metrics == nil {
		config.Metrics = &instrumentation.Metrics{}
	}

	return &Runner{
		scanner:  scanner,
		reporter: reporter,
		notifier: notifier,
		config:   config,
		state:    StateIdle,
	}
}

// State returns the runner's current state.
func (r *Runner) State() State {
	return r.state
}

// Run executes the pipeline once. The returned error is non-nil only for
// aborted runs; Result carries the counts either way.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	start := r.config.Now()
	result := &Result{}

	defer func() {
		outcome := "done"
		if result.State == StateAborted {
			outcome = "aborted"
		}
		r.config.Metrics.RecordRunDuration(ctx, outcome, r.config.Now().Sub(start))
	}()

	// Scanning
	r.state = StateScanning
	r.config.Logger.Info("scanning for tracked documents", logging.KeyOperation, "scan")

	docs, err := r.scanner.Scan(ctx)
	if err != nil {
		return r.abort(result, fmt.Sprintf("scan failed: %v", err))
	}
	result.ScannedCount = len(docs)
	r.config.Metrics.RecordFilesScanned(ctx, len(docs))

	expiring := labelfield.FilterExpiring(docs, r.config.Days, start, r.config.Logger)
	result.ExpiringCount = len(expiring)

	r.config.Logger.Info("scan complete",
		"scanned", result.ScannedCount,
		"expiring", result.ExpiringCount)

	if len(expiring) == 0 {
		result.NothingToDo = true
		r.state = StateDone
		result.State = StateDone
		return result, nil
	}

	if reason, ok := r.budgetExceeded(start, "scan"); ok {
		result.TimedOut = true
		return r.abort(result, reason)
	}

	// Reporting
	r.state = StateReporting
	if err := r.reporter.WriteReport(ctx, expiring); err != nil {
		return r.abort(result, fmt.Sprintf("report failed: %v", err))
	}
	r.config.Logger.Info("report written", "rows", len(expiring))

	if reason, ok := r.budgetExceeded(start, "report"); ok {
		result.TimedOut = true
		return r.abort(result, reason)
	}

	// AwaitingConfirmation
	r.state = StateAwaitingConfirmation
	if !r.config.Confirm(expiring) {
		r.config.Logger.Info("notification declined, finishing without sending")
		r.state = StateDone
		result.State = StateDone
		return result, nil
	}

	// Notifying
	r.state = StateNotifying
	result.SentCount = r.notifier.Notify(ctx, expiring)
	r.config.Logger.Info("notifications complete",
		"sent", result.SentCount,
		"expiring", result.ExpiringCount)

	r.state = StateDone
	result.State = StateDone
	return result, nil
}

// budgetExceeded checks the wall clock budget after the named phase.
func (r *Runner) budgetExceeded(start time.Time, phase string) (string, bool) {
	if r.config.Budget <= 0 {
		return "", false
	}
	elapsed := r.config.Now().Sub(start)
	if elapsed <= r.config.Budget {
		return "", false
	}
	return fmt.Sprintf("run budget of %s exceeded after %s phase (elapsed %s)",
		r.config.Budget, phase, elapsed.Round(time.Millisecond)), true
}

func (r *Runner) abort(result *Result, reason string) (*Result, error) {
	r.state = StateAborted
	result.State = StateAborted
	result.AbortReason = reason
	r.config.Logger.Error("run aborted", "reason", reason)
	return result, fmt.Errorf("run aborted: %s", reason)
}
