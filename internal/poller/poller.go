// Package poller tracks a single server-side processing job through its
// lifecycle by polling the job-status endpoint until a terminal state.
package poller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/emr-dev1/resume-matcher/internal/matcher"
	"github.com/emr-dev1/resume-matcher/internal/utils"
	"go.uber.org/zap"
)

const (
	defaultInterval = 2 * time.Second

	// defaultMaxFailures bounds consecutive poll request failures
	// before the coordinator gives up on the job.
	defaultMaxFailures = 5
)

type State string

const (
	StateIdle      State = "idle"
	StateSubmitted State = "submitted"
	StateCompleted State = "completed"
	StateFailed    State = "failed"
)

// Coordinator polls one processing job at a time. On the transition
// into completed it invokes the reload callback exactly once; the
// reload is best-effort and never reverts the terminal state.
type Coordinator struct {
	client *matcher.Client
	logger *zap.Logger

	// Interval between polls. Defaults to 2 seconds.
	Interval time.Duration
	// MaxFailures is the consecutive network-failure budget before the
	// coordinator stops polling. Defaults to 5.
	MaxFailures int

	mu    sync.Mutex
	state State
	job   *matcher.Job
}

// Handle controls a started polling loop.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Cancel stops the polling loop. No coordinator state is mutated after
// cancellation takes effect.
func (h *Handle) Cancel() {
	h.cancel()
}

// Done is closed when the polling loop has exited, whether due to a
// terminal job state, exhausted failures or cancellation.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

func New(client *matcher.Client, logger *zap.Logger) *Coordinator {
	return &Coordinator{
		client:      client,
		logger:      logger,
		Interval:    defaultInterval,
		MaxFailures: defaultMaxFailures,
		state:       StateIdle,
	}
}

func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Job returns a snapshot of the last observed job, or nil before the
// first successful poll.
func (c *Coordinator) Job() *matcher.Job {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.job == nil {
		return nil
	}
	snapshot := *c.job
	return &snapshot
}

// Start begins polling jobID. onComplete runs once if the job reaches
// completed; its error is logged, not retried. Only one job may be
// tracked at a time.
func (c *Coordinator) Start(ctx context.Context, jobID int, onComplete func(*matcher.Job) error) (*Handle, error) {
	c.mu.Lock()
	if c.state == StateSubmitted {
		c.mu.Unlock()
		return nil, fmt.Errorf("a job is already being tracked")
	}
	c.state = StateSubmitted
	c.job = &matcher.Job{ID: jobID, Status: matcher.JobStatusPending}
	c.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	handle := &Handle{cancel: cancel, done: make(chan struct{})}

	go c.loop(ctx, jobID, onComplete, handle)

	return handle, nil
}

func (c *Coordinator) loop(ctx context.Context, jobID int, onComplete func(*matcher.Job) error, handle *Handle) {
	defer close(handle.done)
	defer handle.cancel()

	failures := 0
	for {
		job, err := c.client.GetJobStatus(jobID)

		// Cancellation wins over whatever the poll returned.
		if ctx.Err() != nil {
			return
		}

		switch {
		case err != nil:
			failures++
			c.logger.Warn("polling job status failed",
				zap.Int("job_id", jobID),
				zap.Int("consecutive_failures", failures),
				zap.Error(err),
			)

			if failures >= c.MaxFailures {
				c.giveUp(jobID, failures, err)
				return
			}

		default:
			failures = 0
			if terminal := c.observe(job, onComplete); terminal {
				return
			}
		}

		if err := utils.WaitFor(ctx, c.Interval); err != nil {
			return
		}
	}
}

// observe folds a poll result into coordinator state and reports
// whether the job is terminal.
func (c *Coordinator) observe(job *matcher.Job, onComplete func(*matcher.Job) error) bool {
	c.mu.Lock()
	c.job = job
	switch job.Status {
	case matcher.JobStatusCompleted:
		c.state = StateCompleted
	case matcher.JobStatusFailed:
		c.state = StateFailed
	default:
		c.state = StateSubmitted
	}
	state := c.state
	c.mu.Unlock()

	switch state {
	case StateCompleted:
		c.logger.Info("processing job completed", zap.Int("job_id", job.ID))
		if onComplete != nil {
			if err := onComplete(job); err != nil {
				c.logger.Warn("reload after job completion failed",
					zap.Int("job_id", job.ID),
					zap.Error(err),
				)
			}
		}
		return true

	case StateFailed:
		c.logger.Warn("processing job failed",
			zap.Int("job_id", job.ID),
			zap.String("error_message", job.ErrorMessage),
		)
		return true
	}

	c.logger.Debug("processing job in progress",
		zap.Int("job_id", job.ID),
		zap.String("status", job.Status),
		zap.Int("progress", job.Progress),
	)
	return false
}

func (c *Coordinator) giveUp(jobID, failures int, lastErr error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = StateFailed
	c.job = &matcher.Job{
		ID:           jobID,
		Status:       matcher.JobStatusFailed,
		ErrorMessage: fmt.Sprintf("giving up after %d consecutive poll failures: %v", failures, lastErr),
	}
}
