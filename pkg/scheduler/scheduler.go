package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
)

//go:generate moq -out mocks/publisher.go -pkg mocks -skip-ensure -fmt goimports . Publisher

// Publisher is the set of jobs the scheduler drives
type Publisher interface {
	CreatePost(ctx context.Context) error
	CreateComments(ctx context.Context) error
}

// Params holds scheduler configuration
type Params struct {
	Publisher         Publisher
	PostTime          string // HH:MM, local clock
	CommentTime       string // HH:MM, local clock
	PollInterval      time.Duration
	HeartbeatInterval time.Duration
}

// Scheduler fires the post and comment jobs once a day at configured times.
// Jobs run sequentially in a single goroutine, one at a time.
type Scheduler struct {
	publisher         Publisher
	postAt            timeOfDay
	commentAt         timeOfDay
	pollInterval      time.Duration
	heartbeatInterval time.Duration
	now               func() time.Time

	wg     sync.WaitGroup
	cancel context.CancelFunc

	lastTick      time.Time
	lastHeartbeat time.Time
}

// timeOfDay is a wall-clock time without a date
type timeOfDay struct {
	hour, minute int
}

// on returns the occurrence of t on the given day
func (t timeOfDay) on(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.hour, t.minute, 0, 0, day.Location())
}

func parseTimeOfDay(s string) (timeOfDay, error) {
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return timeOfDay{}, fmt.Errorf("parse time of day %q: %w", s, err)
	}
	return timeOfDay{hour: parsed.Hour(), minute: parsed.Minute()}, nil
}

// New creates a scheduler, validating the configured times
func New(params Params) (*Scheduler, error) {
	postAt, err := parseTimeOfDay(params.PostTime)
	if err != nil {
		return nil, err
	}
	commentAt, err := parseTimeOfDay(params.CommentTime)
	if err != nil {
		return nil, err
	}

	if params.PollInterval == 0 {
		params.PollInterval = 60 * time.Second
	}
	if params.HeartbeatInterval == 0 {
		params.HeartbeatInterval = 5 * time.Minute
	}

	return &Scheduler{
		publisher:         params.Publisher,
		postAt:            postAt,
		commentAt:         commentAt,
		pollInterval:      params.PollInterval,
		heartbeatInterval: params.HeartbeatInterval,
		now:               time.Now,
	}, nil
}

// Start runs both jobs once immediately, then begins the polling loop
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	lgr.Printf("[INFO] scheduler started, posts daily at %02d:%02d, comments daily at %02d:%02d",
		s.postAt.hour, s.postAt.minute, s.commentAt.hour, s.commentAt.minute)

	// run once on startup
	s.runJob(ctx, "post", s.publisher.CreatePost)
	s.runJob(ctx, "comments", s.publisher.CreateComments)

	s.lastTick = s.now()
	s.lastHeartbeat = s.now()

	s.wg.Add(1)
	go s.loop(ctx)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// loop polls the clock and fires jobs whose scheduled time was crossed
func (s *Scheduler) loop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx, s.now())
		}
	}
}

// tick fires due jobs and emits the periodic heartbeat. A scheduled time is
// due when it falls in the (lastTick, now] window, so a job fires at most once
// per day and missed times before startup are not backfilled.
func (s *Scheduler) tick(ctx context.Context, now time.Time) {
	if s.due(s.postAt, now) {
		s.runJob(ctx, "post", s.publisher.CreatePost)
	}
	if s.due(s.commentAt, now) {
		s.runJob(ctx, "comments", s.publisher.CreateComments)
	}

	if now.Sub(s.lastHeartbeat) >= s.heartbeatInterval {
		lgr.Printf("[INFO] bot is running normally, waiting for next scheduled task")
		s.lastHeartbeat = now
	}

	s.lastTick = now
}

// due reports whether the time of day was crossed since the last tick
func (s *Scheduler) due(at timeOfDay, now time.Time) bool {
	scheduled := at.on(now)
	if scheduled.After(now) {
		// today's occurrence not reached yet, check yesterday's in case the
		// window spans midnight
		scheduled = at.on(now.AddDate(0, 0, -1))
	}
	return scheduled.After(s.lastTick) && !scheduled.After(now)
}

// runJob executes a job, errors are logged and the loop continues
func (s *Scheduler) runJob(ctx context.Context, name string, job func(context.Context) error) {
	lgr.Printf("[INFO] running %s job", name)
	if err := job(ctx); err != nil {
		lgr.Printf("[ERROR] %s job failed: %v", name, err)
	}
}
