package scheduler

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolokh/redcast/pkg/scheduler/mocks"
)

func okPublisher() *mocks.PublisherMock {
	return &mocks.PublisherMock{
		CreatePostFunc:     func(context.Context) error { return nil },
		CreateCommentsFunc: func(context.Context) error { return nil },
	}
}

func testScheduler(t *testing.T, pub Publisher) *Scheduler {
	t.Helper()
	s, err := New(Params{
		Publisher:         pub,
		PostTime:          "10:00",
		CommentTime:       "12:00",
		PollInterval:      time.Minute,
		HeartbeatInterval: 5 * time.Minute,
	})
	require.NoError(t, err)
	return s
}

func TestNew_InvalidTime(t *testing.T) {
	_, err := New(Params{Publisher: okPublisher(), PostTime: "25:99", CommentTime: "12:00"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "25:99")

	_, err = New(Params{Publisher: okPublisher(), PostTime: "10:00", CommentTime: "noon"})
	require.Error(t, err)
}

func TestNew_Defaults(t *testing.T) {
	s, err := New(Params{Publisher: okPublisher(), PostTime: "10:00", CommentTime: "12:00"})
	require.NoError(t, err)
	assert.Equal(t, 60*time.Second, s.pollInterval)
	assert.Equal(t, 5*time.Minute, s.heartbeatInterval)
}

func TestScheduler_TickFiresAtScheduledTime(t *testing.T) {
	pub := okPublisher()
	s := testScheduler(t, pub)

	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	s.lastTick = day.Add(9*time.Hour + 59*time.Minute)
	s.lastHeartbeat = s.lastTick

	// 10:00 crossed between ticks
	s.tick(context.Background(), day.Add(10*time.Hour))
	assert.Len(t, pub.CreatePostCalls(), 1)
	assert.Empty(t, pub.CreateCommentsCalls(), "comment time not reached yet")

	// next tick same day, no second firing
	s.tick(context.Background(), day.Add(10*time.Hour+time.Minute))
	assert.Len(t, pub.CreatePostCalls(), 1)

	// comment time crossed later
	s.lastTick = day.Add(11*time.Hour + 59*time.Minute)
	s.tick(context.Background(), day.Add(12*time.Hour))
	assert.Len(t, pub.CreateCommentsCalls(), 1)
}

func TestScheduler_TickFiresNextDay(t *testing.T) {
	pub := okPublisher()
	s := testScheduler(t, pub)

	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	s.lastTick = day.Add(10 * time.Hour)
	s.lastHeartbeat = s.lastTick
	s.tick(context.Background(), day.Add(10*time.Hour+time.Minute))
	assert.Empty(t, pub.CreatePostCalls(), "today's occurrence already behind lastTick")

	// crossing 10:00 the following day fires again
	s.lastTick = day.Add(24*time.Hour + 9*time.Hour + 59*time.Minute)
	s.tick(context.Background(), day.Add(24*time.Hour+10*time.Hour))
	assert.Len(t, pub.CreatePostCalls(), 1)
}

func TestScheduler_NoBackfillBeforeStart(t *testing.T) {
	pub := okPublisher()
	s := testScheduler(t, pub)

	// started at 11:00, the 10:00 slot is in the past and must not fire
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	s.lastTick = day.Add(11 * time.Hour)
	s.lastHeartbeat = s.lastTick

	s.tick(context.Background(), day.Add(11*time.Hour+time.Minute))
	assert.Empty(t, pub.CreatePostCalls())
}

func TestScheduler_JobErrorDoesNotStopLoop(t *testing.T) {
	pub := &mocks.PublisherMock{
		CreatePostFunc:     func(context.Context) error { return fmt.Errorf("boom") },
		CreateCommentsFunc: func(context.Context) error { return nil },
	}
	s := testScheduler(t, pub)

	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	s.lastTick = day.Add(9 * time.Hour)
	s.lastHeartbeat = s.lastTick

	// both 10:00 and 12:00 crossed, post fails but comments still run
	s.tick(context.Background(), day.Add(13*time.Hour))
	assert.Len(t, pub.CreatePostCalls(), 1)
	assert.Len(t, pub.CreateCommentsCalls(), 1)
}

func TestScheduler_StartRunsJobsOnce(t *testing.T) {
	pub := okPublisher()

	s, err := New(Params{
		Publisher:         pub,
		PostTime:          "10:00",
		CommentTime:       "12:00",
		PollInterval:      time.Hour, // no tick during the test
		HeartbeatInterval: time.Hour,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.Start(ctx)
	s.Stop()

	assert.Len(t, pub.CreatePostCalls(), 1, "initial run on startup")
	assert.Len(t, pub.CreateCommentsCalls(), 1)
}

func TestScheduler_Heartbeat(t *testing.T) {
	pub := okPublisher()
	s := testScheduler(t, pub)

	start := time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)
	s.lastTick = start
	s.lastHeartbeat = start

	s.tick(context.Background(), start.Add(time.Minute))
	assert.Equal(t, start, s.lastHeartbeat, "too early for heartbeat")

	s.tick(context.Background(), start.Add(6*time.Minute))
	assert.Equal(t, start.Add(6*time.Minute), s.lastHeartbeat)
}
