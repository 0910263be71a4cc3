package bot

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolokh/redcast/pkg/bot/mocks"
	"github.com/avolokh/redcast/pkg/config"
	"github.com/avolokh/redcast/pkg/generator"
	"github.com/avolokh/redcast/pkg/reddit"
	"github.com/avolokh/redcast/pkg/repository"
)

func testPostingConfig() config.PostingConfig {
	return config.PostingConfig{
		PostSubreddit:    "test",
		CommentSubreddit: "learnmachinelearning",
		CommentLimit:     3,
		ActionDelay:      time.Millisecond,
	}
}

func remoteGenerator(text string) *mocks.GeneratorMock {
	return &mocks.GeneratorMock{
		GenerateFunc: func(_ context.Context, _ generator.Request) generator.Result {
			return generator.Result{Text: text, Origin: generator.OriginRemote}
		},
	}
}

func emptyHistory() *mocks.HistoryMock {
	return &mocks.HistoryMock{
		RecordActionFunc:  func(context.Context, *repository.Action) error { return nil },
		MarkProcessedFunc: func(context.Context, string, string) error { return nil },
		IsProcessedFunc:   func(context.Context, string) (bool, error) { return false, nil },
	}
}

func TestBot_CreatePost(t *testing.T) {
	redditMock := &mocks.RedditClientMock{
		SubmitFunc: func(_ context.Context, subreddit, title, body string) (*reddit.Post, error) {
			return &reddit.Post{Name: "t3_new", Title: title, URL: "https://reddit.com/r/test/t3_new"}, nil
		},
	}
	gen := remoteGenerator("generated post body")
	history := emptyHistory()

	b := New(redditMock, gen, history, testPostingConfig())
	b.now = func() time.Time { return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC) }

	require.NoError(t, b.CreatePost(context.Background()))

	require.Len(t, redditMock.SubmitCalls(), 1)
	call := redditMock.SubmitCalls()[0]
	assert.Equal(t, "test", call.Subreddit)
	assert.Equal(t, "AI Insights & Discussion: 2025-06-15", call.Title)
	assert.Equal(t, "generated post body", call.Body)

	require.Len(t, gen.GenerateCalls(), 1)
	assert.Equal(t, generator.KindPost, gen.GenerateCalls()[0].Req.Kind)
	assert.Contains(t, gen.GenerateCalls()[0].Req.Prompt, "post")

	require.Len(t, history.RecordActionCalls(), 1)
	recorded := history.RecordActionCalls()[0].Action
	assert.Equal(t, repository.ActionPost, recorded.Kind)
	assert.Equal(t, "t3_new", recorded.Target)
	assert.Equal(t, "remote", recorded.Origin)
}

func TestBot_CreatePost_SubmitError(t *testing.T) {
	redditMock := &mocks.RedditClientMock{
		SubmitFunc: func(context.Context, string, string, string) (*reddit.Post, error) {
			return nil, fmt.Errorf("subreddit does not exist")
		},
	}
	history := emptyHistory()

	b := New(redditMock, remoteGenerator("body"), history, testPostingConfig())

	err := b.CreatePost(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create post")
	assert.Empty(t, history.RecordActionCalls(), "failed post must not be recorded")
}

func TestBot_CreateComments(t *testing.T) {
	posts := []reddit.Post{
		{Name: "t3_saved", Title: "Already commented", Saved: true},
		{Name: "t3_local", Title: "Handled before"},
		{Name: "t3_fresh", Title: "How to learn ML"},
	}

	redditMock := &mocks.RedditClientMock{
		RecentFunc: func(_ context.Context, subreddit string, limit int) ([]reddit.Post, error) {
			assert.Equal(t, "learnmachinelearning", subreddit)
			assert.Equal(t, 3, limit)
			return posts, nil
		},
		ReplyFunc: func(context.Context, string, string) error { return nil },
		SaveFunc:  func(context.Context, string) error { return nil },
	}
	gen := remoteGenerator("a helpful comment")
	history := emptyHistory()
	history.IsProcessedFunc = func(_ context.Context, name string) (bool, error) {
		return name == "t3_local", nil
	}

	b := New(redditMock, gen, history, testPostingConfig())
	require.NoError(t, b.CreateComments(context.Background()))

	// only the fresh post gets a reply
	require.Len(t, redditMock.ReplyCalls(), 1)
	assert.Equal(t, "t3_fresh", redditMock.ReplyCalls()[0].Fullname)
	assert.Equal(t, "a helpful comment", redditMock.ReplyCalls()[0].Text)

	// context hint carries the post title
	require.Len(t, gen.GenerateCalls(), 1)
	req := gen.GenerateCalls()[0].Req
	assert.Equal(t, generator.KindComment, req.Kind)
	assert.Equal(t, "How to learn ML", req.ContextHint)
	assert.Contains(t, req.Prompt, "How to learn ML")

	// processed on both sides
	require.Len(t, redditMock.SaveCalls(), 1)
	assert.Equal(t, "t3_fresh", redditMock.SaveCalls()[0].Fullname)
	require.Len(t, history.MarkProcessedCalls(), 1)
	assert.Equal(t, "t3_fresh", history.MarkProcessedCalls()[0].Name)
}

func TestBot_CreateComments_PartialFailure(t *testing.T) {
	posts := []reddit.Post{
		{Name: "t3_one", Title: "First post"},
		{Name: "t3_two", Title: "Second post"},
		{Name: "t3_three", Title: "Third post"},
	}

	redditMock := &mocks.RedditClientMock{
		RecentFunc: func(context.Context, string, int) ([]reddit.Post, error) { return posts, nil },
		ReplyFunc: func(_ context.Context, fullname, _ string) error {
			if fullname == "t3_two" {
				return fmt.Errorf("comment rejected")
			}
			return nil
		},
		SaveFunc: func(context.Context, string) error { return nil },
	}
	history := emptyHistory()

	b := New(redditMock, remoteGenerator("comment"), history, testPostingConfig())
	require.NoError(t, b.CreateComments(context.Background()), "one failing post must not abort the run")

	// all three attempted, failing one skipped for save/record
	assert.Len(t, redditMock.ReplyCalls(), 3)
	require.Len(t, redditMock.SaveCalls(), 2)
	assert.Equal(t, "t3_one", redditMock.SaveCalls()[0].Fullname)
	assert.Equal(t, "t3_three", redditMock.SaveCalls()[1].Fullname)
	assert.Len(t, history.RecordActionCalls(), 2)
}

func TestBot_CreateComments_ListError(t *testing.T) {
	redditMock := &mocks.RedditClientMock{
		RecentFunc: func(context.Context, string, int) ([]reddit.Post, error) {
			return nil, fmt.Errorf("listing forbidden")
		},
	}

	b := New(redditMock, remoteGenerator("comment"), emptyHistory(), testPostingConfig())
	err := b.CreateComments(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list recent posts")
}

func TestBot_TestConnection(t *testing.T) {
	redditMock := &mocks.RedditClientMock{
		MeFunc: func(context.Context) (string, error) { return "bot-user", nil },
		SubmitFunc: func(_ context.Context, _, title, _ string) (*reddit.Post, error) {
			assert.Equal(t, "Test Post - Will Delete", title)
			return &reddit.Post{Name: "t3_testpost", Title: title, URL: "https://reddit.com/t3_testpost"}, nil
		},
		DeleteFunc: func(context.Context, string) error { return nil },
	}
	history := emptyHistory()

	b := New(redditMock, remoteGenerator("test message"), history, testPostingConfig())
	require.NoError(t, b.TestConnection(context.Background()))

	require.Len(t, redditMock.DeleteCalls(), 1)
	assert.Equal(t, "t3_testpost", redditMock.DeleteCalls()[0].Fullname)

	require.Len(t, history.RecordActionCalls(), 1)
	assert.Equal(t, repository.ActionTest, history.RecordActionCalls()[0].Action.Kind)
}

func TestBot_TestConnection_AuthFailure(t *testing.T) {
	redditMock := &mocks.RedditClientMock{
		MeFunc: func(context.Context) (string, error) { return "", fmt.Errorf("401 unauthorized") },
	}

	b := New(redditMock, remoteGenerator("x"), emptyHistory(), testPostingConfig())
	err := b.TestConnection(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reddit connection")
	assert.Empty(t, redditMock.SubmitCalls(), "no test post after failed auth")
}
