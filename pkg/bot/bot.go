package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"

	"github.com/avolokh/redcast/pkg/config"
	"github.com/avolokh/redcast/pkg/generator"
	"github.com/avolokh/redcast/pkg/reddit"
	"github.com/avolokh/redcast/pkg/repository"
)

//go:generate moq -out mocks/reddit.go -pkg mocks -skip-ensure -fmt goimports . RedditClient
//go:generate moq -out mocks/generator.go -pkg mocks -skip-ensure -fmt goimports . Generator
//go:generate moq -out mocks/history.go -pkg mocks -skip-ensure -fmt goimports . History

// prompts sent to the generation API
const (
	postPrompt        = "Write an engaging Reddit post about machine learning or AI technology."
	commentPromptTmpl = "Write a helpful comment for this title: %s"
	testPrompt        = "Write a short test message."
)

// RedditClient is the platform collaborator used by the orchestrator
type RedditClient interface {
	Me(ctx context.Context) (string, error)
	Submit(ctx context.Context, subreddit, title, body string) (*reddit.Post, error)
	Recent(ctx context.Context, subreddit string, limit int) ([]reddit.Post, error)
	Reply(ctx context.Context, fullname, text string) error
	Save(ctx context.Context, fullname string) error
	Delete(ctx context.Context, fullname string) error
}

// Generator produces content for posts and comments
type Generator interface {
	Generate(ctx context.Context, req generator.Request) generator.Result
}

// History records publish actions locally
type History interface {
	RecordAction(ctx context.Context, action *repository.Action) error
	MarkProcessed(ctx context.Context, name, subreddit string) error
	IsProcessed(ctx context.Context, name string) (bool, error)
}

// Bot orchestrates content generation and publishing
type Bot struct {
	reddit  RedditClient
	gen     Generator
	history History
	cfg     config.PostingConfig
	now     func() time.Time
}

// New creates a publishing orchestrator
func New(redditClient RedditClient, gen Generator, history History, cfg config.PostingConfig) *Bot {
	return &Bot{
		reddit:  redditClient,
		gen:     gen,
		history: history,
		cfg:     cfg,
		now:     time.Now,
	}
}

// CreatePost generates and submits the daily post
func (b *Bot) CreatePost(ctx context.Context) error {
	res := b.gen.Generate(ctx, generator.Request{Prompt: postPrompt, Kind: generator.KindPost})
	title := fmt.Sprintf("AI Insights & Discussion: %s", b.now().Format("2006-01-02"))

	post, err := b.reddit.Submit(ctx, b.cfg.PostSubreddit, title, res.Text)
	if err != nil {
		lgr.Printf("[ERROR] failed to create post: %v", err)
		printFail("failed to create post: %v", err)
		return fmt.Errorf("create post: %w", err)
	}

	lgr.Printf("[INFO] successfully posted to r/%s: %s", b.cfg.PostSubreddit, post.URL)
	printOK("created new post: %s", post.URL)

	b.record(ctx, &repository.Action{
		Kind:      repository.ActionPost,
		Subreddit: b.cfg.PostSubreddit,
		Target:    post.Name,
		Detail:    title,
		Origin:    string(res.Origin),
	})
	return nil
}

// CreateComments replies to recent posts in the comment subreddit. A failure
// on one post never aborts the remaining candidates.
func (b *Bot) CreateComments(ctx context.Context) error {
	posts, err := b.reddit.Recent(ctx, b.cfg.CommentSubreddit, b.cfg.CommentLimit)
	if err != nil {
		lgr.Printf("[ERROR] failed to create comments: %v", err)
		printFail("failed to create comments: %v", err)
		return fmt.Errorf("list recent posts: %w", err)
	}

	for _, post := range posts {
		if post.Saved {
			continue
		}
		if done, err := b.history.IsProcessed(ctx, post.Name); err != nil {
			lgr.Printf("[WARN] failed to check history for %s: %v", post.Name, err)
		} else if done {
			continue
		}

		res := b.gen.Generate(ctx, generator.Request{
			Prompt:      fmt.Sprintf(commentPromptTmpl, post.Title),
			Kind:        generator.KindComment,
			ContextHint: post.Title,
		})

		if err := b.reddit.Reply(ctx, post.Name, res.Text); err != nil {
			lgr.Printf("[ERROR] failed to comment on %q: %v", post.Title, err)
			printFail("failed to comment on: %s", post.Title)
			continue
		}

		if err := b.reddit.Save(ctx, post.Name); err != nil {
			lgr.Printf("[WARN] failed to mark %s processed on reddit: %v", post.Name, err)
		}
		if err := b.history.MarkProcessed(ctx, post.Name, b.cfg.CommentSubreddit); err != nil {
			lgr.Printf("[WARN] failed to mark %s processed locally: %v", post.Name, err)
		}

		lgr.Printf("[INFO] commented on post: %s", post.Title)
		printOK("created new comment on: %s", post.Title)

		b.record(ctx, &repository.Action{
			Kind:      repository.ActionComment,
			Subreddit: b.cfg.CommentSubreddit,
			Target:    post.Name,
			Detail:    post.Title,
			Origin:    string(res.Origin),
		})

		// fixed pacing between publish actions
		select {
		case <-time.After(b.cfg.ActionDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return nil
}

// TestConnection verifies reddit identity, the generation path and posting
// permissions by submitting and deleting a throwaway post
func (b *Bot) TestConnection(ctx context.Context) error {
	username, err := b.reddit.Me(ctx)
	if err != nil {
		lgr.Printf("[ERROR] connection test failed: %v", err)
		printFail("test failed: %v", err)
		return fmt.Errorf("reddit connection: %w", err)
	}
	printOK("reddit connection successful (logged in as %s)", username)
	lgr.Printf("[INFO] reddit connection test passed - user: %s", username)

	res := b.gen.Generate(ctx, generator.Request{Prompt: testPrompt, Kind: generator.KindComment})
	if res.Origin == generator.OriginRemote {
		printOK("content generation successful")
		lgr.Printf("[INFO] generation connection test passed")
	} else {
		lgr.Printf("[WARN] generation test fell back to templates")
	}

	post, err := b.reddit.Submit(ctx, b.cfg.PostSubreddit,
		"Test Post - Will Delete", "This is a test post to verify bot permissions.")
	if err != nil {
		lgr.Printf("[ERROR] post permission test failed: %v", err)
		printFail("test failed: %v", err)
		return fmt.Errorf("posting test: %w", err)
	}
	printOK("posting test successful: %s", post.URL)
	lgr.Printf("[INFO] post permission test passed - URL: %s", post.URL)

	if err := b.reddit.Delete(ctx, post.Name); err != nil {
		lgr.Printf("[WARN] failed to delete test post %s: %v", post.Name, err)
	} else {
		printOK("test post deleted successfully")
	}

	b.record(ctx, &repository.Action{
		Kind:      repository.ActionTest,
		Subreddit: b.cfg.PostSubreddit,
		Target:    post.Name,
		Detail:    "connection test",
	})
	return nil
}

// record appends to local history, failures are logged and ignored
func (b *Bot) record(ctx context.Context, action *repository.Action) {
	if b.history == nil {
		return
	}
	if err := b.history.RecordAction(ctx, action); err != nil {
		lgr.Printf("[WARN] failed to record action: %v", err)
	}
}

// console feedback markers, full detail goes to the log
func printOK(format string, args ...interface{}) {
	color.New(color.FgGreen).Printf("✓ "+format+"\n", args...)
}

func printFail(format string, args ...interface{}) {
	color.New(color.FgRed).Printf("✕ "+format+"\n", args...)
}
