package generator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/sashabaranov/go-openai"

	"github.com/avolokh/redcast/pkg/config"
)

// Kind is the type of content to produce
type Kind string

// content kinds
const (
	KindPost    Kind = "post"
	KindComment Kind = "comment"
)

// Origin tells where the produced text came from
type Origin string

// result origins
const (
	OriginRemote   Origin = "remote"
	OriginFallback Origin = "fallback"
)

// Request describes a single generation call, constructed per call and never mutated
type Request struct {
	Prompt      string
	Kind        Kind
	ContextHint string // optional, typically a post title
}

// Result is the produced text and its origin
type Result struct {
	Text   string
	Origin Origin
}

// Client obtains generated text for a prompt, preferring the remote API and
// degrading to local templates when it is unavailable
type Client struct {
	llm      *openai.Client
	cfg      config.GenerationConfig
	fallback *Fallback
}

// NewClient creates a generation client for an OpenAI-compatible endpoint
func NewClient(cfg config.GenerationConfig) *Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	return &Client{
		llm:      openai.NewClientWithConfig(clientConfig),
		cfg:      cfg,
		fallback: NewFallback(),
	}
}

// Generate produces text for the request. It tries the remote API up to the
// configured number of attempts with a fixed delay between them and falls back
// to templated content on exhaustion. All failure paths end in a fallback
// result, never an error to the caller.
func (c *Client) Generate(ctx context.Context, req Request) Result {
	attempts := c.cfg.Retry.Attempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		text, err := c.complete(ctx, req.Prompt)
		if err == nil {
			lgr.Printf("[INFO] content generation successful on attempt %d", attempt)
			return Result{Text: text, Origin: OriginRemote}
		}

		lgr.Printf("[WARN] content generation attempt %d failed: %v", attempt, err)

		if attempt < attempts {
			select {
			case <-time.After(c.cfg.Retry.Delay):
			case <-ctx.Done():
				lgr.Printf("[WARN] generation retry interrupted: %v", ctx.Err())
				attempt = attempts // no point retrying a canceled context
			}
		}
	}

	// fallback kind is derived from the prompt text itself, not the request:
	// any prompt mentioning "post" gets post-shaped content
	kind := classifyPrompt(req.Prompt)
	lgr.Printf("[INFO] using fallback %s content after %d failed attempts", kind, attempts)
	return Result{Text: c.fallback.Content(kind, req.ContextHint), Origin: OriginFallback}
}

// complete performs a single remote call. Transport errors, empty choices and
// empty content are all attempt failures.
func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	resp, err := c.llm.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Temperature: float32(c.cfg.Temperature),
		MaxTokens:   c.cfg.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("generation request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices")
	}

	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("empty content in response")
	}

	return content, nil
}

// classifyPrompt picks the fallback kind from the prompt text
func classifyPrompt(prompt string) Kind {
	if strings.Contains(strings.ToLower(prompt), "post") {
		return KindPost
	}
	return KindComment
}
