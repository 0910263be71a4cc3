package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/avolokh/redcast/pkg/config"
)

// default Reddit endpoints, overridable for tests
const (
	defaultTokenURL = "https://www.reddit.com/api/v1/access_token" //nolint:gosec // not a credential
	defaultAPIURL   = "https://oauth.reddit.com"
)

// Post is a submission as seen by the bot
type Post struct {
	Name  string // fullname, e.g. t3_abc123
	Title string
	URL   string
	Saved bool
}

// Client talks to the Reddit API using a script-app password grant.
// The access token is cached and refreshed shortly before it expires.
type Client struct {
	cfg        config.RedditConfig
	httpClient *http.Client
	tokenURL   string
	apiURL     string

	mu       sync.Mutex
	token    string
	tokenExp time.Time
}

// New creates a Reddit client, no network calls are made until the first request
func New(cfg config.RedditConfig) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		tokenURL:   defaultTokenURL,
		apiURL:     defaultAPIURL,
	}
}

// Me returns the authenticated account name, verifying credentials work
func (c *Client) Me(ctx context.Context) (string, error) {
	var resp struct {
		Name string `json:"name"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/me", nil, &resp); err != nil {
		return "", fmt.Errorf("get identity: %w", err)
	}
	return resp.Name, nil
}

// Submit creates a self post and returns its handle
func (c *Client) Submit(ctx context.Context, subreddit, title, body string) (*Post, error) {
	form := url.Values{
		"api_type": {"json"},
		"kind":     {"self"},
		"sr":       {subreddit},
		"title":    {title},
		"text":     {body},
	}

	var resp struct {
		JSON struct {
			Errors [][]string `json:"errors"`
			Data   struct {
				Name string `json:"name"`
				URL  string `json:"url"`
			} `json:"data"`
		} `json:"json"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/submit", form, &resp); err != nil {
		return nil, fmt.Errorf("submit to r/%s: %w", subreddit, err)
	}
	if len(resp.JSON.Errors) > 0 {
		return nil, fmt.Errorf("submit to r/%s rejected: %v", subreddit, resp.JSON.Errors[0])
	}

	lgr.Printf("[DEBUG] submitted %s to r/%s", resp.JSON.Data.Name, subreddit)
	return &Post{Name: resp.JSON.Data.Name, Title: title, URL: resp.JSON.Data.URL}, nil
}

// Recent returns the newest posts of a subreddit, newest first
func (c *Client) Recent(ctx context.Context, subreddit string, limit int) ([]Post, error) {
	path := fmt.Sprintf("/r/%s/new?limit=%s", url.PathEscape(subreddit), strconv.Itoa(limit))

	var resp struct {
		Data struct {
			Children []struct {
				Data struct {
					Name  string `json:"name"`
					Title string `json:"title"`
					URL   string `json:"url"`
					Saved bool   `json:"saved"`
				} `json:"data"`
			} `json:"children"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("list r/%s: %w", subreddit, err)
	}

	posts := make([]Post, 0, len(resp.Data.Children))
	for _, child := range resp.Data.Children {
		posts = append(posts, Post{
			Name:  child.Data.Name,
			Title: child.Data.Title,
			URL:   child.Data.URL,
			Saved: child.Data.Saved,
		})
	}
	return posts, nil
}

// Reply creates a comment under the given fullname
func (c *Client) Reply(ctx context.Context, fullname, text string) error {
	form := url.Values{
		"api_type": {"json"},
		"thing_id": {fullname},
		"text":     {text},
	}

	var resp struct {
		JSON struct {
			Errors [][]string `json:"errors"`
		} `json:"json"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/comment", form, &resp); err != nil {
		return fmt.Errorf("reply to %s: %w", fullname, err)
	}
	if len(resp.JSON.Errors) > 0 {
		return fmt.Errorf("reply to %s rejected: %v", fullname, resp.JSON.Errors[0])
	}
	return nil
}

// Save marks a post as processed on the platform side
func (c *Client) Save(ctx context.Context, fullname string) error {
	form := url.Values{"id": {fullname}}
	if err := c.do(ctx, http.MethodPost, "/api/save", form, nil); err != nil {
		return fmt.Errorf("save %s: %w", fullname, err)
	}
	return nil
}

// Delete removes own submission, used to clean up the connection-test post
func (c *Client) Delete(ctx context.Context, fullname string) error {
	form := url.Values{"id": {fullname}}
	if err := c.do(ctx, http.MethodPost, "/api/del", form, nil); err != nil {
		return fmt.Errorf("delete %s: %w", fullname, err)
	}
	return nil
}

// do performs an authenticated API call and decodes the JSON response into out
func (c *Client) do(ctx context.Context, method, path string, form url.Values, out interface{}) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("request %s: unexpected status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s: %w", path, err)
	}
	return nil
}

// accessToken returns a cached token or fetches a fresh one with the password grant
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// refresh a minute early to avoid racing the expiry
	if c.token != "" && time.Until(c.tokenExp) > time.Minute {
		return c.token, nil
	}

	form := url.Values{
		"grant_type": {"password"},
		"username":   {c.cfg.Username},
		"password":   {c.cfg.Password},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	req.SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret)
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("token request: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
		Error       string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if tokenResp.Error != "" {
		return "", fmt.Errorf("token request rejected: %s", tokenResp.Error)
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("token response has no access token")
	}

	c.token = tokenResp.AccessToken
	c.tokenExp = time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)
	lgr.Printf("[DEBUG] reddit access token refreshed, expires in %ds", tokenResp.ExpiresIn)
	return c.token, nil
}
