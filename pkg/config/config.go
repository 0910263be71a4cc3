package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP status server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Status server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:redcast.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Local action history database"`

	Reddit RedditConfig `yaml:"reddit" json:"reddit" jsonschema:"description=Reddit API credentials"`

	Generation GenerationConfig `yaml:"generation" json:"generation" jsonschema:"description=Content generation configuration"`

	Schedule ScheduleConfig `yaml:"schedule" json:"schedule" jsonschema:"description=Daily job schedule"`

	Posting PostingConfig `yaml:"posting" json:"posting" jsonschema:"description=Posting and commenting targets"`
}

// RedditConfig holds Reddit API credentials for a script-type app
type RedditConfig struct {
	ClientID     string        `yaml:"client_id" json:"client_id" jsonschema:"required,description=Reddit app client id"`
	ClientSecret string        `yaml:"client_secret" json:"client_secret" jsonschema:"required,description=Reddit app client secret"`
	Username     string        `yaml:"username" json:"username" jsonschema:"required,description=Reddit account username"`
	Password     string        `yaml:"password" json:"password" jsonschema:"required,description=Reddit account password"`
	UserAgent    string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=redcast/1.0,description=User agent sent with every request"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
}

// RetryConfig bounds the generation retry loop
type RetryConfig struct {
	Attempts int           `yaml:"attempts" json:"attempts" jsonschema:"default=3,minimum=1,description=Maximum remote generation attempts"`
	Delay    time.Duration `yaml:"delay" json:"delay" jsonschema:"default=5s,description=Delay between attempts"`
}

// GenerationConfig holds settings for the remote generation API
type GenerationConfig struct {
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"required,description=OpenAI-compatible API endpoint"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model       string        `yaml:"model" json:"model" jsonschema:"required,description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.7,description=Temperature for response generation"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=150,description=Maximum tokens in response"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	Retry       RetryConfig   `yaml:"retry" json:"retry" jsonschema:"description=Retry policy for remote generation"`
}

// ScheduleConfig holds daily job times and loop intervals
type ScheduleConfig struct {
	PostTime          string        `yaml:"post_time" json:"post_time" jsonschema:"default=10:00,description=Daily post time (HH:MM local)"`
	CommentTime       string        `yaml:"comment_time" json:"comment_time" jsonschema:"default=12:00,description=Daily comment time (HH:MM local)"`
	PollInterval      time.Duration `yaml:"poll_interval" json:"poll_interval" jsonschema:"default=60s,description=Scheduler polling interval"`
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval" json:"heartbeat_interval" jsonschema:"default=5m,description=Heartbeat log interval"`
}

// PostingConfig holds target subreddits and pacing
type PostingConfig struct {
	PostSubreddit    string        `yaml:"post_subreddit" json:"post_subreddit" jsonschema:"default=test,description=Subreddit for scheduled posts"`
	CommentSubreddit string        `yaml:"comment_subreddit" json:"comment_subreddit" jsonschema:"default=learnmachinelearning,description=Subreddit for scheduled comments"`
	CommentLimit     int           `yaml:"comment_limit" json:"comment_limit" jsonschema:"default=3,description=Recent posts considered per comment run"`
	ActionDelay      time.Duration `yaml:"action_delay" json:"action_delay" jsonschema:"default=5s,description=Fixed delay between publish actions"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:redcast.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for reddit
	if cfg.Reddit.UserAgent == "" {
		cfg.Reddit.UserAgent = "redcast/1.0"
	}
	if cfg.Reddit.Timeout == 0 {
		cfg.Reddit.Timeout = 30 * time.Second
	}

	// set defaults for generation
	if cfg.Generation.Temperature == 0 {
		cfg.Generation.Temperature = 0.7
	}
	if cfg.Generation.MaxTokens == 0 {
		cfg.Generation.MaxTokens = 150
	}
	if cfg.Generation.Timeout == 0 {
		cfg.Generation.Timeout = 30 * time.Second
	}
	if cfg.Generation.Retry.Attempts == 0 {
		cfg.Generation.Retry.Attempts = 3
	}
	if cfg.Generation.Retry.Delay == 0 {
		cfg.Generation.Retry.Delay = 5 * time.Second
	}

	// set defaults for schedule
	if cfg.Schedule.PostTime == "" {
		cfg.Schedule.PostTime = "10:00"
	}
	if cfg.Schedule.CommentTime == "" {
		cfg.Schedule.CommentTime = "12:00"
	}
	if cfg.Schedule.PollInterval == 0 {
		cfg.Schedule.PollInterval = 60 * time.Second
	}
	if cfg.Schedule.HeartbeatInterval == 0 {
		cfg.Schedule.HeartbeatInterval = 5 * time.Minute
	}

	// set defaults for posting
	if cfg.Posting.PostSubreddit == "" {
		cfg.Posting.PostSubreddit = "test"
	}
	if cfg.Posting.CommentSubreddit == "" {
		cfg.Posting.CommentSubreddit = "learnmachinelearning"
	}
	if cfg.Posting.CommentLimit == 0 {
		cfg.Posting.CommentLimit = 3
	}
	if cfg.Posting.ActionDelay == 0 {
		cfg.Posting.ActionDelay = 5 * time.Second
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {

	// validate reddit config
	if cfg.Reddit.ClientID == "" {
		return fmt.Errorf("reddit.client_id is required")
	}
	if cfg.Reddit.ClientSecret == "" {
		return fmt.Errorf("reddit.client_secret is required")
	}
	if cfg.Reddit.Username == "" {
		return fmt.Errorf("reddit.username is required")
	}
	if cfg.Reddit.Password == "" {
		return fmt.Errorf("reddit.password is required")
	}

	// validate generation config
	if cfg.Generation.Endpoint == "" {
		return fmt.Errorf("generation.endpoint is required")
	}
	if cfg.Generation.Model == "" {
		return fmt.Errorf("generation.model is required")
	}
	if cfg.Generation.Temperature < 0 || cfg.Generation.Temperature > 2 {
		return fmt.Errorf("generation.temperature must be between 0 and 2")
	}
	if cfg.Generation.Retry.Attempts < 1 {
		return fmt.Errorf("generation.retry.attempts must be at least 1")
	}

	// validate schedule config
	if _, err := time.Parse("15:04", cfg.Schedule.PostTime); err != nil {
		return fmt.Errorf("schedule.post_time must be HH:MM: %w", err)
	}
	if _, err := time.Parse("15:04", cfg.Schedule.CommentTime); err != nil {
		return fmt.Errorf("schedule.comment_time must be HH:MM: %w", err)
	}
	if cfg.Schedule.PollInterval < time.Second {
		return fmt.Errorf("schedule.poll_interval must be at least 1 second")
	}

	// validate posting config
	if cfg.Posting.CommentLimit < 1 {
		return fmt.Errorf("posting.comment_limit must be at least 1")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetGenerationConfig returns generation configuration
func (c *Config) GetGenerationConfig() GenerationConfig {
	return c.Generation
}

// GetPostingConfig returns posting configuration
func (c *Config) GetPostingConfig() PostingConfig {
	return c.Posting
}

// GetScheduleConfig returns schedule configuration
func (c *Config) GetScheduleConfig() ScheduleConfig {
	return c.Schedule
}
