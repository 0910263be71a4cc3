package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
)

// action kinds recorded in history
const (
	ActionPost    = "post"
	ActionComment = "comment"
	ActionTest    = "test"
)

// Action is a single publish action recorded in local history
type Action struct {
	ID        int64     `db:"id" json:"id"`
	Kind      string    `db:"kind" json:"kind"`
	Subreddit string    `db:"subreddit" json:"subreddit"`
	Target    string    `db:"target" json:"target"` // post fullname or URL
	Detail    string    `db:"detail" json:"detail"`
	Origin    string    `db:"origin" json:"origin"` // remote or fallback
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ActionRepository handles the local action history
type ActionRepository struct {
	db *sqlx.DB
}

// NewActionRepository creates a new action repository
func NewActionRepository(database *sqlx.DB) *ActionRepository {
	return &ActionRepository{db: database}
}

// RecordAction appends an action to the history
func (r *ActionRepository) RecordAction(ctx context.Context, action *Action) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO actions (kind, subreddit, target, detail, origin)
			VALUES (:kind, :subreddit, :target, :detail, :origin)
		`
		result, err := r.db.NamedExecContext(ctx, query, action)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("record action: %w", err)}
		}

		if id, err := result.LastInsertId(); err == nil {
			action.ID = id
		}
		return nil
	})
}

// MarkProcessed remembers that the bot already handled a post
func (r *ActionRepository) MarkProcessed(ctx context.Context, name, subreddit string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `INSERT OR IGNORE INTO processed_posts (name, subreddit) VALUES (?, ?)`
		_, err := r.db.ExecContext(ctx, query, name, subreddit)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("mark processed: %w", err)}
		}
		return nil
	})
}

// IsProcessed checks whether a post was already handled
func (r *ActionRepository) IsProcessed(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM processed_posts WHERE name = ?)", name)
	if err != nil {
		return false, fmt.Errorf("check processed: %w", err)
	}
	return exists, nil
}

// RecentActions returns the newest actions, newest first
func (r *ActionRepository) RecentActions(ctx context.Context, limit int) ([]Action, error) {
	var actions []Action
	err := r.db.SelectContext(ctx, &actions,
		"SELECT * FROM actions ORDER BY created_at DESC, id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("get recent actions: %w", err)
	}
	return actions, nil
}
