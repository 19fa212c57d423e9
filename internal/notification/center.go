package notification

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/repository/pending"
)

// Center is the notification service contract.
type Center interface {
	// ListPending returns every pending definition in submission order.
	ListPending(ctx context.Context) ([]*domain.Definition, error)
	// Add schedules one definition.
	Add(ctx context.Context, def *domain.Definition) error
	// Remove cancels the definitions with the given identifiers. Unknown ones are ignored.
	Remove(ctx context.Context, identifiers []string) error
	// AuthorizationState returns the current permission.
	AuthorizationState(ctx context.Context) (domain.AuthorizationState, error)
	// RequestAuthorization asks the user for permission when it is undetermined.
	RequestAuthorization(ctx context.Context) (domain.AuthorizationState, error)
}

// Prompter asks the user whether notifications may be delivered.
type Prompter interface {
	Prompt(ctx context.Context) (bool, error)
}

// PromptFunc adapts a function to Prompter.
type PromptFunc func(ctx context.Context) (bool, error)

// Prompt calls f.
func (f PromptFunc) Prompt(ctx context.Context) (bool, error) {
	return f(ctx)
}

// StaticPrompter always answers granted.
func StaticPrompter(granted bool) Prompter {
	return PromptFunc(func(context.Context) (bool, error) {
		return granted, nil
	})
}

var (
	// ErrNotAuthorized is returned by Add while notifications are not authorized.
	ErrNotAuthorized = errors.New("notifications are not authorized")
	// ErrDuplicateIdentifier is returned by Add for an identifier already pending.
	ErrDuplicateIdentifier = errors.New("identifier is already pending")
	// errInvalidDefinition is returned by Add for a nil or anonymous definition.
	errInvalidDefinition = errors.New("definition must have an identifier")
)

// LocalCenter keeps pending alarms in memory and writes every change through
// the repository.
type LocalCenter struct {
	// repo persists the store document.
	repo pending.Repository
	// prompter answers authorization requests.
	prompter Prompter
	// doc is the in-memory store document.
	doc *pending.Document
	// mu guards doc.
	mu sync.Mutex
}

// NewLocalCenter loads the store from repo. A missing store starts empty and undetermined.
func NewLocalCenter(ctx context.Context, repo pending.Repository, prompter Prompter) (*LocalCenter, error) {
	if prompter == nil {
		prompter = StaticPrompter(false)
	}

	c := &LocalCenter{
		repo:     repo,
		prompter: prompter,
		doc:      new(pending.Document),
	}

	doc, err := repo.Load(ctx)
	switch {
	case err == nil:
		c.doc = doc
	case errors.Is(err, pending.ErrNotFound):
		// Keep the empty store.
	default:
		return nil, fmt.Errorf("load store: %w", err)
	}

	logger.InfoKV(ctx, "Notification store loaded",
		"pending", len(c.doc.Alarms), "authorization", c.doc.Authorization)

	return c, nil
}

// ListPending returns copies of the pending definitions.
func (c *LocalCenter) ListPending(_ context.Context) ([]*domain.Definition, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	defs := domain.CloneAll(c.doc.Alarms)
	if defs == nil {
		defs = []*domain.Definition{}
	}

	return defs, nil
}

// Add schedules def when notifications are authorized.
func (c *LocalCenter) Add(ctx context.Context, def *domain.Definition) error {
	if def == nil || def.Identifier == "" {
		return errInvalidDefinition
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.doc.Authorization != domain.AuthorizationAuthorized {
		return fmt.Errorf("%w: %s", ErrNotAuthorized, c.doc.Authorization)
	}

	if c.indexOf(def.Identifier) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateIdentifier, def.Identifier)
	}

	next := c.doc.Clone()
	next.Alarms = append(next.Alarms, def.Clone())

	if err := c.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("persist store: %w", err)
	}

	c.doc = next

	logger.DebugKV(ctx, "Alarm scheduled", "identifier", def.Identifier, "trigger", def.Trigger.String())

	return nil
}

// Remove cancels the matching definitions. Nothing is written when none match.
func (c *LocalCenter) Remove(ctx context.Context, identifiers []string) error {
	if len(identifiers) == 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.doc.Clone()
	next.Alarms = slices.DeleteFunc(next.Alarms, func(d *domain.Definition) bool {
		return slices.Contains(identifiers, d.Identifier)
	})

	removed := len(c.doc.Alarms) - len(next.Alarms)
	if removed == 0 {
		return nil
	}

	if err := c.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("persist store: %w", err)
	}

	c.doc = next

	logger.DebugKV(ctx, "Alarms removed", "removed", removed)

	return nil
}

// AuthorizationState re-reads the permission from the repository so that an
// external change is observed.
func (c *LocalCenter) AuthorizationState(ctx context.Context) (domain.AuthorizationState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	doc, err := c.repo.Load(ctx)
	switch {
	case err == nil:
		if doc.Authorization != c.doc.Authorization {
			logger.InfoKV(ctx, "Authorization changed externally",
				"from", c.doc.Authorization, "to", doc.Authorization)
		}

		c.doc.Authorization = doc.Authorization
	case errors.Is(err, pending.ErrNotFound):
		// Nothing persisted yet, the in-memory state is authoritative.
	default:
		return c.doc.Authorization, fmt.Errorf("load store: %w", err)
	}

	return c.doc.Authorization, nil
}

// RequestAuthorization prompts the user only while the permission is undetermined.
func (c *LocalCenter) RequestAuthorization(ctx context.Context) (domain.AuthorizationState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.doc.Authorization != domain.AuthorizationUndetermined {
		return c.doc.Authorization, nil
	}

	granted, err := c.prompter.Prompt(ctx)
	if err != nil {
		return c.doc.Authorization, fmt.Errorf("prompt for authorization: %w", err)
	}

	next := c.doc.Clone()

	next.Authorization = domain.AuthorizationDenied
	if granted {
		next.Authorization = domain.AuthorizationAuthorized
	}

	if err = c.repo.Save(ctx, next); err != nil {
		return c.doc.Authorization, fmt.Errorf("persist store: %w", err)
	}

	c.doc = next

	logger.InfoKV(ctx, "Authorization answered", "authorization", next.Authorization)

	return next.Authorization, nil
}

// indexOf returns the position of identifier in the store or -1. Callers hold mu.
func (c *LocalCenter) indexOf(identifier string) int {
	return slices.IndexFunc(c.doc.Alarms, func(d *domain.Definition) bool {
		return d.Identifier == identifier
	})
}
