// Package listing owns the recipe list shown to users and derives its view state.
package listing

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mwhite7112/woodpantry-recipefetch/internal/clients"
	"github.com/mwhite7112/woodpantry-recipefetch/internal/service"
)

// Phase is the fetch lifecycle position of a Controller.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFetching
	PhaseLoaded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseFetching:
		return "fetching"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// RefreshObserver receives one observation per completed fetch.
type RefreshObserver interface {
	ObserveRefresh(outcome string, held int)
}

// Controller holds the fetched recipes and drives their fetch lifecycle.
//
// Fetches are serialized: a FetchRecipes call waits for any fetch in flight to
// finish before starting its own, so the most recently triggered fetch is the
// last to replace the list.
type Controller struct {
	fetcher  service.RecipeFetcher
	logger   zerolog.Logger
	observer RefreshObserver

	listeners []func(ViewState)
	onError   func(message string)

	// sem admits one fetch at a time.
	sem chan struct{}

	mu      sync.RWMutex
	recipes []clients.Recipe
	phase   Phase
	lastErr error
}

type Option func(*Controller)

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) { c.logger = logger.With().Str("component", "listing").Logger() }
}

func WithObserver(observer RefreshObserver) Option {
	return func(c *Controller) { c.observer = observer }
}

// WithListener registers fn to be called with the new view state after every
// phase change. Listeners run on the goroutine that called FetchRecipes.
func WithListener(fn func(ViewState)) Option {
	return func(c *Controller) { c.listeners = append(c.listeners, fn) }
}

// WithErrorHandler registers fn to receive the user-facing message of every failed fetch.
func WithErrorHandler(fn func(message string)) Option {
	return func(c *Controller) { c.onError = fn }
}

func New(fetcher service.RecipeFetcher, opts ...Option) *Controller {
	c := &Controller{
		fetcher: fetcher,
		logger:  zerolog.Nop(),
		sem:     make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchRecipes fetches the collection and replaces the held list with it.
// On failure the error is returned unchanged and the held list is kept.
func (c *Controller) FetchRecipes(ctx context.Context) error {
	select {
	case c.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-c.sem }()

	c.mu.Lock()
	c.phase = PhaseFetching
	c.mu.Unlock()
	c.notify()

	recipes, err := c.fetcher.FetchRecipes(ctx)

	c.mu.Lock()
	if err != nil {
		c.phase = PhaseFailed
		c.lastErr = err
	} else {
		c.recipes = recipes
		c.phase = PhaseLoaded
		c.lastErr = nil
	}
	held := len(c.recipes)
	c.mu.Unlock()

	if c.observer != nil {
		c.observer.ObserveRefresh(clients.ErrorKind(err), held)
	}
	if err != nil {
		c.logger.Warn().Err(err).Int("held", held).Msg("fetch recipes failed")
	} else {
		c.logger.Info().Int("count", held).Msg("fetched recipes")
	}

	c.notify()
	if err != nil && c.onError != nil {
		c.onError(clients.UserMessage(err))
	}
	return err
}

func (c *Controller) notify() {
	if len(c.listeners) == 0 {
		return
	}
	vs := c.ViewState()
	for _, fn := range c.listeners {
		fn(vs)
	}
}

func (c *Controller) NumberOfRecipes() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.recipes)
}

func (c *Controller) IsEmpty() bool {
	return c.NumberOfRecipes() == 0
}

// ItemAt returns the recipe at index. ok is false for any index outside [0, count).
func (c *Controller) ItemAt(index int) (recipe clients.Recipe, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if index < 0 || index >= len(c.recipes) {
		return clients.Recipe{}, false
	}
	return c.recipes[index], true
}

// FindByUUID returns the held recipe whose identifier equals id.
func (c *Controller) FindByUUID(id uuid.UUID) (clients.Recipe, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, r := range c.recipes {
		parsed, err := r.ParsedUUID()
		if err == nil && parsed == id {
			return r, true
		}
	}
	return clients.Recipe{}, false
}

// Recipes returns a copy of the held list.
func (c *Controller) Recipes() []clients.Recipe {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]clients.Recipe, len(c.recipes))
	copy(out, c.recipes)
	return out
}

func (c *Controller) Phase() Phase {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.phase
}

// ViewState derives the UI-facing state from the current phase and list.
func (c *Controller) ViewState() ViewState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	recipes := make([]clients.Recipe, len(c.recipes))
	copy(recipes, c.recipes)

	switch c.phase {
	case PhaseFailed:
		return ViewState{Status: StatusFailed, Recipes: recipes, Err: c.lastErr}
	case PhaseLoaded:
		if len(recipes) == 0 {
			return ViewState{Status: StatusEmpty, Recipes: recipes}
		}
		return ViewState{Status: StatusLoaded, Recipes: recipes}
	default:
		return ViewState{Status: StatusLoading, Recipes: recipes}
	}
}
