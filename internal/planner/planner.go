// Package planner builds a user's weekly lunch view from the API and edits
// the user's selections on it.
package planner

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"lunch-planner/internal/client"
	"lunch-planner/internal/metrics"
	"lunch-planner/internal/weekly"
)

var (
	// ErrNoSelection is returned by Clear when the option's day has no selection.
	ErrNoSelection = errors.New("no selection to clear")
	// ErrNotSelectable is returned by Choose for options that cannot be picked on their own.
	ErrNotSelectable = errors.New("option is not selectable")
)

// Planner handles fetching weekly views and saving choices.
type Planner struct {
	client client.Client
	weeks  int
	now    func() time.Time
}

// NewPlanner creates a new Planner. weeks is how many ISO weeks Upcoming covers.
func NewPlanner(c client.Client, weeks int) *Planner {
	if weeks < 1 {
		weeks = 1
	}
	return &Planner{client: c, weeks: weeks, now: time.Now}
}

// Week fetches the menu between from and to and the user's selections
// concurrently, then builds the weekly view. If either fetch fails or ctx
// is cancelled no view is returned.
func (p *Planner) Week(ctx context.Context, userID string, from, to weekly.Date) (*weekly.View, error) {
	var (
		rawOptions    []weekly.RawOption
		rawSelections []weekly.RawSelection
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rawOptions, err = p.client.FetchLunches(gctx, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		rawSelections, err = p.client.FetchSelections(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	view := weekly.BuildWeeklyView(rawOptions, rawSelections)
	metrics.ObserveView(view.Diagnostics)
	for _, w := range view.Diagnostics.Warnings {
		log.Printf("Warning: weekly view for user %s: %v", userID, w)
	}
	return &view, nil
}

// Upcoming is Week over the planner's configured number of weeks, starting
// with the current one.
func (p *Planner) Upcoming(ctx context.Context, userID string) (*weekly.View, error) {
	from, to := Range(p.now(), p.weeks)
	return p.Week(ctx, userID, from, to)
}

// Choose saves option as the user's choice for its day and returns the
// selection id. A day that already has a selection is updated in place
// instead of getting a second one.
func (p *Planner) Choose(ctx context.Context, userID string, option weekly.Option) (string, error) {
	if !option.IsSelectable {
		return "", fmt.Errorf("%s: %w", option.ID, ErrNotSelectable)
	}
	if option.IsSelected {
		return option.SelectionRef, nil
	}
	if option.SelectionRef == "" {
		id, err := p.client.CreateSelection(ctx, userID, option.ID)
		if err != nil {
			return "", err
		}
		return id, nil
	}
	if err := p.client.UpdateSelection(ctx, userID, option.SelectionRef, option.ID); err != nil {
		return "", err
	}
	return option.SelectionRef, nil
}

// Clear deletes the selection covering option's day.
func (p *Planner) Clear(ctx context.Context, userID string, option weekly.Option) error {
	if option.SelectionRef == "" {
		return fmt.Errorf("%s: %w", option.ID, ErrNoSelection)
	}
	return p.client.DeleteSelection(ctx, userID, option.SelectionRef)
}
