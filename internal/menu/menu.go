// Package menu stores the dated lunch offering: which meal is served on which day.
package menu

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"lunch-planner/internal/database"
	"lunch-planner/internal/meal"
	menudb "lunch-planner/internal/menu/menudb"
	"lunch-planner/internal/shared"
	"lunch-planner/internal/weekly"
)

// Open-ended range bounds, compared as 2006-01-02 text.
const (
	minDate = "0000-01-01"
	maxDate = "9999-12-31"
)

// Lunch is one meal offered on one day.
type Lunch struct {
	ID     string      `json:"id"`
	Date   weekly.Date `json:"date"`
	MealID string      `json:"mealId"`
	Meal   *meal.Meal  `json:"meal,omitempty"`
}

// Validate checks the fields a lunch cannot be stored without.
func (l *Lunch) Validate() error {
	l.MealID = strings.TrimSpace(l.MealID)
	switch {
	case l.Date.IsZero():
		return shared.Invalidf("date is required")
	case l.MealID == "":
		return shared.Invalidf("mealId is required")
	}
	return nil
}

// Raw returns the lunch in the nested shape the lunches endpoint serves.
func (l Lunch) Raw() weekly.RawOption {
	raw := weekly.RawOption{ID: l.ID, Date: l.Date.String()}
	if l.Meal != nil {
		raw.Meal = &weekly.RawMeal{ID: l.Meal.ID, Name: l.Meal.Name}
		if l.Meal.Type != nil {
			raw.Meal.Type = &weekly.RawMealType{
				ID:           l.Meal.Type.ID,
				Description:  l.Meal.Type.Description,
				IsSelectable: l.Meal.Type.IsSelectable,
			}
		}
	}
	return raw
}

// Repository is a database-backed repository for lunches.
type Repository struct {
	queries *menudb.Queries
	db      *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: menudb.New(d),
		db:      d,
	}
}

// List returns the lunches between from and to inclusive, with their meal
// and meal type. A zero bound leaves that side of the range open.
func (r *Repository) List(ctx context.Context, from, to weekly.Date) ([]Lunch, error) {
	params := menudb.ListLunchesParams{FromDate: minDate, ToDate: maxDate}
	if !from.IsZero() {
		params.FromDate = from.String()
	}
	if !to.IsZero() {
		params.ToDate = to.String()
	}

	rows, err := r.queries.ListLunches(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list lunches: %w", err)
	}

	lunches := make([]Lunch, 0, len(rows))
	for _, row := range rows {
		l, err := fromRow(menudb.GetLunchRow(row))
		if err != nil {
			return nil, err
		}
		lunches = append(lunches, l)
	}
	return lunches, nil
}

// ListRaw is List in the nested shape the weekly view is built from.
func (r *Repository) ListRaw(ctx context.Context, from, to weekly.Date) ([]weekly.RawOption, error) {
	lunches, err := r.List(ctx, from, to)
	if err != nil {
		return nil, err
	}
	raw := make([]weekly.RawOption, len(lunches))
	for i, l := range lunches {
		raw[i] = l.Raw()
	}
	return raw, nil
}

// Get returns the lunch with the given id or shared.ErrNotFound.
func (r *Repository) Get(ctx context.Context, id string) (*Lunch, error) {
	row, err := r.queries.GetLunch(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.NotFound("lunch", id)
		}
		return nil, fmt.Errorf("failed to get lunch: %w", err)
	}
	l, err := fromRow(row)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Create stores l under a fresh id.
func (r *Repository) Create(ctx context.Context, l *Lunch) error {
	if err := l.Validate(); err != nil {
		return err
	}
	l.ID = uuid.NewString()
	err := r.queries.InsertLunch(ctx, menudb.InsertLunchParams{ID: l.ID, Date: l.Date.String(), MealID: l.MealID})
	return translateWriteError(err, l)
}

// Update overwrites the lunch with l.ID.
func (r *Repository) Update(ctx context.Context, l *Lunch) error {
	if err := l.Validate(); err != nil {
		return err
	}
	n, err := r.queries.UpdateLunch(ctx, menudb.UpdateLunchParams{Date: l.Date.String(), MealID: l.MealID, ID: l.ID})
	if err != nil {
		return translateWriteError(err, l)
	}
	if n == 0 {
		return shared.NotFound("lunch", l.ID)
	}
	return nil
}

// Delete removes the lunch together with any selections of it.
func (r *Repository) Delete(ctx context.Context, id string) (int64, error) {
	n, err := r.queries.DeleteLunch(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete lunch: %w", err)
	}
	return n, nil
}

// Upsert returns the lunch serving mealID on date, creating it when missing.
// The boolean reports whether a new lunch was created.
func (r *Repository) Upsert(ctx context.Context, date weekly.Date, mealID string) (*Lunch, bool, error) {
	l := &Lunch{Date: date, MealID: mealID}
	if err := l.Validate(); err != nil {
		return nil, false, err
	}
	row, err := r.queries.GetLunchByDateAndMeal(ctx, menudb.GetLunchByDateAndMealParams{Date: date.String(), MealID: l.MealID})
	if err == nil {
		l.ID = row.ID
		return l, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to look up lunch: %w", err)
	}
	if err := r.Create(ctx, l); err != nil {
		return nil, false, err
	}
	return l, true, nil
}

func fromRow(row menudb.GetLunchRow) (Lunch, error) {
	date, err := weekly.ParseDate(row.Date)
	if err != nil {
		return Lunch{}, fmt.Errorf("lunch %s has a bad date: %w", row.ID, err)
	}
	return Lunch{
		ID:     row.ID,
		Date:   date,
		MealID: row.MealID,
		Meal: &meal.Meal{
			ID:     row.MealID,
			Name:   row.MealName,
			TypeID: row.TypeID,
			Type:   &meal.MealType{ID: row.TypeID, Description: row.TypeDescription, IsSelectable: row.TypeIsSelectable},
		},
	}, nil
}

func translateWriteError(err error, l *Lunch) error {
	switch {
	case err == nil:
		return nil
	case database.IsUniqueViolation(err):
		return fmt.Errorf("meal %s is already served on %s: %w", l.MealID, l.Date, shared.ErrConflict)
	case database.IsForeignKeyViolation(err):
		return shared.Invalidf("unknown meal %s", l.MealID)
	default:
		return fmt.Errorf("failed to save lunch: %w", err)
	}
}
