package meal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"lunch-planner/internal/database"
	mealdb "lunch-planner/internal/meal/mealdb"
	"lunch-planner/internal/shared"
)

// Repository is a database-backed repository for meals.
type Repository struct {
	queries *mealdb.Queries
	db      *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: mealdb.New(d),
		db:      d,
	}
}

// List returns all meals with their type, ordered by type then name.
func (r *Repository) List(ctx context.Context) ([]Meal, error) {
	rows, err := r.queries.ListMeals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}
	meals := make([]Meal, 0, len(rows))
	for _, row := range rows {
		meals = append(meals, Meal{
			ID:     row.ID,
			Name:   row.Name,
			TypeID: row.TypeID,
			Type:   &MealType{ID: row.TypeID, Description: row.TypeDescription, IsSelectable: row.TypeIsSelectable},
		})
	}
	return meals, nil
}

// Get returns the meal with its type or shared.ErrNotFound.
func (r *Repository) Get(ctx context.Context, id string) (*Meal, error) {
	row, err := r.queries.GetMeal(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.NotFound("meal", id)
		}
		return nil, fmt.Errorf("failed to get meal: %w", err)
	}
	return &Meal{
		ID:     row.ID,
		Name:   row.Name,
		TypeID: row.TypeID,
		Type:   &MealType{ID: row.TypeID, Description: row.TypeDescription, IsSelectable: row.TypeIsSelectable},
	}, nil
}

// Create stores m under a fresh id.
func (r *Repository) Create(ctx context.Context, m *Meal) error {
	if err := m.Validate(); err != nil {
		return err
	}
	m.ID = uuid.NewString()
	err := r.queries.InsertMeal(ctx, mealdb.InsertMealParams{ID: m.ID, Name: m.Name, TypeID: m.TypeID})
	return translateWriteError(err, m)
}

// Update overwrites the meal with m.ID.
func (r *Repository) Update(ctx context.Context, m *Meal) error {
	if err := m.Validate(); err != nil {
		return err
	}
	n, err := r.queries.UpdateMeal(ctx, mealdb.UpdateMealParams{Name: m.Name, TypeID: m.TypeID, ID: m.ID})
	if err != nil {
		return translateWriteError(err, m)
	}
	if n == 0 {
		return shared.NotFound("meal", m.ID)
	}
	return nil
}

// Delete removes the meal. Meals still on the menu are refused with shared.ErrConflict.
func (r *Repository) Delete(ctx context.Context, id string) (int64, error) {
	n, err := r.queries.DeleteMeal(ctx, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return 0, fmt.Errorf("meal %s is on the menu: %w", id, shared.ErrConflict)
		}
		return 0, fmt.Errorf("failed to delete meal: %w", err)
	}
	return n, nil
}

// FindOrCreate returns the meal with the given name and type, creating it when missing.
func (r *Repository) FindOrCreate(ctx context.Context, name, typeID string) (*Meal, error) {
	m := &Meal{Name: name, TypeID: typeID}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	row, err := r.queries.GetMealByNameAndType(ctx, mealdb.GetMealByNameAndTypeParams{Name: m.Name, TypeID: m.TypeID})
	if err == nil {
		return &Meal{ID: row.ID, Name: row.Name, TypeID: row.TypeID}, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to look up meal: %w", err)
	}
	if err := r.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func translateWriteError(err error, m *Meal) error {
	switch {
	case err == nil:
		return nil
	case database.IsUniqueViolation(err):
		return fmt.Errorf("meal %q already exists for this type: %w", m.Name, shared.ErrConflict)
	case database.IsForeignKeyViolation(err):
		return shared.Invalidf("unknown meal type %s", m.TypeID)
	default:
		return fmt.Errorf("failed to save meal: %w", err)
	}
}
