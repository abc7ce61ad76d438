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

// TypeRepository is a database-backed repository for meal types.
type TypeRepository struct {
	queries *mealdb.Queries
	db      *sql.DB
}

// NewTypeRepository creates a new TypeRepository.
func NewTypeRepository(d *sql.DB) *TypeRepository {
	return &TypeRepository{
		queries: mealdb.New(d),
		db:      d,
	}
}

// List returns all meal types ordered by description.
func (r *TypeRepository) List(ctx context.Context) ([]MealType, error) {
	rows, err := r.queries.ListMealTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list meal types: %w", err)
	}
	types := make([]MealType, 0, len(rows))
	for _, row := range rows {
		types = append(types, MealType(row))
	}
	return types, nil
}

// Get returns the meal type with the given id or shared.ErrNotFound.
func (r *TypeRepository) Get(ctx context.Context, id string) (*MealType, error) {
	row, err := r.queries.GetMealType(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.NotFound("meal type", id)
		}
		return nil, fmt.Errorf("failed to get meal type: %w", err)
	}
	t := MealType(row)
	return &t, nil
}

// Create stores t under a fresh id.
func (r *TypeRepository) Create(ctx context.Context, t *MealType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	t.ID = uuid.NewString()
	err := r.queries.InsertMealType(ctx, mealdb.InsertMealTypeParams{
		ID:           t.ID,
		Description:  t.Description,
		IsSelectable: t.IsSelectable,
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("meal type %q already exists: %w", t.Description, shared.ErrConflict)
		}
		return fmt.Errorf("failed to insert meal type: %w", err)
	}
	return nil
}

// Update overwrites the meal type with t.ID.
func (r *TypeRepository) Update(ctx context.Context, t *MealType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	n, err := r.queries.UpdateMealType(ctx, mealdb.UpdateMealTypeParams{
		Description:  t.Description,
		IsSelectable: t.IsSelectable,
		ID:           t.ID,
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("meal type %q already exists: %w", t.Description, shared.ErrConflict)
		}
		return fmt.Errorf("failed to update meal type: %w", err)
	}
	if n == 0 {
		return shared.NotFound("meal type", t.ID)
	}
	return nil
}

// Delete removes the meal type. Types still used by meals are refused with shared.ErrConflict.
func (r *TypeRepository) Delete(ctx context.Context, id string) (int64, error) {
	n, err := r.queries.DeleteMealType(ctx, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return 0, fmt.Errorf("meal type %s is in use: %w", id, shared.ErrConflict)
		}
		return 0, fmt.Errorf("failed to delete meal type: %w", err)
	}
	return n, nil
}

// FindOrCreate returns the meal type with the given description, creating it
// when missing. An existing type keeps its selectable flag.
func (r *TypeRepository) FindOrCreate(ctx context.Context, description string, selectable bool) (*MealType, error) {
	t := &MealType{Description: description, IsSelectable: selectable}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	row, err := r.queries.GetMealTypeByDescription(ctx, t.Description)
	if err == nil {
		found := MealType(row)
		return &found, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to look up meal type: %w", err)
	}
	if err := r.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
