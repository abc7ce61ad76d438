package menu

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"lunch-planner/internal/database"
	"lunch-planner/internal/meal"
	"lunch-planner/internal/shared"
	"lunch-planner/internal/weekly"
)

type fixture struct {
	repo  *Repository
	meat  *meal.Meal
	rice  *meal.Meal
	types *meal.TypeRepository
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	types := meal.NewTypeRepository(db.SQL)
	meals := meal.NewRepository(db.SQL)
	meatType, err := types.FindOrCreate(ctx, "Meat", true)
	if err != nil {
		t.Fatalf("Failed to create type: %v", err)
	}
	sideType, err := types.FindOrCreate(ctx, "Side", false)
	if err != nil {
		t.Fatalf("Failed to create type: %v", err)
	}
	meat, err := meals.FindOrCreate(ctx, "Roast chicken", meatType.ID)
	if err != nil {
		t.Fatalf("Failed to create meal: %v", err)
	}
	rice, err := meals.FindOrCreate(ctx, "Rice", sideType.ID)
	if err != nil {
		t.Fatalf("Failed to create meal: %v", err)
	}
	return fixture{repo: NewRepository(db.SQL), meat: meat, rice: rice, types: types}
}

func TestRepository(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	monday := weekly.NewDate(2024, time.March, 4)

	chicken := &Lunch{Date: monday, MealID: f.meat.ID}
	if err := f.repo.Create(ctx, chicken); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := f.repo.Create(ctx, &Lunch{Date: monday, MealID: f.rice.ID}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := f.repo.Create(ctx, &Lunch{Date: monday.AddDays(7), MealID: f.meat.ID}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	t.Run("ListRange", func(t *testing.T) {
		lunches, err := f.repo.List(ctx, monday, monday.AddDays(4))
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(lunches) != 2 {
			t.Fatalf("Expected 2 lunches in the first week, got %d", len(lunches))
		}
		if lunches[0].Meal.Type.Description != "Meat" {
			t.Errorf("Expected joined meal type, got %+v", lunches[0].Meal)
		}
	})

	t.Run("ListOpenRange", func(t *testing.T) {
		lunches, err := f.repo.List(ctx, weekly.Date{}, weekly.Date{})
		if err != nil || len(lunches) != 3 {
			t.Errorf("Expected 3 lunches, got %d, %v", len(lunches), err)
		}
	})

	t.Run("ListRaw", func(t *testing.T) {
		raw, err := f.repo.ListRaw(ctx, monday, monday)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(raw) != 2 || raw[0].Date != "2024-03-04" {
			t.Fatalf("Unexpected raw lunches %+v", raw)
		}
		if raw[1].Meal == nil || raw[1].Meal.Type == nil || raw[1].Meal.Type.IsSelectable {
			t.Errorf("Expected non-selectable side, got %+v", raw[1].Meal)
		}
	})

	t.Run("DuplicateLunch", func(t *testing.T) {
		err := f.repo.Create(ctx, &Lunch{Date: monday, MealID: f.meat.ID})
		if !errors.Is(err, shared.ErrConflict) {
			t.Errorf("Expected ErrConflict, got %v", err)
		}
	})

	t.Run("UnknownMeal", func(t *testing.T) {
		err := f.repo.Create(ctx, &Lunch{Date: monday, MealID: "missing"})
		if !errors.Is(err, shared.ErrInvalid) {
			t.Errorf("Expected ErrInvalid, got %v", err)
		}
	})

	t.Run("Upsert", func(t *testing.T) {
		got, created, err := f.repo.Upsert(ctx, monday, f.meat.ID)
		if err != nil || created || got.ID != chicken.ID {
			t.Errorf("Expected existing lunch, got %+v, %v, %v", got, created, err)
		}
		got, created, err = f.repo.Upsert(ctx, monday.AddDays(1), f.meat.ID)
		if err != nil || !created || got.ID == "" {
			t.Errorf("Expected new lunch, got %+v, %v, %v", got, created, err)
		}
	})

	t.Run("UpdateAndGet", func(t *testing.T) {
		chicken.Date = monday.AddDays(2)
		if err := f.repo.Update(ctx, chicken); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		got, err := f.repo.Get(ctx, chicken.ID)
		if err != nil || got.Date != monday.AddDays(2) {
			t.Errorf("Expected moved lunch, got %+v, %v", got, err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if n, err := f.repo.Delete(ctx, chicken.ID); err != nil || n != 1 {
			t.Fatalf("Expected 1 row deleted, got %d, %v", n, err)
		}
		if _, err := f.repo.Get(ctx, chicken.ID); !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}
