package meal

import (
	"strings"

	"lunch-planner/internal/shared"
)

// MealType is a menu category such as "Meat" or "Side". Only selectable
// categories can be picked on their own.
type MealType struct {
	ID           string `json:"id"`
	Description  string `json:"description"`
	IsSelectable bool   `json:"isSelectable"`
}

// Validate checks the fields a meal type cannot be stored without.
func (t *MealType) Validate() error {
	t.Description = strings.TrimSpace(t.Description)
	if t.Description == "" {
		return shared.Invalidf("description is required")
	}
	return nil
}

// Meal is a dish belonging to one MealType.
type Meal struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	TypeID string    `json:"typeId"`
	Type   *MealType `json:"type,omitempty"`
}

// Validate checks the fields a meal cannot be stored without.
func (m *Meal) Validate() error {
	m.Name = strings.TrimSpace(m.Name)
	m.TypeID = strings.TrimSpace(m.TypeID)
	switch {
	case m.Name == "":
		return shared.Invalidf("name is required")
	case m.TypeID == "":
		return shared.Invalidf("typeId is required")
	}
	return nil
}
