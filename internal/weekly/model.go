// Package weekly turns the flat lunch menu and a user's flat list of lunch
// selections into a calendar of ISO weeks, each with a full Monday-Friday span.
//
// The pipeline is pure and synchronous:
//
//	raw selections -> ExtractSelections -+
//	                                     +-> Merge -> Group -> Fill
//	raw options    -> NormalizeOptions  -+
//
// No step mutates its input; every stage returns fresh values so a structure
// handed to a caller is never changed by a later build.
package weekly

// BusinessDays is the number of weekdays every week is filled up to.
const BusinessDays = 5

// Option is one orderable lunch item on one day, shaped for display.
type Option struct {
	ID           string `json:"id"`
	Date         Date   `json:"date"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	IsSelectable bool   `json:"isSelectable"`
	IsSelected   bool   `json:"isSelected"`
	// SelectionRef is the selection record covering this option's day, if any.
	// Set on every option of a day that has a selection, while IsSelected is
	// only set on the option the selection points at.
	SelectionRef string `json:"selectionRef,omitempty"`
}

// Selection is a user's recorded choice of one Option.
type Selection struct {
	SelectionID string `json:"selectionId"`
	OptionID    string `json:"optionId"`
}

// DayGroup holds the options of a single calendar day.
type DayGroup struct {
	Date    Date     `json:"date"`
	Options []Option `json:"options"`
}

// WeekGroup holds the days of one ISO week.
type WeekGroup struct {
	WeekStart Date       `json:"weekStart"`
	Days      []DayGroup `json:"days"`
}

// View is the result of a full build: the calendar plus what went wrong on the way.
type View struct {
	Weeks       []WeekGroup `json:"weeks"`
	Diagnostics Diagnostics `json:"-"`
}

// Option returns the first option with the given id in display order.
func (v *View) Option(id string) (Option, bool) {
	for _, w := range v.Weeks {
		for _, d := range w.Days {
			for _, o := range d.Options {
				if o.ID == id {
					return o, true
				}
			}
		}
	}
	return Option{}, false
}

// RawMealType is the nested meal category of a RawOption.
type RawMealType struct {
	ID           string `json:"id,omitempty"`
	Description  string `json:"description"`
	IsSelectable bool   `json:"isSelectable"`
}

// RawMeal is the nested meal of a RawOption.
type RawMeal struct {
	ID   string       `json:"id,omitempty"`
	Name string       `json:"name"`
	Type *RawMealType `json:"type,omitempty"`
}

// RawOption is a lunch record as the lunches endpoint serves it.
type RawOption struct {
	ID   string   `json:"id"`
	Date string   `json:"date"`
	Meal *RawMeal `json:"meal,omitempty"`
}

// RawSelection is a user lunch record as the user lunches endpoint serves it.
type RawSelection struct {
	ID       string `json:"id"`
	LunchID  string `json:"lunchId"`
	Approved bool   `json:"approved"`
}
