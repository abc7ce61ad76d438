package weekly

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func rawOption(id, date, name, category string, selectable bool) RawOption {
	return RawOption{
		ID:   id,
		Date: date,
		Meal: &RawMeal{Name: name, Type: &RawMealType{Description: category, IsSelectable: selectable}},
	}
}

func TestBuildWeeklyView_SingleMondayWithSelection(t *testing.T) {
	rawOptions := []RawOption{
		rawOption("side", "2024-03-04T00:00:00", "Rice", "Side", false),
		rawOption("veg", "2024-03-04T00:00:00", "Lentil stew", "Veg", true),
		rawOption("meat", "2024-03-04T00:00:00", "Roast chicken", "Meat", true),
	}
	rawSelections := []RawSelection{{ID: "sel-1", LunchID: "meat"}}

	view := BuildWeeklyView(rawOptions, rawSelections)

	if !view.Diagnostics.Empty() {
		t.Fatalf("Expected no diagnostics, got %+v", view.Diagnostics)
	}
	if len(view.Weeks) != 1 {
		t.Fatalf("Expected 1 week, got %d", len(view.Weeks))
	}
	week := view.Weeks[0]
	if week.WeekStart != NewDate(2024, time.March, 4) {
		t.Errorf("Expected week start 2024-03-04, got %s", week.WeekStart)
	}
	if len(week.Days) != 5 {
		t.Fatalf("Expected 5 days, got %d", len(week.Days))
	}
	for i, d := range week.Days {
		want := NewDate(2024, time.March, 4+i)
		if d.Date != want {
			t.Errorf("Expected day %d to be %s, got %s", i, want, d.Date)
		}
		if i > 0 && len(d.Options) != 0 {
			t.Errorf("Expected placeholder day %s to be empty, got %d options", d.Date, len(d.Options))
		}
	}

	monday := week.Days[0].Options
	gotIDs := []string{}
	for _, o := range monday {
		gotIDs = append(gotIDs, o.ID)
	}
	if !reflect.DeepEqual(gotIDs, []string{"meat", "veg", "side"}) {
		t.Fatalf("Expected Monday order [meat veg side], got %v", gotIDs)
	}
	for _, o := range monday {
		if o.SelectionRef != "sel-1" {
			t.Errorf("Expected %s to carry selection ref sel-1, got %q", o.ID, o.SelectionRef)
		}
		if o.IsSelected != (o.ID == "meat") {
			t.Errorf("Unexpected IsSelected=%v on %s", o.IsSelected, o.ID)
		}
	}
}

func TestMerge_DuplicateOptionIDs(t *testing.T) {
	options := []Option{
		{ID: "X", Date: NewDate(2024, time.March, 5), Category: "Meat", IsSelectable: true},
		{ID: "X", Date: NewDate(2024, time.March, 6), Category: "Meat", IsSelectable: true},
	}

	merged, diag := Merge([]Selection{{SelectionID: "s", OptionID: "X"}}, options)

	if !merged[0].IsSelected {
		t.Error("Expected first occurrence to be selected")
	}
	if merged[1].IsSelected {
		t.Error("Expected second occurrence to stay unselected")
	}
	if len(diag.Warnings) != 1 {
		t.Fatalf("Expected 1 warning, got %d", len(diag.Warnings))
	}
	var ambiguous *AmbiguousMatchError
	if !errors.As(diag.Warnings[0], &ambiguous) {
		t.Fatalf("Expected AmbiguousMatchError, got %T", diag.Warnings[0])
	}
	if ambiguous.Matches != 2 || ambiguous.OptionID != "X" {
		t.Errorf("Unexpected ambiguous match details: %+v", ambiguous)
	}
	if !errors.Is(diag.Warnings[0], ErrAmbiguousMatch) {
		t.Error("Expected warning to match ErrAmbiguousMatch")
	}
}

func TestMerge(t *testing.T) {
	monday := NewDate(2024, time.March, 4)
	tuesday := monday.AddDays(1)
	base := []Option{
		{ID: "a", Date: monday, Category: "Meat", IsSelectable: true},
		{ID: "b", Date: monday, Category: "Veg", IsSelectable: true},
		{ID: "c", Date: tuesday, Category: "Meat", IsSelectable: true},
	}

	t.Run("OrphanLeavesOptionsUntouched", func(t *testing.T) {
		merged, diag := Merge([]Selection{{SelectionID: "s", OptionID: "gone"}}, base)
		if !reflect.DeepEqual(merged, base) {
			t.Errorf("Expected no mutation, got %+v", merged)
		}
		if len(diag.Warnings) != 0 {
			t.Errorf("Expected orphan to stay out of warnings, got %v", diag.Warnings)
		}
		if len(diag.Orphaned) != 1 || !errors.Is(diag.Orphaned[0], ErrOrphanedSelection) {
			t.Errorf("Expected 1 orphaned selection, got %v", diag.Orphaned)
		}
	})

	t.Run("InputIsNotMutated", func(t *testing.T) {
		input := make([]Option, len(base))
		copy(input, base)
		_, _ = Merge([]Selection{{SelectionID: "s", OptionID: "a"}}, input)
		if !reflect.DeepEqual(input, base) {
			t.Errorf("Expected input to stay unchanged, got %+v", input)
		}
	})

	t.Run("PropagatesOnlyWithinDay", func(t *testing.T) {
		merged, _ := Merge([]Selection{{SelectionID: "s", OptionID: "a"}}, base)
		if merged[1].SelectionRef != "s" || merged[1].IsSelected {
			t.Errorf("Expected sibling to inherit ref without selection, got %+v", merged[1])
		}
		if merged[2].SelectionRef != "" {
			t.Errorf("Expected other day to stay without ref, got %q", merged[2].SelectionRef)
		}
	})

	t.Run("SelectedSiblingKeepsOwnRef", func(t *testing.T) {
		merged, _ := Merge([]Selection{
			{SelectionID: "s1", OptionID: "a"},
			{SelectionID: "s2", OptionID: "b"},
		}, base)
		if merged[0].SelectionRef != "s1" || !merged[0].IsSelected {
			t.Errorf("Expected a to keep s1, got %+v", merged[0])
		}
		if merged[1].SelectionRef != "s2" || !merged[1].IsSelected {
			t.Errorf("Expected b to carry s2, got %+v", merged[1])
		}
	})
}

func TestNormalizeOptions(t *testing.T) {
	raw := []RawOption{
		rawOption("1", "2024-03-04", "Soup", "Starter", false),
		{ID: "", Date: "2024-03-04"},
		{ID: "3"},
		{ID: "4", Date: "not a date"},
		{ID: "5", Date: "2024-03-05T12:30:00+02:00"},
	}

	options, errs := NormalizeOptions(raw)

	if len(options) != 2 {
		t.Fatalf("Expected 2 options, got %d", len(options))
	}
	if options[0].Description != "Soup" || options[0].Category != "Starter" || options[0].IsSelectable {
		t.Errorf("Unexpected first option: %+v", options[0])
	}
	if options[0].IsSelected || options[0].SelectionRef != "" {
		t.Errorf("Expected fresh option to be unselected, got %+v", options[0])
	}
	if options[1].Date != NewDate(2024, time.March, 5) {
		t.Errorf("Expected date as written, got %s", options[1].Date)
	}
	if options[1].Description != "" || options[1].IsSelectable {
		t.Errorf("Expected empty meal fields for option without meal, got %+v", options[1])
	}
	if len(errs) != 3 {
		t.Fatalf("Expected 3 errors, got %d: %v", len(errs), errs)
	}
	for _, err := range errs {
		if !errors.Is(err, ErrMalformedRecord) {
			t.Errorf("Expected malformed record error, got %v", err)
		}
	}
}

func TestExtractSelections(t *testing.T) {
	selections, errs := ExtractSelections([]RawSelection{
		{ID: "s1", LunchID: "l1"},
		{ID: "", LunchID: "l2"},
		{ID: "s3", LunchID: " "},
	})

	if !reflect.DeepEqual(selections, []Selection{{SelectionID: "s1", OptionID: "l1"}}) {
		t.Errorf("Unexpected selections: %+v", selections)
	}
	if len(errs) != 2 {
		t.Errorf("Expected 2 dropped records, got %d", len(errs))
	}
}

func TestFill(t *testing.T) {
	monday := NewDate(2024, time.March, 4)

	t.Run("KeepsWeekendDays", func(t *testing.T) {
		saturday := monday.AddDays(5)
		weeks := []WeekGroup{{
			WeekStart: monday,
			Days:      []DayGroup{{Date: saturday, Options: []Option{{ID: "sat", Date: saturday}}}},
		}}

		filled := Fill(weeks)

		if len(filled[0].Days) != 6 {
			t.Fatalf("Expected 6 days, got %d", len(filled[0].Days))
		}
		if filled[0].Days[5].Date != saturday {
			t.Errorf("Expected Saturday last, got %s", filled[0].Days[5].Date)
		}
		if len(weeks[0].Days) != 1 {
			t.Errorf("Expected input week to stay unchanged, got %d days", len(weeks[0].Days))
		}
	})

	t.Run("FullWeekUnchanged", func(t *testing.T) {
		var days []DayGroup
		for _, d := range BusinessWeek(monday) {
			days = append(days, DayGroup{Date: d, Options: []Option{{ID: d.String(), Date: d}}})
		}
		weeks := []WeekGroup{{WeekStart: monday, Days: days}}

		if filled := Fill(weeks); !reflect.DeepEqual(filled, weeks) {
			t.Errorf("Expected full week untouched, got %+v", filled)
		}
	})
}

func TestGroup_OrdersWeeksAndDays(t *testing.T) {
	options := []Option{
		{ID: "late", Date: NewDate(2024, time.March, 13), Category: "Meat", IsSelectable: true},
		{ID: "early-b", Date: NewDate(2024, time.March, 5), Category: "b", IsSelectable: true},
		{ID: "early-side", Date: NewDate(2024, time.March, 5), Category: "A", IsSelectable: false},
		{ID: "early-B", Date: NewDate(2024, time.March, 5), Category: "B", IsSelectable: true},
		{ID: "sunday", Date: NewDate(2024, time.March, 10), Category: "Meat", IsSelectable: true},
	}

	weeks := Group(options)

	if len(weeks) != 2 {
		t.Fatalf("Expected 2 weeks, got %d", len(weeks))
	}
	if weeks[0].WeekStart != NewDate(2024, time.March, 4) || weeks[1].WeekStart != NewDate(2024, time.March, 11) {
		t.Errorf("Unexpected week starts %s, %s", weeks[0].WeekStart, weeks[1].WeekStart)
	}
	if len(weeks[0].Days) != 2 || weeks[0].Days[1].Date != NewDate(2024, time.March, 10) {
		t.Errorf("Expected Sunday in the first ISO week, got %+v", weeks[0].Days)
	}
	var ids []string
	for _, o := range weeks[0].Days[0].Options {
		ids = append(ids, o.ID)
	}
	if !reflect.DeepEqual(ids, []string{"early-B", "early-b", "early-side"}) {
		t.Errorf("Expected case-sensitive category order, got %v", ids)
	}
}

func TestDate(t *testing.T) {
	t.Run("WeekStart", func(t *testing.T) {
		cases := map[Date]Date{
			NewDate(2024, time.March, 4):     NewDate(2024, time.March, 4),
			NewDate(2024, time.March, 10):    NewDate(2024, time.March, 4),
			NewDate(2024, time.January, 1):   NewDate(2024, time.January, 1),
			NewDate(2021, time.January, 3):   NewDate(2020, time.December, 28),
			NewDate(2024, time.December, 31): NewDate(2024, time.December, 30),
		}
		for in, want := range cases {
			if got := in.WeekStart(); got != want {
				t.Errorf("WeekStart(%s): expected %s, got %s", in, want, got)
			}
		}
	})

	t.Run("ParseAndFormat", func(t *testing.T) {
		d, err := ParseDate("2024-02-29")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if d.String() != "2024-02-29" {
			t.Errorf("Expected 2024-02-29, got %s", d)
		}
		if _, err := ParseDate(""); err == nil {
			t.Error("Expected error for empty date")
		}
	})

	t.Run("Compare", func(t *testing.T) {
		a, b := NewDate(2023, time.December, 31), NewDate(2024, time.January, 1)
		if !a.Before(b) || b.Before(a) || a.Compare(a) != 0 {
			t.Error("Unexpected ordering across a year boundary")
		}
	})
}

func TestView_Option(t *testing.T) {
	view := BuildWeeklyView([]RawOption{rawOption("x", "2024-03-04", "Fish", "Meat", true)}, nil)

	if o, ok := view.Option("x"); !ok || o.Description != "Fish" {
		t.Errorf("Expected to find option x, got %+v, %v", o, ok)
	}
	if _, ok := view.Option("missing"); ok {
		t.Error("Expected missing option not to be found")
	}
}
