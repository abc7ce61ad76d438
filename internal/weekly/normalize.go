package weekly

import "strings"

// ExtractSelections reduces raw user lunch records to (selection, option) pairs.
// Records missing either identifier are dropped and reported.
func ExtractSelections(raw []RawSelection) ([]Selection, []error) {
	selections := make([]Selection, 0, len(raw))
	var errs []error
	for i, r := range raw {
		id := strings.TrimSpace(r.ID)
		lunchID := strings.TrimSpace(r.LunchID)
		switch {
		case id == "":
			errs = append(errs, &MalformedRecordError{Record: "selection", Index: i, Reason: "missing id"})
			continue
		case lunchID == "":
			errs = append(errs, &MalformedRecordError{Record: "selection", Index: i, ID: id, Reason: "missing lunch id"})
			continue
		}
		selections = append(selections, Selection{SelectionID: id, OptionID: lunchID})
	}
	return selections, errs
}

// NormalizeOptions maps raw lunch records to display options, none selected yet.
// A record without an id or a usable date is skipped and reported; the rest of
// the batch is still returned.
func NormalizeOptions(raw []RawOption) ([]Option, []error) {
	options := make([]Option, 0, len(raw))
	var errs []error
	for i, r := range raw {
		id := strings.TrimSpace(r.ID)
		if id == "" {
			errs = append(errs, &MalformedRecordError{Record: "option", Index: i, Reason: "missing id"})
			continue
		}
		if strings.TrimSpace(r.Date) == "" {
			errs = append(errs, &MalformedRecordError{Record: "option", Index: i, ID: id, Reason: "missing date"})
			continue
		}
		date, err := ParseDate(r.Date)
		if err != nil {
			errs = append(errs, &MalformedRecordError{Record: "option", Index: i, ID: id, Reason: err.Error()})
			continue
		}

		opt := Option{ID: id, Date: date}
		if r.Meal != nil {
			opt.Description = r.Meal.Name
			if r.Meal.Type != nil {
				opt.Category = r.Meal.Type.Description
				opt.IsSelectable = r.Meal.Type.IsSelectable
			}
		}
		options = append(options, opt)
	}
	return options, errs
}
