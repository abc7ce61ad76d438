package weekly

// Merge applies the user's selections to a copy of options.
//
// For each selection the first option with the same id is marked selected and
// takes the selection id as its SelectionRef. Every other option on that date
// inherits the SelectionRef but stays unselected: one selection record covers
// the whole day, so saving a different item that day must update it rather
// than create a second one. Options already selected by another selection
// keep their own ref.
//
// options is not modified.
func Merge(selections []Selection, options []Option) ([]Option, Diagnostics) {
	merged := make([]Option, len(options))
	copy(merged, options)

	var diag Diagnostics
	for _, s := range selections {
		idx, matches := findOption(merged, s.OptionID)
		if matches == 0 {
			diag.Orphaned = append(diag.Orphaned, &OrphanedSelectionError{SelectionID: s.SelectionID, OptionID: s.OptionID})
			continue
		}
		if matches > 1 {
			diag.Warnings = append(diag.Warnings, &AmbiguousMatchError{OptionID: s.OptionID, SelectionID: s.SelectionID, Matches: matches})
		}

		merged[idx].IsSelected = true
		merged[idx].SelectionRef = s.SelectionID

		day := merged[idx].Date
		for i := range merged {
			if i == idx || merged[i].Date != day || merged[i].IsSelected {
				continue
			}
			merged[i].SelectionRef = s.SelectionID
		}
	}
	return merged, diag
}

// findOption returns the index of the first option with id and the number of options sharing it.
func findOption(options []Option, id string) (int, int) {
	first, count := -1, 0
	for i, o := range options {
		if o.ID != id {
			continue
		}
		if first < 0 {
			first = i
		}
		count++
	}
	return first, count
}
