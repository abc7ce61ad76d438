package weekly

// BuildWeeklyView runs the whole pipeline over the raw menu and the raw user
// selections. It never fails: unusable records end up in the view's diagnostics
// and the calendar is built from what remains.
func BuildWeeklyView(rawOptions []RawOption, rawSelections []RawSelection) View {
	var diag Diagnostics

	selections, errs := ExtractSelections(rawSelections)
	diag.Warnings = append(diag.Warnings, errs...)

	options, errs := NormalizeOptions(rawOptions)
	diag.Warnings = append(diag.Warnings, errs...)

	merged, mergeDiag := Merge(selections, options)
	diag.merge(mergeDiag)

	return View{
		Weeks:       Fill(Group(merged)),
		Diagnostics: diag,
	}
}
