package weekly

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedRecord   = errors.New("malformed record")
	ErrOrphanedSelection = errors.New("orphaned selection")
	ErrAmbiguousMatch    = errors.New("ambiguous match")
)

// MalformedRecordError reports a raw record that could not be used and was skipped.
type MalformedRecordError struct {
	Record string // "option" or "selection"
	Index  int
	ID     string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("malformed %s record %d (id %s): %s", e.Record, e.Index, e.ID, e.Reason)
	}
	return fmt.Sprintf("malformed %s record %d: %s", e.Record, e.Index, e.Reason)
}

func (e *MalformedRecordError) Is(target error) bool { return target == ErrMalformedRecord }

// OrphanedSelectionError reports a selection whose option is not on the current menu.
type OrphanedSelectionError struct {
	SelectionID string
	OptionID    string
}

func (e *OrphanedSelectionError) Error() string {
	return fmt.Sprintf("selection %s references unknown option %s", e.SelectionID, e.OptionID)
}

func (e *OrphanedSelectionError) Is(target error) bool { return target == ErrOrphanedSelection }

// AmbiguousMatchError reports a selection that matched several options sharing one id.
// The first option in input order wins.
type AmbiguousMatchError struct {
	OptionID    string
	SelectionID string
	Matches     int
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("selection %s matched %d options with id %s, using the first", e.SelectionID, e.Matches, e.OptionID)
}

func (e *AmbiguousMatchError) Is(target error) bool { return target == ErrAmbiguousMatch }

// Diagnostics collects the non-fatal conditions met while building a view.
type Diagnostics struct {
	// Warnings holds malformed-record and ambiguous-match errors.
	Warnings []error
	// Orphaned selections reflect a stale menu, not a fault, and are kept apart
	// from Warnings so callers do not surface them.
	Orphaned []*OrphanedSelectionError
}

// Empty reports whether nothing was recorded.
func (d Diagnostics) Empty() bool {
	return len(d.Warnings) == 0 && len(d.Orphaned) == 0
}

func (d *Diagnostics) merge(o Diagnostics) {
	d.Warnings = append(d.Warnings, o.Warnings...)
	d.Orphaned = append(d.Orphaned, o.Orphaned...)
}
