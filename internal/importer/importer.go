// Package importer loads a cafeteria menu published as an HTML table into
// the menu store.
package importer

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"lunch-planner/internal/meal"
	"lunch-planner/internal/menu"
	"lunch-planner/internal/weekly"
)

// Row is one menu line: a meal of a category served on a date.
type Row struct {
	Line       int
	Date       weekly.Date
	Category   string
	Meal       string
	Selectable bool
}

// RowError reports a table row that could not be imported.
type RowError struct {
	Line   int
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Line, e.Reason)
}

// Report summarizes one import.
type Report struct {
	Rows     int
	Created  int
	Existing int
	Errors   []error
}

// TypeStore finds or creates meal types.
type TypeStore interface {
	FindOrCreate(ctx context.Context, description string, selectable bool) (*meal.MealType, error)
}

// MealStore finds or creates meals.
type MealStore interface {
	FindOrCreate(ctx context.Context, name, typeID string) (*meal.Meal, error)
}

// LunchStore upserts lunches.
type LunchStore interface {
	Upsert(ctx context.Context, date weekly.Date, mealID string) (*menu.Lunch, bool, error)
}

// Importer handles fetching menu pages and storing their rows.
type Importer struct {
	types      TypeStore
	meals      MealStore
	lunches    LunchStore
	httpClient *http.Client
}

// NewImporter creates a new Importer.
func NewImporter(types TypeStore, meals MealStore, lunches LunchStore) *Importer {
	return &Importer{
		types:      types,
		meals:      meals,
		lunches:    lunches,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Import fetches the page at url and stores every usable row. Bad rows are
// collected in the report and do not stop the import; only a failed fetch or
// an unreadable page returns an error.
func (im *Importer) Import(ctx context.Context, url string) (*Report, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := im.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch menu: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch URL: status %d", resp.StatusCode)
	}

	rows, rowErrs, err := ParseMenu(resp.Body)
	if err != nil {
		return nil, err
	}
	report := &Report{Rows: len(rows), Errors: rowErrs}

	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		created, err := im.store(ctx, row)
		if err != nil {
			report.Errors = append(report.Errors, &RowError{Line: row.Line, Reason: err.Error()})
			continue
		}
		if created {
			report.Created++
		} else {
			report.Existing++
		}
	}

	for _, e := range report.Errors {
		log.Printf("Warning: menu import %s: %v", url, e)
	}
	return report, nil
}

func (im *Importer) store(ctx context.Context, row Row) (bool, error) {
	mt, err := im.types.FindOrCreate(ctx, row.Category, row.Selectable)
	if err != nil {
		return false, err
	}
	m, err := im.meals.FindOrCreate(ctx, row.Meal, mt.ID)
	if err != nil {
		return false, err
	}
	_, created, err := im.lunches.Upsert(ctx, row.Date, m.ID)
	return created, err
}

// ParseMenu reads every table row of the document with four cells:
// date, category, meal and a selectable flag. Header rows are skipped.
func ParseMenu(r io.Reader) ([]Row, []error, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse menu page: %w", err)
	}

	var (
		rows []Row
		errs []error
	)
	doc.Find("table tr").Each(func(i int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() == 0 {
			return
		}
		line := i + 1
		if cells.Length() < 4 {
			errs = append(errs, &RowError{Line: line, Reason: fmt.Sprintf("expected 4 cells, got %d", cells.Length())})
			return
		}

		text := func(n int) string { return strings.TrimSpace(cells.Eq(n).Text()) }
		date, err := weekly.ParseDate(text(0))
		if err != nil {
			errs = append(errs, &RowError{Line: line, Reason: err.Error()})
			return
		}
		selectable, ok := parseFlag(text(3))
		if !ok {
			errs = append(errs, &RowError{Line: line, Reason: fmt.Sprintf("unknown selectable flag %q", text(3))})
			return
		}
		row := Row{Line: line, Date: date, Category: text(1), Meal: text(2), Selectable: selectable}
		if row.Category == "" || row.Meal == "" {
			errs = append(errs, &RowError{Line: line, Reason: "missing category or meal"})
			return
		}
		rows = append(rows, row)
	})
	return rows, errs, nil
}

func parseFlag(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "yes", "y", "true", "1", "x", "✓":
		return true, true
	case "no", "n", "false", "0", "", "-":
		return false, true
	}
	return false, false
}
