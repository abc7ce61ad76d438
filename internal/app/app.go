// Package app holds the operations behind the lunch-planner command line tool.
package app

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"lunch-planner/internal/auth"
	"lunch-planner/internal/client"
	"lunch-planner/internal/config"
	"lunch-planner/internal/database"
	"lunch-planner/internal/importer"
	"lunch-planner/internal/meal"
	"lunch-planner/internal/menu"
	"lunch-planner/internal/planner"
	"lunch-planner/internal/weekly"
)

// App holds the application's dependencies. The database is only opened by
// the commands that need it.
type App struct {
	cfg    *config.Config
	client client.Client
}

// NewApp creates a new App instance.
func NewApp(cfg *config.Config) *App {
	return &App{cfg: cfg}
}

func (a *App) apiClient() (client.Client, error) {
	if a.client != nil {
		return a.client, nil
	}
	if err := a.cfg.RequireClient(); err != nil {
		return nil, err
	}
	a.client = client.NewClient(a.cfg)
	return a.client, nil
}

// Week builds userID's weekly view over the given number of weeks through the API.
func (a *App) Week(ctx context.Context, userID string, weeks int) (*weekly.View, error) {
	if userID == "" {
		return nil, fmt.Errorf("a user id is required")
	}
	c, err := a.apiClient()
	if err != nil {
		return nil, err
	}
	if weeks < 1 {
		weeks = a.cfg.PlanningWeeks
	}
	return planner.NewPlanner(c, weeks).Upcoming(ctx, userID)
}

// ImportMenu loads the menu page at url straight into the database.
func (a *App) ImportMenu(ctx context.Context, url string) (*importer.Report, error) {
	db, err := database.NewDB(a.cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	im := importer.NewImporter(
		meal.NewTypeRepository(db.SQL),
		meal.NewRepository(db.SQL),
		menu.NewRepository(db.SQL),
	)
	return im.Import(ctx, url)
}

// IssueToken signs an API token for userID with the configured secret.
func (a *App) IssueToken(userID, role string) (string, error) {
	if err := a.cfg.RequireServer(); err != nil {
		return "", err
	}
	return auth.NewIssuer(a.cfg.JWTSecret, a.cfg.TokenTTL).GenerateToken(userID, role)
}

// PrintWeek writes view as a plain text table.
func PrintWeek(w io.Writer, view *weekly.View) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, wk := range view.Weeks {
		fmt.Fprintf(tw, "Week of %s\n", wk.WeekStart)
		for _, d := range wk.Days {
			day := fmt.Sprintf("%s %s", d.Date.Weekday().String()[:3], d.Date)
			if len(d.Options) == 0 {
				fmt.Fprintf(tw, "  %s\t-\t\t\n", day)
				continue
			}
			for i, o := range d.Options {
				if i > 0 {
					day = ""
				}
				var flags []string
				if o.IsSelected {
					flags = append(flags, "selected")
				}
				if !o.IsSelectable {
					flags = append(flags, "included")
				}
				fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", day, o.Category, o.Description, strings.Join(flags, ","))
			}
		}
	}
	return tw.Flush()
}

// PrintReport writes an import summary followed by the rejected rows.
func PrintReport(w io.Writer, r *importer.Report) {
	fmt.Fprintf(w, "Imported %d rows: %d new lunches, %d already known.\n", r.Rows, r.Created, r.Existing)
	for _, err := range r.Errors {
		fmt.Fprintf(w, "  skipped %v\n", err)
	}
}
