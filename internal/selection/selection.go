// Package selection stores which lunches each user has chosen.
package selection

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"lunch-planner/internal/database"
	selectiondb "lunch-planner/internal/selection/selectiondb"
	"lunch-planner/internal/shared"
	"lunch-planner/internal/weekly"
)

// ErrDuplicate is returned when the user already selected that lunch.
var ErrDuplicate = fmt.Errorf("lunch already selected: %w", shared.ErrConflict)

// UserLunch is a user's choice of one lunch.
type UserLunch struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	LunchID   string    `json:"lunchId"`
	Approved  bool      `json:"approved"`
	CreatedOn time.Time `json:"createdOn"`
	UpdatedOn time.Time `json:"updatedOn"`
	UpdatedBy string    `json:"updatedBy"`
}

// Raw returns the record in the shape the weekly view is built from.
func (u UserLunch) Raw() weekly.RawSelection {
	return weekly.RawSelection{ID: u.ID, LunchID: u.LunchID, Approved: u.Approved}
}

// Repository is a database-backed repository for user lunches.
// Every lookup is scoped to one user.
type Repository struct {
	queries *selectiondb.Queries
	db      *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: selectiondb.New(d),
		db:      d,
	}
}

// ListByUser returns the user's selections, oldest first.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]UserLunch, error) {
	rows, err := r.queries.ListUserLunches(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user lunches: %w", err)
	}
	out := make([]UserLunch, 0, len(rows))
	for _, row := range rows {
		out = append(out, UserLunch(row))
	}
	return out, nil
}

// ListRaw is ListByUser in the shape the weekly view is built from.
func (r *Repository) ListRaw(ctx context.Context, userID string) ([]weekly.RawSelection, error) {
	selections, err := r.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	raw := make([]weekly.RawSelection, len(selections))
	for i, s := range selections {
		raw[i] = s.Raw()
	}
	return raw, nil
}

// Get returns the user's selection with the given id or shared.ErrNotFound.
func (r *Repository) Get(ctx context.Context, userID, id string) (*UserLunch, error) {
	row, err := r.queries.GetUserLunch(ctx, selectiondb.GetUserLunchParams{ID: id, UserID: userID})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.NotFound("user lunch", id)
		}
		return nil, fmt.Errorf("failed to get user lunch: %w", err)
	}
	u := UserLunch(row)
	return &u, nil
}

// GetByUserAndLunch returns the user's selection of lunchID or shared.ErrNotFound.
func (r *Repository) GetByUserAndLunch(ctx context.Context, userID, lunchID string) (*UserLunch, error) {
	row, err := r.queries.GetUserLunchByLunch(ctx, selectiondb.GetUserLunchByLunchParams{UserID: userID, LunchID: lunchID})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.NotFound("user lunch for lunch", lunchID)
		}
		return nil, fmt.Errorf("failed to get user lunch: %w", err)
	}
	u := UserLunch(row)
	return &u, nil
}

// Create records that userID selected lunchID.
func (r *Repository) Create(ctx context.Context, userID, lunchID string, approved bool, by string) (*UserLunch, error) {
	lunchID = strings.TrimSpace(lunchID)
	if lunchID == "" {
		return nil, shared.Invalidf("lunchId is required")
	}
	now := time.Now().UTC()
	u := &UserLunch{
		ID:        uuid.NewString(),
		UserID:    userID,
		LunchID:   lunchID,
		Approved:  approved,
		CreatedOn: now,
		UpdatedOn: now,
		UpdatedBy: by,
	}
	err := r.queries.InsertUserLunch(ctx, selectiondb.InsertUserLunchParams(*u))
	if err != nil {
		return nil, translateWriteError(err, u)
	}
	return u, nil
}

// Update points the user's selection id at lunchID.
func (r *Repository) Update(ctx context.Context, userID, id, lunchID string, approved bool, by string) (*UserLunch, error) {
	lunchID = strings.TrimSpace(lunchID)
	if lunchID == "" {
		return nil, shared.Invalidf("lunchId is required")
	}
	u := &UserLunch{ID: id, UserID: userID, LunchID: lunchID, Approved: approved, UpdatedOn: time.Now().UTC(), UpdatedBy: by}
	n, err := r.queries.UpdateUserLunch(ctx, selectiondb.UpdateUserLunchParams{
		LunchID:   u.LunchID,
		Approved:  u.Approved,
		UpdatedOn: u.UpdatedOn,
		UpdatedBy: u.UpdatedBy,
		ID:        u.ID,
		UserID:    u.UserID,
	})
	if err != nil {
		return nil, translateWriteError(err, u)
	}
	if n == 0 {
		return nil, shared.NotFound("user lunch", id)
	}
	return r.Get(ctx, userID, id)
}

// Delete removes the user's selection and returns the number of rows removed.
func (r *Repository) Delete(ctx context.Context, userID, id string) (int64, error) {
	n, err := r.queries.DeleteUserLunch(ctx, selectiondb.DeleteUserLunchParams{ID: id, UserID: userID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete user lunch: %w", err)
	}
	return n, nil
}

func translateWriteError(err error, u *UserLunch) error {
	switch {
	case database.IsUniqueViolation(err):
		return ErrDuplicate
	case database.IsForeignKeyViolation(err):
		return shared.Invalidf("unknown user %s or lunch %s", u.UserID, u.LunchID)
	default:
		return fmt.Errorf("failed to save user lunch: %w", err)
	}
}
