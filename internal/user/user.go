package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"lunch-planner/internal/database"
	"lunch-planner/internal/shared"
	userdb "lunch-planner/internal/user/userdb"
)

// ErrDuplicate is returned when the user name is already taken.
var ErrDuplicate = fmt.Errorf("user name already taken: %w", shared.ErrConflict)

// User is an application account that can select lunches.
type User struct {
	ID        string    `json:"id"`
	UserName  string    `json:"userName"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedOn time.Time `json:"createdOn"`
	UpdatedOn time.Time `json:"updatedOn"`
	UpdatedBy string    `json:"updatedBy"`
}

// Validate checks the fields a user cannot be stored without.
func (u *User) Validate() error {
	u.UserName = strings.TrimSpace(u.UserName)
	if u.UserName == "" {
		return shared.Invalidf("userName is required")
	}
	return nil
}

// Repository is a database-backed repository for users.
type Repository struct {
	queries *userdb.Queries
	db      *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: userdb.New(d),
		db:      d,
	}
}

// List returns all users ordered by user name.
func (r *Repository) List(ctx context.Context) ([]User, error) {
	rows, err := r.queries.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	users := make([]User, 0, len(rows))
	for _, row := range rows {
		users = append(users, fromRow(row))
	}
	return users, nil
}

// Get returns the user with the given id or shared.ErrNotFound.
func (r *Repository) Get(ctx context.Context, id string) (*User, error) {
	row, err := r.queries.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.NotFound("user", id)
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	u := fromRow(row)
	return &u, nil
}

// Create stores u under a fresh id and fills in the id and timestamps.
func (r *Repository) Create(ctx context.Context, u *User, by string) error {
	if err := u.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	u.ID = uuid.NewString()
	u.CreatedOn, u.UpdatedOn, u.UpdatedBy = now, now, by

	err := r.queries.InsertUser(ctx, userdb.InsertUserParams{
		ID:        u.ID,
		UserName:  u.UserName,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedOn: u.CreatedOn,
		UpdatedOn: u.UpdatedOn,
		UpdatedBy: u.UpdatedBy,
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// Update overwrites the editable fields of the user with u.ID.
func (r *Repository) Update(ctx context.Context, u *User, by string) error {
	if err := u.Validate(); err != nil {
		return err
	}
	u.UpdatedOn, u.UpdatedBy = time.Now().UTC(), by

	n, err := r.queries.UpdateUser(ctx, userdb.UpdateUserParams{
		UserName:  u.UserName,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		UpdatedOn: u.UpdatedOn,
		UpdatedBy: u.UpdatedBy,
		ID:        u.ID,
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	if n == 0 {
		return shared.NotFound("user", u.ID)
	}
	return nil
}

// Delete removes the user and, through the schema, their lunch selections.
// It returns the number of rows removed.
func (r *Repository) Delete(ctx context.Context, id string) (int64, error) {
	n, err := r.queries.DeleteUser(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete user: %w", err)
	}
	return n, nil
}

func fromRow(row userdb.User) User {
	return User{
		ID:        row.ID,
		UserName:  row.UserName,
		Email:     row.Email,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		CreatedOn: row.CreatedOn,
		UpdatedOn: row.UpdatedOn,
		UpdatedBy: row.UpdatedBy,
	}
}
