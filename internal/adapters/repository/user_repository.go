package repository

import (
	"context"
	"sort"

	"github.com/bookstore/core/internal/domain/entities"
)

// userRecord is the wire shape of one entry in users.json. The document is a
// mapping keyed by username, so the username itself is not repeated inside
// the record.
type userRecord struct {
	Password string `json:"password"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

type userDocument = map[string]userRecord

// UserRepository is the credential store backed by users.json.
type UserRepository struct {
	doc *Document[userDocument]
}

// NewUserRepository creates a credential store for the given file path.
func NewUserRepository(path string) *UserRepository {
	return &UserRepository{doc: NewDocument[userDocument](path)}
}

// Create stores a new user. Returns entities.ErrDuplicateUser when the
// username is already present.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	return r.doc.Mutate(userDocument{}, func(users userDocument) (userDocument, error) {
		if _, exists := users[user.Username]; exists {
			return nil, entities.ErrDuplicateUser
		}
		users[user.Username] = userRecord{
			Password: user.PasswordHash,
			Email:    user.Email,
			IsAdmin:  user.IsAdmin,
		}
		return users, nil
	})
}

// GetByUsername returns the stored profile, or entities.ErrUserNotFound.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	users := r.doc.Load(userDocument{})

	rec, ok := users[username]
	if !ok {
		return nil, entities.ErrUserNotFound
	}

	return &entities.User{
		Username:     username,
		PasswordHash: rec.Password,
		Email:        rec.Email,
		IsAdmin:      rec.IsAdmin,
	}, nil
}

// List returns all registered users sorted by username. The JSON document is
// a map, so there is no insertion order to preserve.
func (r *UserRepository) List(ctx context.Context) ([]*entities.User, error) {
	users := r.doc.Load(userDocument{})

	out := make([]*entities.User, 0, len(users))
	for username, rec := range users {
		out = append(out, &entities.User{
			Username:     username,
			PasswordHash: rec.Password,
			Email:        rec.Email,
			IsAdmin:      rec.IsAdmin,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

// Count returns the number of registered users.
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	return len(r.doc.Load(userDocument{})), nil
}
