// Package domain contains core concepts of the message board.
// This file defines User entities and the Directory that numbers them.
// No runtime, console, or UI logic should be added here.
package domain

import (
	"fmt"
	"message-board/errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type User struct {
	ID        UserID
	Name      string `validate:"required,max=32"`
	CreatedAt time.Time
}

// Directory assigns sequential user IDs starting at 1.
// It is owned by the foreground loop and is not safe for concurrent use.
type Directory struct {
	users  map[UserID]User
	lastID UserID
	now    func() time.Time
}

func NewDirectory(now func() time.Time) *Directory {
	return &Directory{users: make(map[UserID]User), now: now}
}

// Add registers a new user under the next free ID.
// The name is trimmed and must be between 1 and 32 characters.
func (d *Directory) Add(name string) (User, error) {
	user := User{
		ID:        d.lastID + 1,
		Name:      strings.TrimSpace(name),
		CreatedAt: d.now().UTC(),
	}
	if err := validate.Struct(user); err != nil {
		return User{}, fmt.Errorf("%w: %q", errors.ErrInvalidUserName, name)
	}
	d.lastID = user.ID
	d.users[user.ID] = user
	return user, nil
}

func (d *Directory) Get(id UserID) (User, bool) {
	user, ok := d.users[id]
	return user, ok
}

// List returns every user in ID order.
func (d *Directory) List() []User {
	users := make([]User, 0, len(d.users))
	for id := UserID(1); id <= d.lastID; id++ {
		if user, ok := d.users[id]; ok {
			users = append(users, user)
		}
	}
	return users
}
