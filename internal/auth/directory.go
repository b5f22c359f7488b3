package auth

import (
	"sync"

	"github.com/spec-kit/ticketapp/internal/domain"
)

// UserDirectory is the process-wide account list. It is seeded with the fixed
// demo accounts at construction and mutated in place by signups; it does not
// persist across restarts. Construct one per process (or per test) and pass
// it by reference.
type UserDirectory struct {
	mu    sync.Mutex
	users []domain.User
}

// NewUserDirectory returns a directory seeded with the demo accounts.
func NewUserDirectory() *UserDirectory {
	return &UserDirectory{
		users: []domain.User{
			{ID: "1", Name: "Demo User", Email: "demo@ticketapp.com", Password: "demo123"},
			{ID: "2", Name: "John Doe", Email: "john@example.com", Password: "password123"},
		},
	}
}

// FindByCredentials returns the entry whose email and password both match
// exactly, or false. Comparison is case-sensitive.
func (d *UserDirectory) FindByCredentials(email, password string) (domain.User, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, u := range d.users {
		if u.Email == email && u.Password == password {
			return u, true
		}
	}
	return domain.User{}, false
}

// HasEmail reports whether any entry carries the email (case-sensitive).
func (d *UserDirectory) HasEmail(email string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, u := range d.users {
		if u.Email == email {
			return true
		}
	}
	return false
}

// Add appends a new entry. Uniqueness is the caller's concern.
func (d *UserDirectory) Add(user domain.User) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.users = append(d.users, user)
}

// Len returns the number of directory entries.
func (d *UserDirectory) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.users)
}
