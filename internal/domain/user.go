package domain

// User is a directory entry for an account that can sign in.
//
// Passwords are stored and compared as plain text. The demo directory has no
// hashing scheme and this layer reproduces that behavior rather than invent
// one; see DESIGN.md.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
}

// SessionUser is the denormalized user snapshot embedded in a session.
type SessionUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Snapshot projects the directory entry into its session form.
func (u User) Snapshot() SessionUser {
	return SessionUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
