package domain

// Session is the single active login. Created by login/signup, destroyed by
// logout; at most one exists per installation.
type Session struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}
