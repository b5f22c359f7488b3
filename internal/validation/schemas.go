// Package validation holds the pure input schemas for login, signup and
// ticket forms. Schemas never fail hard: they return a field→message map,
// nil when the input is acceptable.
package validation

import (
	"regexp"
	"unicode/utf8"

	"github.com/spec-kit/ticketapp/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// LoginForm is the raw login input.
type LoginForm struct {
	Email    string
	Password string
}

// SignupForm is the raw signup input.
type SignupForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// Login validates a login form.
func Login(form LoginForm) map[string]string {
	errs := map[string]string{}
	checkEmail(errs, form.Email)
	switch {
	case form.Password == "":
		errs["password"] = "Password is required"
	case utf8.RuneCountInString(form.Password) < 6:
		errs["password"] = "Password must be at least 6 characters"
	}
	return collapse(errs)
}

// Signup validates a signup form. A password mismatch attaches to
// confirmPassword, not password.
func Signup(form SignupForm) map[string]string {
	errs := map[string]string{}
	switch n := utf8.RuneCountInString(form.Name); {
	case form.Name == "":
		errs["name"] = "Name is required"
	case n < 2:
		errs["name"] = "Name must be at least 2 characters"
	case n > 50:
		errs["name"] = "Name must not exceed 50 characters"
	}
	checkEmail(errs, form.Email)
	switch n := utf8.RuneCountInString(form.Password); {
	case form.Password == "":
		errs["password"] = "Password is required"
	case n < 6:
		errs["password"] = "Password must be at least 6 characters"
	case n > 100:
		errs["password"] = "Password must not exceed 100 characters"
	}
	switch {
	case form.ConfirmPassword == "":
		errs["confirmPassword"] = "Please confirm your password"
	case form.ConfirmPassword != form.Password:
		errs["confirmPassword"] = "Passwords do not match"
	}
	return collapse(errs)
}

// Ticket validates a full ticket form.
func Ticket(form domain.TicketForm) map[string]string {
	errs := map[string]string{}
	checkTitle(errs, form.Title)
	checkDescription(errs, form.Description)
	if !domain.ValidStatus(form.Status) {
		errs["status"] = "Status must be one of open, in_progress or closed"
	}
	if form.Priority != "" && !domain.ValidPriority(form.Priority) {
		errs["priority"] = "Priority must be one of low, medium or high"
	}
	return collapse(errs)
}

// TicketPatch validates the fields present in a partial update; absent
// fields are not checked.
func TicketPatch(patch domain.TicketPatch) map[string]string {
	errs := map[string]string{}
	if patch.Title != nil {
		checkTitle(errs, *patch.Title)
	}
	if patch.Description != nil {
		checkDescription(errs, *patch.Description)
	}
	if patch.Status != nil && !domain.ValidStatus(*patch.Status) {
		errs["status"] = "Status must be one of open, in_progress or closed"
	}
	if patch.Priority != nil && *patch.Priority != "" && !domain.ValidPriority(*patch.Priority) {
		errs["priority"] = "Priority must be one of low, medium or high"
	}
	return collapse(errs)
}

func checkEmail(errs map[string]string, email string) {
	switch {
	case email == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(email):
		errs["email"] = "Please enter a valid email address"
	}
}

func checkTitle(errs map[string]string, title string) {
	switch n := utf8.RuneCountInString(title); {
	case title == "":
		errs["title"] = "Title is required"
	case n < 3:
		errs["title"] = "Title must be at least 3 characters"
	case n > 100:
		errs["title"] = "Title must not exceed 100 characters"
	}
}

func checkDescription(errs map[string]string, description string) {
	if utf8.RuneCountInString(description) > 500 {
		errs["description"] = "Description must not exceed 500 characters"
	}
}

func collapse(errs map[string]string) map[string]string {
	if len(errs) == 0 {
		return nil
	}
	return errs
}
