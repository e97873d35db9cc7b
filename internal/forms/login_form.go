package forms

import (
	"context"
	"errors"

	"github.com/cliphaven/backend/internal/models"
	"github.com/cliphaven/backend/internal/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// LoginForm validates a login submission against the credential store.
type LoginForm struct {
	CSRF     CSRF
	Email    string
	Password string

	users repositories.UserRepository
}

// NewLoginForm builds the form over the user repository.
func NewLoginForm(csrf CSRF, email, password string, users repositories.UserRepository) *LoginForm {
	return &LoginForm{CSRF: csrf, Email: email, Password: password, users: users}
}

// Validate evaluates all rules and returns the matched user when the
// submission is valid. An unknown email and a wrong password are
// reported on their own fields, mirroring the field the rule declares.
func (f *LoginForm) Validate(ctx context.Context) (Errors, *models.User) {
	if errs := checkCSRF(f.CSRF); errs != nil {
		return errs, nil
	}

	errs := Errors{}
	if msg := required(f.Email); msg != "" {
		errs.Add("email", msg)
	}
	if msg := required(f.Password); msg != "" {
		errs.Add("password", msg)
	}

	var user *models.User
	if f.Email != "" {
		found, err := f.users.GetUserByEmail(ctx, f.Email)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			errs.Add("email", "Email provided not found.")
		case err != nil:
			errs.Add("email", "Email provided not found.")
		default:
			user = found
		}
	}
	if user != nil && f.Password != "" {
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(f.Password)) != nil {
			errs.Add("password", "Password was incorrect.")
		}
	}

	if errs.Any() {
		return errs, nil
	}
	return errs, user
}
