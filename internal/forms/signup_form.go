package forms

import (
	"context"
	"errors"

	"github.com/cliphaven/backend/internal/repositories"
	"gorm.io/gorm"
)

// SignupForm validates a signup submission, including uniqueness of
// username and email against the credential store.
type SignupForm struct {
	CSRF      CSRF
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string

	users repositories.UserRepository
}

// NewSignupForm builds the form over the user repository.
func NewSignupForm(csrf CSRF, firstName, lastName, username, email, password string, users repositories.UserRepository) *SignupForm {
	return &SignupForm{
		CSRF:      csrf,
		FirstName: firstName,
		LastName:  lastName,
		Username:  username,
		Email:     email,
		Password:  password,
		users:     users,
	}
}

// Validate evaluates all rules and aggregates every failure.
func (f *SignupForm) Validate(ctx context.Context) Errors {
	if errs := checkCSRF(f.CSRF); errs != nil {
		return errs
	}

	errs := Errors{}
	if msg := required(f.FirstName); msg != "" {
		errs.Add("first_name", msg)
	}
	if msg := required(f.LastName); msg != "" {
		errs.Add("last_name", msg)
	}
	if msg := required(f.Username); msg != "" {
		errs.Add("username", msg)
	}
	if msg := required(f.Email); msg != "" {
		errs.Add("email", msg)
	} else if msg := emailShape(f.Email); msg != "" {
		errs.Add("email", msg)
	}
	if msg := required(f.Password); msg != "" {
		errs.Add("password", msg)
	}

	if f.Username != "" && f.taken(ctx, "username", f.Username) {
		errs.Add("username", "Username is already in use.")
	}
	if f.Email != "" && f.taken(ctx, "email", f.Email) {
		errs.Add("email", "Email address is already in use.")
	}

	return errs
}

// taken queries the store for an existing user on the given field.
func (f *SignupForm) taken(ctx context.Context, field, value string) bool {
	var err error
	switch field {
	case "username":
		_, err = f.users.GetUserByUsername(ctx, value)
	case "email":
		_, err = f.users.GetUserByEmail(ctx, value)
	}
	return !errors.Is(err, gorm.ErrRecordNotFound)
}
