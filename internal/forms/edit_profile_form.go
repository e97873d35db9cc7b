package forms

// EditProfileForm validates a profile edit submission.
type EditProfileForm struct {
	CSRF      CSRF
	FirstName string
	LastName  string
}

// NewEditProfileForm builds the form.
func NewEditProfileForm(csrf CSRF, firstName, lastName string) *EditProfileForm {
	return &EditProfileForm{CSRF: csrf, FirstName: firstName, LastName: lastName}
}

// Validate evaluates all rules and aggregates every failure.
func (f *EditProfileForm) Validate() Errors {
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
	return errs
}
