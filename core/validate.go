package core

import "regexp"

const (
	maxUsernameLen = 150
	maxPhoneLen    = 15
	maxBioLen      = 500

	minPasswordLen = 8
	maxPasswordLen = 128
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validate checks a creation payload in its entirety. A payload either
// fully validates or is rejected; there is no field-level partial success.
// Uniqueness of username/email is the storage layer's job.
func (in *CreateUserInput) Validate() error {
	if in.Username == "" {
		return ErrUsernameRequired
	}
	if len(in.Username) > maxUsernameLen {
		return ErrUsernameTooLong
	}
	if in.Email == "" {
		return ErrEmailRequired
	}
	if !emailPattern.MatchString(in.Email) {
		return ErrInvalidEmail
	}
	if in.Password == "" {
		return ErrPasswordRequired
	}
	if len(in.Password) < minPasswordLen {
		return ErrPasswordTooShort
	}
	if len(in.Password) > maxPasswordLen {
		return ErrPasswordTooLong
	}
	if in.Password != in.PasswordConfirm {
		return ErrPasswordMismatch
	}
	return validateProfile(in.Phone, &in.Bio)
}

// Validate checks an update payload. Only profile fields exist here, so
// only bounded-length constraints apply.
func (in *UpdateUserInput) Validate() error {
	return validateProfile(in.Phone, in.Bio)
}

func validateProfile(phone *string, bio *string) error {
	if phone != nil && len(*phone) > maxPhoneLen {
		return ErrPhoneTooLong
	}
	if bio != nil && len(*bio) > maxBioLen {
		return ErrBioTooLong
	}
	return nil
}
