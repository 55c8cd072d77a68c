package core

import (
	"errors"
	"strings"
	"testing"
)

func validCreateInput() CreateUserInput {
	return CreateUserInput{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "SecurePass123",
		PasswordConfirm: "SecurePass123",
	}
}

func TestCreateUserInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateUserInput)
		wantErr error
	}{
		{
			name:   "valid payload passes",
			mutate: func(in *CreateUserInput) {},
		},
		{
			name:    "empty username",
			mutate:  func(in *CreateUserInput) { in.Username = "" },
			wantErr: ErrUsernameRequired,
		},
		{
			name:    "username too long",
			mutate:  func(in *CreateUserInput) { in.Username = strings.Repeat("a", 151) },
			wantErr: ErrUsernameTooLong,
		},
		{
			name:    "empty email",
			mutate:  func(in *CreateUserInput) { in.Email = "" },
			wantErr: ErrEmailRequired,
		},
		{
			name:    "malformed email",
			mutate:  func(in *CreateUserInput) { in.Email = "not-an-email" },
			wantErr: ErrInvalidEmail,
		},
		{
			name: "empty password",
			mutate: func(in *CreateUserInput) {
				in.Password = ""
				in.PasswordConfirm = ""
			},
			wantErr: ErrPasswordRequired,
		},
		{
			name: "password too short",
			mutate: func(in *CreateUserInput) {
				in.Password = "short"
				in.PasswordConfirm = "short"
			},
			wantErr: ErrPasswordTooShort,
		},
		{
			name: "password too long",
			mutate: func(in *CreateUserInput) {
				long := strings.Repeat("p", 129)
				in.Password = long
				in.PasswordConfirm = long
			},
			wantErr: ErrPasswordTooLong,
		},
		{
			name:    "password confirmation mismatch",
			mutate:  func(in *CreateUserInput) { in.PasswordConfirm = "SomethingElse123" },
			wantErr: ErrPasswordMismatch,
		},
		{
			name: "bio too long",
			mutate: func(in *CreateUserInput) {
				in.Bio = strings.Repeat("b", 501)
			},
			wantErr: ErrBioTooLong,
		},
		{
			name: "phone too long",
			mutate: func(in *CreateUserInput) {
				phone := strings.Repeat("1", 16)
				in.Phone = &phone
			},
			wantErr: ErrPhoneTooLong,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			in := validCreateInput()
			test.mutate(&in)

			err := in.Validate()
			if test.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, test.wantErr)
			}
		})
	}
}

func TestUpdateUserInputValidate(t *testing.T) {
	longBio := strings.Repeat("b", 501)
	okBio := "short bio"

	if err := (&UpdateUserInput{Bio: &okBio}).Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if err := (&UpdateUserInput{Bio: &longBio}).Validate(); !errors.Is(err, ErrBioTooLong) {
		t.Fatalf("Validate() = %v, want ErrBioTooLong", err)
	}
	// Empty update is valid: every field unchanged.
	if err := (&UpdateUserInput{}).Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}
