package domain

import "strings"

// LoginStep is the position of a visitor in the phone+OTP login wizard.
type LoginStep string

const (
	LoginStepPhone   LoginStep = "phone"
	LoginStepOTP     LoginStep = "otp"
	LoginStepDetails LoginStep = "details"
	LoginStepDone    LoginStep = "done"
)

// LoginState tracks the wizard for one session.
type LoginState struct {
	Step  LoginStep
	Phone string
	User  *User
}

// DefaultLoginState returns the wizard at its first step.
func DefaultLoginState() LoginState {
	return LoginState{Step: LoginStepPhone}
}

// NeedsProfile returns true when the API created the user with a placeholder email
func NeedsProfile(u *User) bool {
	return u != nil && strings.Contains(strings.ToLower(u.Email), PlaceholderEmailHost)
}
