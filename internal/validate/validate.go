package validate

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"unicode"
)

const (
	MinPasswordLen = 8
	MaxPasswordLen = 72
	MaxUsernameLen = 64
)

// NewAccount validates the fields of a local account. Accounts without a password, such as the instance
// actor, skip the password and email checks.
func NewAccount(name, password, email string) error {
	var errs = []error{}

	errs = append(errs, Username(name))

	if password != "" || email != "" {
		errs = append(errs, Email(email))
		errs = append(errs, Password(password))
	}

	return errors.Join(errs...)
}

func Password(password string) error {
	l := len(password)
	switch {
	case l == 0:
		return errors.New("empty password")
	case l < MinPasswordLen:
		return fmt.Errorf("password too short; min %d characters", MinPasswordLen)
	case l > MaxPasswordLen:
		return fmt.Errorf("password too long; max %d characters", MaxPasswordLen)
	}
	return nil
}

func Email(email string) error {
	if len(email) == 0 {
		return errors.New("empty email")
	}
	_, err := mail.ParseAddress(email)

	return err
}

// Username checks a local username. Beyond the length limits, it must be free of control characters,
// whitespace and the characters that delimit handles and paths.
func Username(username string) error {
	if l := len(username); l == 0 {
		return errors.New("empty username")
	} else if l > MaxUsernameLen {
		return fmt.Errorf("username too long; max %d characters", MaxUsernameLen)
	}

	if err := NoControl(username); err != nil {
		return err
	}
	if strings.IndexFunc(username, unicode.IsSpace) >= 0 || strings.ContainsAny(username, "@/?#:%") {
		return fmt.Errorf("username %q contains forbidden characters", username)
	}
	return nil
}

// NoControl rejects strings holding control characters.
func NoControl(s string) error {
	if i := strings.IndexFunc(s, unicode.IsControl); i >= 0 {
		return fmt.Errorf("control character at offset %d", i)
	}
	return nil
}

// AbsoluteURL checks that s is an absolute http or https URL with a host.
func AbsoluteURL(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return fmt.Errorf("%q is not an http url", s)
	}
	if u.Host == "" {
		return fmt.Errorf("%q has no host", s)
	}
	return nil
}
