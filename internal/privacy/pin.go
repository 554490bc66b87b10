// Package privacy keeps the optional app-lock PIN in the operating system
// keyring, never in the data file.
package privacy

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/zalando/go-keyring"

	"github.com/arifmahmud/nishwash/internal/apperr"
)

const (
	service = "nishwash"
	account = "app-pin"
)

type Locker struct{}

func New() *Locker {
	return &Locker{}
}

// SetPIN stores a 4-6 digit PIN in the keyring.
func (l *Locker) SetPIN(pin string) error {
	if len(pin) < 4 || len(pin) > 6 {
		return fmt.Errorf("পিন ৪ থেকে ৬ সংখ্যার হতে হবে")
	}
	for _, r := range pin {
		if !unicode.IsDigit(r) {
			return fmt.Errorf("পিন শুধু সংখ্যা দিয়ে গঠিত হতে হবে")
		}
	}
	if err := keyring.Set(service, account, pin); err != nil {
		return apperr.New(apperr.KindPermission, "privacy.pin.set", err)
	}
	return nil
}

// VerifyPIN reports whether the candidate matches the stored PIN. A missing
// PIN verifies false without error.
func (l *Locker) VerifyPIN(candidate string) (bool, error) {
	stored, err := keyring.Get(service, account)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return false, nil
		}
		return false, apperr.New(apperr.KindPermission, "privacy.pin.verify", err)
	}
	return stored == candidate, nil
}

// ClearPIN removes the stored PIN; clearing an absent PIN is not an error.
func (l *Locker) ClearPIN() error {
	if err := keyring.Delete(service, account); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return apperr.New(apperr.KindPermission, "privacy.pin.clear", err)
	}
	return nil
}
