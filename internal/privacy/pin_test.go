package privacy

import (
	"testing"

	"github.com/zalando/go-keyring"
)

func TestSetAndVerifyPIN(t *testing.T) {
	keyring.MockInit()
	l := New()

	if err := l.SetPIN("1234"); err != nil {
		t.Fatalf("SetPIN failed: %v", err)
	}

	ok, err := l.VerifyPIN("1234")
	if err != nil {
		t.Fatalf("VerifyPIN failed: %v", err)
	}
	if !ok {
		t.Error("correct PIN must verify")
	}

	ok, err = l.VerifyPIN("9999")
	if err != nil {
		t.Fatalf("VerifyPIN failed: %v", err)
	}
	if ok {
		t.Error("wrong PIN must not verify")
	}
}

func TestSetPIN_RejectsBadFormats(t *testing.T) {
	keyring.MockInit()
	l := New()

	for _, pin := range []string{"", "123", "1234567", "12ab", "১২৩৪"} {
		if err := l.SetPIN(pin); err == nil {
			t.Errorf("PIN %q must be rejected", pin)
		}
	}
}

func TestVerifyPIN_MissingIsFalseNotError(t *testing.T) {
	keyring.MockInit()
	l := New()

	ok, err := l.VerifyPIN("1234")
	if err != nil {
		t.Fatalf("missing PIN must not error, got %v", err)
	}
	if ok {
		t.Error("missing PIN must verify false")
	}
}

func TestClearPIN(t *testing.T) {
	keyring.MockInit()
	l := New()

	// Clearing an absent PIN is fine.
	if err := l.ClearPIN(); err != nil {
		t.Fatalf("ClearPIN on empty keyring failed: %v", err)
	}

	if err := l.SetPIN("123456"); err != nil {
		t.Fatal(err)
	}
	if err := l.ClearPIN(); err != nil {
		t.Fatalf("ClearPIN failed: %v", err)
	}
	if ok, err := l.VerifyPIN("123456"); err != nil || ok {
		t.Errorf("PIN must be gone after clear, got ok=%v err=%v", ok, err)
	}
}
