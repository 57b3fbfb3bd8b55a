package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "alice", false},
		{"with dot and digits", "alice.smith01", false},
		{"email style", "bob@example.com", false},
		{"empty", "", true},
		{"with space", "al ice", true},
		{"with colon", "acct:alice", true},
		{"with wildcard", "ali*", true},
		{"max length", strings.Repeat("a", MaxNameLength), false},
		{"too long", strings.Repeat("a", MaxNameLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "secret", false},
		{"minimum length", "abcd", false},
		{"multibyte counted by rune", "パスワード", false},
		{"empty", "", true},
		{"too short", "abc", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePassword(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestParseBalance(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"empty is zero", "", 0, false},
		{"blank is zero", "  ", 0, false},
		{"integer", "100", 100, false},
		{"decimal", "12.5", 12.5, false},
		{"zero", "0", 0, false},
		{"negative", "-1", 0, true},
		{"not a number", "abc", 0, true},
		{"NaN", "NaN", 0, true},
		{"infinity", "+Inf", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBalance(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBalance(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseBalance(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateAccount(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		input := NormalizeAccountInput(&AccountInput{Name: "  alice ", Password: "secret", Balance: " 10 "})
		if errs := ValidateAccount(input); len(errs) != 0 {
			t.Errorf("expected no errors, got %v", errs)
		}
		if input.Name != "alice" {
			t.Errorf("Name = %q, want %q", input.Name, "alice")
		}
		if input.Balance != "10" {
			t.Errorf("Balance = %q, want %q", input.Balance, "10")
		}
	})

	t.Run("collects all errors", func(t *testing.T) {
		errs := ValidateAccount(&AccountInput{Name: "", Password: "", Balance: "x"})
		if len(errs) != 3 {
			t.Fatalf("expected 3 errors, got %d: %v", len(errs), errs)
		}
		var verr *AccountValidationError
		if !errors.As(errs[0], &verr) {
			t.Fatalf("expected AccountValidationError, got %T", errs[0])
		}
		if verr.Field != "Name" {
			t.Errorf("Field = %q, want %q", verr.Field, "Name")
		}
		if errs[0].Error() != "Name: required" {
			t.Errorf("Error() = %q, want %q", errs[0].Error(), "Name: required")
		}
	})

	t.Run("password is not trimmed", func(t *testing.T) {
		input := NormalizeAccountInput(&AccountInput{Name: "bob", Password: " pw "})
		if input.Password != " pw " {
			t.Errorf("Password = %q, want %q", input.Password, " pw ")
		}
	})
}
