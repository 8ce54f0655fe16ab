// Package password decides whether a candidate password meets the
// registration policy: at least 6 characters, with at least one
// lowercase letter, one uppercase letter, one numeric character, and
// one character from the fixed special set.
//
// Classification is Unicode-aware: case checks use unicode.IsUpper and
// unicode.IsLower, the numeric check uses unicode.IsNumber (categories
// Nd, Nl, No), and length counts characters, not bytes. Characters
// from case-less scripts satisfy neither case requirement.
package password

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SpecialChars is the fixed set of characters that satisfy the
// special-character requirement. It is never extended at runtime.
const SpecialChars = "!?&%*@"

// MinLength is the minimum number of characters a password must have.
const MinLength = 6

// Checks holds the result of each policy constraint. A password is
// acceptable only when every field is true.
type Checks struct {
	MinLength bool
	Lowercase bool
	Uppercase bool
	Numeric   bool
	Special   bool
}

// OK reports whether all constraints are met.
func (c Checks) OK() bool {
	return c.MinLength && c.Lowercase && c.Uppercase && c.Numeric && c.Special
}

// Check evaluates every policy constraint against the candidate
// password. It is pure and total: any string input, including the
// empty string, yields a result.
func Check(password string) Checks {
	checks := Checks{
		MinLength: utf8.RuneCountInString(password) >= MinLength,
	}

	for _, char := range password {
		switch {
		case unicode.IsLower(char):
			checks.Lowercase = true
		case unicode.IsUpper(char):
			checks.Uppercase = true
		case unicode.IsNumber(char):
			checks.Numeric = true
		case strings.ContainsRune(SpecialChars, char):
			checks.Special = true
		}
	}

	return checks
}

// IsValid reports whether the candidate password satisfies the whole
// policy. It is safe to call concurrently; no state is shared between
// calls.
func IsValid(password string) bool {
	return Check(password).OK()
}
