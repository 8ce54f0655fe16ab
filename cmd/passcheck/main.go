// passcheck - demonstration of the password policy check
// Reads a candidate password from stdin and reports whether it meets
// the registration policy. Takes no flags or arguments; pipe the
// password in, or run interactively for a no-echo prompt.
//
// Exit codes: 0 valid, 1 not valid, 2 read error.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"syscall"

	"golang.org/x/term"

	"github.com/credlib/passcheck/password"
)

func main() {
	candidate, err := readPassword("Password: ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	checks := password.Check(string(candidate))
	if checks.OK() {
		fmt.Println("Password is valid. Thank you for joining!")
		return
	}

	fmt.Println("Password is not valid. Please try again.")
	for _, miss := range missing(checks) {
		fmt.Printf("  - %s\n", miss)
	}
	os.Exit(1)
}

// missing lists the unmet constraints in policy order.
func missing(c password.Checks) []string {
	var out []string
	if !c.MinLength {
		out = append(out, fmt.Sprintf("at least %d characters", password.MinLength))
	}
	if !c.Lowercase {
		out = append(out, "a lowercase letter")
	}
	if !c.Uppercase {
		out = append(out, "an uppercase letter")
	}
	if !c.Numeric {
		out = append(out, "a numeric character")
	}
	if !c.Special {
		out = append(out, "a special character ("+password.SpecialChars+")")
	}
	return out
}

// readPassword reads a password from stdin. If stdin is a terminal, it
// prints the prompt and reads without echoing. If stdin is a pipe, it
// reads directly and trims the trailing newline.
func readPassword(prompt string) ([]byte, error) {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat stdin: %w", err)
	}

	// A character device indicates a terminal
	if (fi.Mode() & os.ModeCharDevice) != 0 {
		fmt.Print(prompt)
		bytePassword, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return nil, err
		}
		// Add a newline because terminal reads don't echo the Enter key
		fmt.Println()
		return bytePassword, nil
	}

	bytePassword, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read password from stdin: %w", err)
	}
	return bytes.TrimRight(bytePassword, "\r\n"), nil
}
