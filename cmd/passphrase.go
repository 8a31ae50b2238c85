package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rnwolfe/habitkit/internal/archive"
	"github.com/rnwolfe/habitkit/internal/ui"
	"golang.org/x/term"
)

const passphraseEnv = "HABITKIT_PASSPHRASE"

// readPassphrase returns the archive passphrase from HABITKIT_PASSPHRASE, or
// prompts for it on the terminal. confirm asks twice.
func readPassphrase(confirm bool) (string, error) {
	if p := os.Getenv(passphraseEnv); p != "" {
		return p, nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("passphrase required: set %s or run interactively", passphraseEnv)
	}

	fmt.Fprint(os.Stderr, ui.Muted.Render("  Passphrase: "))
	passBytes, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading passphrase: %w", err)
	}

	passphrase := strings.TrimSpace(string(passBytes))
	if passphrase == "" {
		return "", fmt.Errorf("passphrase can't be empty")
	}

	if confirm {
		fmt.Fprint(os.Stderr, ui.Muted.Render("  Confirm passphrase: "))
		confirmBytes, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading passphrase confirmation: %w", err)
		}
		if passphrase != strings.TrimSpace(string(confirmBytes)) {
			return "", fmt.Errorf("passphrases do not match")
		}
	}
	return passphrase, nil
}

// archiveError turns archive sentinels into user-facing hints.
func archiveError(err error) error {
	switch {
	case errors.Is(err, archive.ErrWrongPassphrase):
		return fmt.Errorf("wrong passphrase, double-check %s or try again interactively", passphraseEnv)
	case errors.Is(err, archive.ErrCorruptedArchive):
		return fmt.Errorf("can't read archive: %w", err)
	}
	return err
}
