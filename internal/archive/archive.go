// Package archive exports and imports habit collections as JSON, YAML, or
// age-encrypted (passphrase, ASCII-armored) files.
package archive

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"filippo.io/age"
	"filippo.io/age/armor"
	"gopkg.in/yaml.v3"

	"github.com/rnwolfe/habitkit/internal/habit"
)

var (
	// ErrWrongPassphrase is returned when decryption fails due to a bad passphrase.
	ErrWrongPassphrase = errors.New("wrong passphrase")
	// ErrCorruptedArchive is returned when an archive can't be decrypted or parsed.
	ErrCorruptedArchive = errors.New("archive is corrupted or unreadable")
	// ErrPassphraseRequired is returned when an encrypted archive is read without a passphrase.
	ErrPassphraseRequired = errors.New("archive is encrypted, passphrase required")
)

// Format selects the plaintext encoding of an archive.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts json, yaml or yml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (use json or yaml)", s)
}

// Options controls Export.
type Options struct {
	Format Format
	// Passphrase encrypts the archive with age when non-empty.
	Passphrase string
}

// Export encodes habits according to opts.
func Export(habits []habit.Habit, opts Options) ([]byte, error) {
	if habits == nil {
		habits = []habit.Habit{}
	}

	var plain []byte
	var err error
	switch opts.Format {
	case FormatYAML:
		plain, err = yaml.Marshal(habits)
	default:
		plain, err = json.MarshalIndent(habits, "", "  ")
	}
	if err != nil {
		return nil, fmt.Errorf("encoding archive: %w", err)
	}

	if opts.Passphrase == "" {
		return plain, nil
	}
	return encrypt(plain, opts.Passphrase)
}

// IsEncrypted reports whether data is an armored age file.
func IsEncrypted(data []byte) bool {
	return bytes.HasPrefix(bytes.TrimSpace(data), []byte(armor.Header))
}

// Import decodes an archive produced by Export. Encrypted archives need a
// non-empty passphrase; the format of the plaintext is detected.
func Import(data []byte, passphrase string) ([]habit.Habit, error) {
	if IsEncrypted(data) {
		if passphrase == "" {
			return nil, ErrPassphraseRequired
		}
		plain, err := decrypt(data, passphrase)
		if err != nil {
			return nil, err
		}
		data = plain
	}

	var habits []habit.Habit
	trimmed := bytes.TrimSpace(data)
	if bytes.HasPrefix(trimmed, []byte("[")) {
		if err := json.Unmarshal(trimmed, &habits); err != nil {
			return nil, fmt.Errorf("%w: parsing JSON: %v", ErrCorruptedArchive, err)
		}
	} else {
		if err := yaml.Unmarshal(trimmed, &habits); err != nil {
			return nil, fmt.Errorf("%w: parsing YAML: %v", ErrCorruptedArchive, err)
		}
	}

	habits, err := habit.Normalize(habits)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptedArchive, err)
	}
	return habits, nil
}

func encrypt(plain []byte, passphrase string) ([]byte, error) {
	recipient, err := age.NewScryptRecipient(passphrase)
	if err != nil {
		return nil, fmt.Errorf("creating age recipient: %w", err)
	}

	var buf bytes.Buffer
	armorWriter := armor.NewWriter(&buf)

	w, err := age.Encrypt(armorWriter, recipient)
	if err != nil {
		return nil, fmt.Errorf("initializing age encryption: %w", err)
	}
	if _, err := w.Write(plain); err != nil {
		return nil, fmt.Errorf("encrypting archive: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalizing encryption: %w", err)
	}
	if err := armorWriter.Close(); err != nil {
		return nil, fmt.Errorf("finalizing armor: %w", err)
	}
	return buf.Bytes(), nil
}

func decrypt(raw []byte, passphrase string) ([]byte, error) {
	identity, err := age.NewScryptIdentity(passphrase)
	if err != nil {
		return nil, fmt.Errorf("creating age identity: %w", err)
	}

	r, err := age.Decrypt(armor.NewReader(bytes.NewReader(raw)), identity)
	if err != nil {
		// age has no typed error for a bad passphrase; match its wording.
		msg := err.Error()
		if strings.Contains(msg, "no identity matched") || strings.Contains(msg, "incorrect") {
			return nil, fmt.Errorf("%w: %v", ErrWrongPassphrase, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrCorruptedArchive, err)
	}

	plain, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading decrypted data: %v", ErrCorruptedArchive, err)
	}
	return plain, nil
}

// WriteFile writes data to path atomically: temp file, fsync, rename.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".habitkit-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpName)
		}
	}()

	if err := os.Chmod(tmpName, 0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("setting temp file permissions: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing archive: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("fsyncing archive: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("committing archive file: %w", err)
	}

	success = true
	return nil
}
