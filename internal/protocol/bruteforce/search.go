// Package bruteforce recovers a shift key by trying every key in order.
package bruteforce

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"caesar_cipher/internal/cryptographic/caesar"
	"caesar_cipher/internal/model"
)

const DefaultMarker = "password"

var (
	ErrKeyNotFound = errors.New("key not found")
	ErrEmptyMarker = errors.New("marker cannot be empty")
)

// Observer is notified of every trial in ascending key order.
// Returning an error stops the search.
type Observer func(model.Candidate) error

// Candidates decrypts ciphertext with every key from 0 to KeySpace-1.
func Candidates(c *caesar.Cipher, ciphertext string) []model.Candidate {
	res := make([]model.Candidate, 0, c.KeySpace())
	for key := 0; key < c.KeySpace(); key++ {
		res = append(res, model.Candidate{
			Key:  key,
			Text: c.Decrypt(ciphertext, key),
		})
	}
	return res
}

// Search returns the lowest key whose decryption contains marker, compared
// case-insensitively. Keys after the match are not tried.
func Search(c *caesar.Cipher, ciphertext, marker string, observer Observer) (*model.Candidate, error) {
	if marker == "" {
		return nil, ErrEmptyMarker
	}
	needle := strings.ToLower(marker)

	for key := 0; key < c.KeySpace(); key++ {
		candidate := model.Candidate{
			Key:  key,
			Text: c.Decrypt(ciphertext, key),
		}

		if observer != nil {
			if err := observer(candidate); err != nil {
				return nil, fmt.Errorf("observer at key %d: %w", key, err)
			}
		}

		if Matches(candidate.Text, needle) {
			return &candidate, nil
		}
	}

	return nil, ErrKeyNotFound
}

// Matches reports whether text contains the already lowercased marker.
func Matches(text, lowerMarker string) bool {
	return strings.Contains(strings.ToLower(text), lowerMarker)
}

// Listing writes "<key>: <text>" lines for manual inspection.
func Listing(w io.Writer) Observer {
	return func(c model.Candidate) error {
		_, err := fmt.Fprintf(w, "%d: %s\n", c.Key, c.Text)
		return err
	}
}
