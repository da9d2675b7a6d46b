// Package recovery runs a full key recovery: target check, search, report.
package recovery

import (
	"errors"

	"caesar_cipher/internal/cryptographic/caesar"
	"caesar_cipher/internal/model"
	"caesar_cipher/internal/protocol/bruteforce"
	"caesar_cipher/internal/repository/report"
	"caesar_cipher/internal/utils/log"

	"go.uber.org/zap"
)

type (
	Request struct {
		Ciphertext string
		Marker     string
		Output     string
		Observer   bruteforce.Observer
	}

	Recoverer struct {
		cipher *caesar.Cipher
	}
)

func NewRecoverer(c *caesar.Cipher) *Recoverer {
	if c == nil {
		c = caesar.New(nil)
	}
	return &Recoverer{
		cipher: c,
	}
}

func (r *Recoverer) Cipher() *caesar.Cipher {
	return r.cipher
}

// Recover checks the output target before searching so that an unusable
// path aborts without work. When no key matches it returns
// bruteforce.ErrKeyNotFound and writes nothing.
func (r *Recoverer) Recover(req Request) (*model.Candidate, error) {
	if req.Marker == "" {
		req.Marker = bruteforce.DefaultMarker
	}

	if err := report.CheckTarget(req.Output); err != nil {
		return nil, err
	}

	found, err := bruteforce.Search(r.cipher, req.Ciphertext, req.Marker, req.Observer)
	if errors.Is(err, bruteforce.ErrKeyNotFound) {
		log.Info("no key produced the marker", zap.String("marker", req.Marker))
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	if err := report.Write(req.Output, *found); err != nil {
		return found, err
	}

	log.Info("key recovered",
		zap.Int("key", found.Key),
		zap.String("output", req.Output))
	return found, nil
}
