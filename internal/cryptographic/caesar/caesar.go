// Package caesar implements a shift cipher over a fixed alphabet.
package caesar

import (
	"strings"
	"sync"
	"unicode/utf8"
)

type (
	Cipher struct {
		alphabet *Alphabet

		mu      sync.Mutex
		lastKey *int
	}
)

// New returns a cipher over alphabet, or over the default alphabet when nil.
func New(alphabet *Alphabet) *Cipher {
	if alphabet == nil {
		alphabet = DefaultAlphabet()
	}
	return &Cipher{
		alphabet: alphabet,
	}
}

func (c *Cipher) Alphabet() *Alphabet {
	return c.alphabet
}

// KeySpace is the number of distinct keys.
func (c *Cipher) KeySpace() int {
	return c.alphabet.Len()
}

// Normalize maps any integer key into [0, KeySpace).
func (c *Cipher) Normalize(key int) int {
	return mod(key, c.alphabet.Len())
}

// LastKey reports the key of the most recent Encrypt or Decrypt call.
func (c *Cipher) LastKey() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastKey == nil {
		return 0, false
	}
	return *c.lastKey, true
}

func (c *Cipher) Encrypt(message string, key int) string {
	c.remember(key)
	return c.shift(message, key)
}

func (c *Cipher) Decrypt(message string, key int) string {
	c.remember(key)
	// normalize first: -math.MinInt overflows back to itself
	return c.shift(message, -c.Normalize(key))
}

func (c *Cipher) remember(key int) {
	c.mu.Lock()
	c.lastKey = &key
	c.mu.Unlock()
}

func (c *Cipher) shift(message string, key int) string {
	if message == "" {
		return ""
	}

	// avoid overflow on extreme keys before adding the index
	key = c.Normalize(key)

	var b strings.Builder
	b.Grow(len(message))
	for i := 0; i < len(message); {
		r, size := utf8.DecodeRuneInString(message[i:])
		pos, ok := c.alphabet.Index(r)
		switch {
		case r == utf8.RuneError && size == 1:
			// invalid UTF-8 is copied byte for byte
			b.WriteByte(message[i])
		case !ok:
			b.WriteString(message[i : i+size])
		default:
			b.WriteRune(c.alphabet.At(pos + key))
		}
		i += size
	}
	return b.String()
}
