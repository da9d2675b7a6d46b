package caesar

import (
	"errors"
	"fmt"
)

// Symbols is the default substitution alphabet.
const Symbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz1234567890 !?."

var (
	ErrEmptyAlphabet   = errors.New("alphabet is empty")
	ErrDuplicateSymbol = errors.New("alphabet has a duplicate symbol")

	defaultAlphabet = mustAlphabet(Symbols)
)

type (
	// Alphabet is an immutable ordered set of runes with a position table.
	Alphabet struct {
		symbols  []rune
		position map[rune]int
	}
)

func NewAlphabet(symbols string) (*Alphabet, error) {
	runes := []rune(symbols)
	if len(runes) == 0 {
		return nil, ErrEmptyAlphabet
	}

	position := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, ok := position[r]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, r)
		}
		position[r] = i
	}

	return &Alphabet{
		symbols:  runes,
		position: position,
	}, nil
}

func DefaultAlphabet() *Alphabet {
	return defaultAlphabet
}

func mustAlphabet(symbols string) *Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

func (a *Alphabet) Len() int {
	return len(a.symbols)
}

func (a *Alphabet) Index(r rune) (int, bool) {
	i, ok := a.position[r]
	return i, ok
}

// At returns the symbol at i mod Len.
func (a *Alphabet) At(i int) rune {
	return a.symbols[mod(i, len(a.symbols))]
}

func (a *Alphabet) String() string {
	return string(a.symbols)
}

// mod is the non-negative remainder, unlike Go's % which truncates.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
