package caesar

import (
	"errors"
	"math"
	"testing"
	"unicode/utf8"
)

var messages = []string{
	"",
	"A",
	"Hello World",
	"The password to my mailbox is fBIvqX5yjw",
	"o3zR v..D0?yRA0R8FR8v47w0ER4.R1WdC!sLF5D",
	"comma, dash - and semicolons; stay put",
	"Привет, мир! 日本語 ok?",
	"\t\n",
	"A\xffB",
	"\xc3(bad\x80 utf8\xfe",
}

var keys = []int{0, 1, 5, 21, 47, 65, 66, 67, 132, -1, -66, -67, 1000003, math.MaxInt, math.MinInt}

func TestDefaultAlphabet(t *testing.T) {
	a := DefaultAlphabet()
	if a.Len() != 66 {
		t.Fatalf("expected 66 symbols, got %d", a.Len())
	}
	if a.String() != Symbols {
		t.Errorf("expected %q, got %q", Symbols, a.String())
	}
	for i, r := range []rune(Symbols) {
		got, ok := a.Index(r)
		if !ok || got != i {
			t.Errorf("Index(%q) = %d, %v; want %d", r, got, ok, i)
		}
	}
	if _, ok := a.Index(','); ok {
		t.Errorf("',' must not be in the alphabet")
	}
}

func TestNewAlphabetErrors(t *testing.T) {
	if _, err := NewAlphabet(""); !errors.Is(err, ErrEmptyAlphabet) {
		t.Errorf("expected ErrEmptyAlphabet, got %v", err)
	}
	if _, err := NewAlphabet("ABCA"); !errors.Is(err, ErrDuplicateSymbol) {
		t.Errorf("expected ErrDuplicateSymbol, got %v", err)
	}
}

func TestEncryptDecryptScenarios(t *testing.T) {
	c := New(nil)

	if got := c.Encrypt("A", 1); got != "B" {
		t.Errorf("Encrypt(A, 1) = %q, want B", got)
	}
	if got := c.Decrypt("B", 1); got != "A" {
		t.Errorf("Decrypt(B, 1) = %q, want A", got)
	}
	if got := c.Encrypt(".", 1); got != "A" {
		t.Errorf("Encrypt(., 1) = %q, want wrap to A", got)
	}
	if got := c.Decrypt("A", 1); got != "." {
		t.Errorf("Decrypt(A, 1) = %q, want wrap to .", got)
	}

	encrypted := c.Encrypt("Hello World", 5)
	if encrypted == "Hello World" {
		t.Errorf("encrypted text should differ from the original")
	}
	if decrypted := c.Decrypt(encrypted, 5); decrypted != "Hello World" {
		t.Errorf("expected Hello World, got %q", decrypted)
	}
}

func TestRoundTrip(t *testing.T) {
	c := New(nil)
	for _, m := range messages {
		for _, k := range keys {
			if got := c.Decrypt(c.Encrypt(m, k), k); got != m {
				t.Errorf("round trip of %q with key %d gave %q", m, k, got)
			}
		}
	}
}

func TestIdentityAtZero(t *testing.T) {
	c := New(nil)
	for _, m := range messages {
		if got := c.Encrypt(m, 0); got != m {
			t.Errorf("Encrypt(%q, 0) = %q", m, got)
		}
		if got := c.Decrypt(m, 0); got != m {
			t.Errorf("Decrypt(%q, 0) = %q", m, got)
		}
	}
}

func TestModularEquivalence(t *testing.T) {
	c := New(nil)
	n := c.KeySpace()
	for _, m := range messages {
		for _, k := range []int{0, 3, 21, -4, -70, 500} {
			if a, b := c.Encrypt(m, k), c.Encrypt(m, k+n); a != b {
				t.Errorf("key %d and %d disagree on %q: %q vs %q", k, k+n, m, a, b)
			}
		}
	}
}

func TestPassThroughAndLength(t *testing.T) {
	c := New(nil)
	a := c.Alphabet()
	for _, m := range messages {
		for _, k := range keys {
			for _, out := range []string{c.Encrypt(m, k), c.Decrypt(m, k)} {
				// the default alphabet is ASCII, so bytes are preserved too
				if len(out) != len(m) {
					t.Fatalf("byte length changed for %q with key %d", m, k)
				}
				if utf8.RuneCountInString(out) != utf8.RuneCountInString(m) {
					t.Fatalf("length changed for %q with key %d", m, k)
				}
				in, got := []rune(m), []rune(out)
				for i, r := range in {
					if _, ok := a.Index(r); !ok && got[i] != r {
						t.Errorf("foreign rune %q at %d changed to %q (key %d)", r, i, got[i], k)
					}
				}
			}
		}
	}
}

func TestNormalize(t *testing.T) {
	c := New(nil)
	tests := []struct {
		key  int
		want int
	}{
		{0, 0},
		{65, 65},
		{66, 0},
		{-1, 65},
		{-66, 0},
		{-67, 65},
		{133, 1},
	}
	for _, tt := range tests {
		if got := c.Normalize(tt.key); got != tt.want {
			t.Errorf("Normalize(%d) = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestLastKey(t *testing.T) {
	c := New(nil)
	if _, ok := c.LastKey(); ok {
		t.Fatalf("fresh cipher should have no last key")
	}
	c.Encrypt("x", 7)
	if k, ok := c.LastKey(); !ok || k != 7 {
		t.Errorf("LastKey = %d, %v; want 7", k, ok)
	}
	c.Decrypt("x", -3)
	if k, _ := c.LastKey(); k != -3 {
		t.Errorf("LastKey = %d; want -3", k)
	}
}

func TestCustomAlphabet(t *testing.T) {
	a, err := NewAlphabet("ABC")
	if err != nil {
		t.Fatal(err)
	}
	c := New(a)
	if got := c.Encrypt("ABCD", 1); got != "BCAD" {
		t.Errorf("expected BCAD, got %q", got)
	}
	if got := c.Decrypt("BCAD", 4); got != "ABCD" {
		t.Errorf("expected ABCD, got %q", got)
	}
}

func TestInvalidUTF8PassThrough(t *testing.T) {
	c := New(nil)

	enc := c.Encrypt("A\xffB", 3)
	if enc != "D\xffE" {
		t.Errorf("expected %q, got %q", "D\xffE", enc)
	}
	if got := c.Decrypt(enc, 3); got != "A\xffB" {
		t.Errorf("round trip gave %q", got)
	}
	if got := c.Encrypt("A\xffB", 0); got != "A\xffB" {
		t.Errorf("identity at 0 gave %q", got)
	}
}
