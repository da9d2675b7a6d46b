package app

import (
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"caesar_cipher/internal/model"
	"caesar_cipher/internal/protocol/bruteforce"
	"caesar_cipher/internal/repository/report"
	"caesar_cipher/internal/service/server"
	"caesar_cipher/internal/utils/log"
)

const sampleCiphertext = "o3zR v..D0?yRA0R8FR8v47w0ER4.R1WdC!sLF5D"

func TestMain(m *testing.M) {
	log.SetLogger(nil)
	os.Exit(m.Run())
}

func startServer(t *testing.T) {
	t.Helper()
	ts := httptest.NewServer(server.NewHttpServer(nil, nil).Router())
	t.Cleanup(ts.Close)

	prev := host
	SetHost(strings.TrimPrefix(ts.URL, "http://"))
	t.Cleanup(func() { SetHost(prev) })
}

func TestStreamCrack(t *testing.T) {
	startServer(t)

	c := NewApp()
	conn, err := c.initWebhook()
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	var keys []int
	rec, err := streamCrack(conn, &model.CrackRequest{Ciphertext: sampleCiphertext}, func(cand model.Candidate) {
		keys = append(keys, cand.Key)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Key != 21 {
		t.Errorf("expected key 21, got %d", rec.Key)
	}
	if len(keys) != 22 || keys[0] != 0 || keys[21] != 21 {
		t.Errorf("unexpected candidate keys %v", keys)
	}
}

func TestStreamCrackNotFound(t *testing.T) {
	startServer(t)

	conn, err := NewApp().initWebhook()
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	count := 0
	_, err = streamCrack(conn, &model.CrackRequest{Ciphertext: "abc"}, func(model.Candidate) { count++ })
	if !errors.Is(err, bruteforce.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
	if count != 66 {
		t.Errorf("expected 66 candidates, got %d", count)
	}
}

func TestSaveResult(t *testing.T) {
	c := NewApp()
	dir := t.TempDir()

	if err := c.SaveResult(filepath.Join(dir, "none.txt")); !errors.Is(err, bruteforce.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound without a result, got %v", err)
	}

	gen := c.beginSearch()
	if !c.finishSearch(gen, &model.Candidate{Key: 21, Text: "The password to my mailbox is fBIvqX5yjw"}) {
		t.Fatal("latest search must publish its result")
	}

	if err := c.SaveResult(dir); !errors.Is(err, report.ErrInvalidTarget) {
		t.Errorf("expected ErrInvalidTarget, got %v", err)
	}

	out := filepath.Join(dir, "result.txt")
	if err := c.SaveResult(out); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "Подобранный ключ: 21\n") {
		t.Errorf("unexpected report %q", string(data))
	}
}

func TestStaleSearchDoesNotPublish(t *testing.T) {
	c := NewApp()
	out := filepath.Join(t.TempDir(), "result.txt")

	first := c.beginSearch()
	second := c.beginSearch()

	if c.finishSearch(first, &model.Candidate{Key: 3, Text: "from the previous ciphertext"}) {
		t.Fatal("a superseded search must not publish")
	}
	if err := c.SaveResult(out); !errors.Is(err, bruteforce.ErrKeyNotFound) {
		t.Fatalf("expected no result yet, got %v", err)
	}

	if !c.finishSearch(second, &model.Candidate{Key: 21, Text: "The password to my mailbox is fBIvqX5yjw"}) {
		t.Fatal("latest search must publish")
	}
	if c.finishSearch(first, &model.Candidate{Key: 3, Text: "from the previous ciphertext"}) {
		t.Fatal("a superseded search must not overwrite the latest result")
	}
	if err := c.SaveResult(out); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "fBIvqX5yjw") {
		t.Errorf("saved the wrong result: %q", string(data))
	}

	c.beginSearch()
	if c.current(second) {
		t.Errorf("a new search must supersede the previous one")
	}
}
