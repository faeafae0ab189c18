package cache

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	rel := "PersonX/IND runs/VB,xAttr,fast/RB"

	if Key(true, rel) == Key(false, rel) {
		t.Error("Expected quantified and unquantified keys to differ")
	}
	if Key(true, rel) != Key(true, rel) {
		t.Error("Expected keys to be stable")
	}
	if !strings.HasPrefix(Key(true, rel), "atomlogic:v1:q1:") {
		t.Errorf("Unexpected key prefix: %s", Key(true, rel))
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Error("Expected miss on empty cache")
	}

	c.Set("k", "person (x) -> tired (x)")
	got, ok := c.Get("k")
	if !ok || got != "person (x) -> tired (x)" {
		t.Errorf("Expected hit, got %q %v", got, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", c.Len())
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(20 * time.Millisecond)
	c.Set("k", "f")
	time.Sleep(50 * time.Millisecond)

	if _, ok := c.Get("k"); ok {
		t.Error("Expected entry to expire")
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "formulas.json")

	src := NewMemoryCache(time.Hour)
	src.Set("a", "formula a")
	src.Set("b", "formula b")

	if err := SaveSnapshot(src, path); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	dst := NewMemoryCache(time.Hour)
	n, err := LoadSnapshot(dst, path)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 restored entries, got %d", n)
	}
	if got, ok := dst.Get("b"); !ok || got != "formula b" {
		t.Errorf("Expected formula b, got %q %v", got, ok)
	}
}

func TestSnapshot_NoExpiration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "formulas.json")

	src := NewMemoryCache(0)
	src.Set("k", "forever")
	if err := SaveSnapshot(src, path); err != nil {
		t.Fatal(err)
	}

	dst := NewMemoryCache(0)
	if _, err := LoadSnapshot(dst, path); err != nil {
		t.Fatal(err)
	}
	if got, ok := dst.Get("k"); !ok || got != "forever" {
		t.Errorf("Expected entry without expiry to survive, got %q %v", got, ok)
	}
}

func TestLoadSnapshot_Missing(t *testing.T) {
	c := NewMemoryCache(time.Hour)
	n, err := LoadSnapshot(c, filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Errorf("Expected missing snapshot to be ignored, got %v", err)
	}
	if n != 0 {
		t.Errorf("Expected 0 entries, got %d", n)
	}
}

func TestLoadSnapshot_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSnapshot(NewMemoryCache(time.Hour), path); err == nil {
		t.Error("Expected error for corrupt snapshot")
	}
}
