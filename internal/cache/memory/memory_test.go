package memory

import (
	"bytes"
	"testing"
	"time"
)

func TestSetGetDelete(t *testing.T) {
	c := New(time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Fatal("miss expected for unknown key")
	}

	c.Set("org:displayid:acme", []byte(`{"id":"org-1"}`), time.Minute)
	got, ok := c.Get("org:displayid:acme")
	if !ok || !bytes.Equal(got, []byte(`{"id":"org-1"}`)) {
		t.Fatalf("got %q ok=%v", got, ok)
	}

	c.Delete("org:displayid:acme")
	if _, ok := c.Get("org:displayid:acme"); ok {
		t.Fatal("key must be gone after delete")
	}
}

func TestEntryExpires(t *testing.T) {
	c := New(time.Minute)
	c.Set("k", []byte("v"), 10*time.Millisecond)

	time.Sleep(30 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Fatal("entry must expire after its ttl")
	}
}

func TestSetOverwrites(t *testing.T) {
	c := New(time.Minute)
	c.Set("k", []byte("old"), time.Minute)
	c.Set("k", []byte("new"), time.Minute)

	got, _ := c.Get("k")
	if string(got) != "new" {
		t.Fatalf("got %q", got)
	}
}
