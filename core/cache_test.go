package core

import (
	"fmt"
	"testing"
)

func TestGetReturnsStoredEntry(t *testing.T) {
	c := NewCache(10)
	c.Put("k", "text/plain", []byte("hello"))

	entry, ok := c.Get("k")
	if !ok {
		t.Fatal("entry not found")
	}
	if string(entry.Content) != "hello" {
		t.Fatalf("content is %s", entry.Content)
	}
	if entry.ContentType != "text/plain" {
		t.Fatalf("content type is %s", entry.ContentType)
	}
	if entry.Size != 5 {
		t.Fatalf("size is %d", entry.Size)
	}
}

func TestGetMissHasNoSideEffect(t *testing.T) {
	c := NewCache(10)
	c.Put("k", "text/plain", []byte("hello"))

	if _, ok := c.Get("missing"); ok {
		t.Fatal("found entry for missing key")
	}
	if c.Len() != 1 {
		t.Fatalf("cache has %d entries", c.Len())
	}
}

func TestPutReplacesEntry(t *testing.T) {
	c := NewCache(10)
	c.Put("k", "text/plain", []byte("v1"))
	c.Put("k", "text/html", []byte("v2"))

	entry, ok := c.Get("k")
	if !ok {
		t.Fatal("entry not found")
	}
	if string(entry.Content) != "v2" || entry.ContentType != "text/html" {
		t.Fatalf("entry is %s (%s)", entry.Content, entry.ContentType)
	}
	if c.Len() != 1 {
		t.Fatalf("cache has %d entries", c.Len())
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewCache(2)
	c.Put("a", "text/plain", []byte("a"))
	c.Put("b", "text/plain", []byte("b"))
	c.Get("a")
	c.Put("c", "text/plain", []byte("c"))

	if _, ok := c.Get("b"); ok {
		t.Fatal("b should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Fatal("a should still be cached")
	}
	if _, ok := c.Get("c"); !ok {
		t.Fatal("c should still be cached")
	}
}

func TestEvictsInInsertionOrderWithoutAccess(t *testing.T) {
	c := NewCache(1)
	c.Put("a", "text/plain", []byte("a"))
	c.Put("b", "text/plain", []byte("b"))

	if _, ok := c.Get("a"); ok {
		t.Fatal("a should have been evicted")
	}
	if _, ok := c.Get("b"); !ok {
		t.Fatal("b should still be cached")
	}
}

func TestNeverExceedsCapacity(t *testing.T) {
	c := NewCache(3)
	for i := 0; i < 20; i++ {
		c.Put(fmt.Sprintf("key-%d", i), "text/plain", []byte("x"))
		if c.Len() > 3 {
			t.Fatalf("cache has %d entries after put %d", c.Len(), i)
		}
	}
}

func TestZeroCapacityIsUnbounded(t *testing.T) {
	c := NewCache(0)
	for i := 0; i < 100; i++ {
		c.Put(fmt.Sprintf("key-%d", i), "text/plain", []byte("x"))
	}
	if c.Len() != 100 {
		t.Fatalf("cache has %d entries", c.Len())
	}
}
