package core

import "testing"

func TestResolvePrependsRoot(t *testing.T) {
	r := Resolver{Root: "./serverroot"}
	if path := r.Resolve("/about"); path != "./serverroot/about" {
		t.Fatalf("resolved to %s", path)
	}
}

func TestResolveIndexAppendsIndexFile(t *testing.T) {
	r := Resolver{Root: "./serverroot"}
	if path := r.ResolveIndex("/docs"); path != "./serverroot/docs/index.html" {
		t.Fatalf("resolved to %s", path)
	}
}

func TestResolveDoesNotNormalize(t *testing.T) {
	// dot segments pass through untouched, resolution is pure
	// concatenation
	r := Resolver{Root: "./serverroot"}
	if path := r.Resolve("/a/../b"); path != "./serverroot/a/../b" {
		t.Fatalf("resolved to %s", path)
	}
}
