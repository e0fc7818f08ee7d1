package core

import (
	"testing"
	"time"
)

func TestDebouncerWaitsFullWindow(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	cmd := d.Change("hello")

	start := time.Now()
	msg := cmd()
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Fatalf("emission arrived after %v, before the window elapsed", elapsed)
	}

	dq, ok := msg.(DebouncedQueryMsg)
	if !ok {
		t.Fatalf("expected DebouncedQueryMsg, got %T", msg)
	}
	if !d.Settle(dq) {
		t.Fatal("latest emission should settle")
	}
	if d.Value() != "hello" {
		t.Fatalf("settled value = %q, want %q", d.Value(), "hello")
	}
}

func TestDebouncerSupersededEmissionNeverSettles(t *testing.T) {
	d := NewDebouncer(time.Millisecond)
	first := d.Change("he")
	second := d.Change("hello")

	firstMsg := first().(DebouncedQueryMsg)
	secondMsg := second().(DebouncedQueryMsg)

	if d.Settle(firstMsg) {
		t.Fatal("superseded emission settled")
	}
	if d.Value() != "" {
		t.Fatalf("value changed by superseded emission: %q", d.Value())
	}
	if !d.Settle(secondMsg) {
		t.Fatal("latest emission should settle")
	}
	if d.Value() != "hello" {
		t.Fatalf("settled value = %q, want %q", d.Value(), "hello")
	}
}

func TestDebouncerCancelDropsPending(t *testing.T) {
	d := NewDebouncer(time.Millisecond)
	cmd := d.Change("hello")
	d.Cancel()

	msg := cmd().(DebouncedQueryMsg)
	if d.Settle(msg) {
		t.Fatal("cancelled emission settled")
	}
	if d.Value() != "" {
		t.Fatalf("value = %q after cancel, want empty", d.Value())
	}
}

func TestDebouncerInitialValueIsEmpty(t *testing.T) {
	d := NewDebouncer(0)
	if d.Value() != "" {
		t.Fatalf("initial value = %q, want empty", d.Value())
	}
}
