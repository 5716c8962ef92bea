package view

import (
	"context"
	"testing"
)

func TestSlot_PublishAndGet(t *testing.T) {
	var slot Slot[string]

	_, loaded, _ := slot.Get()
	if loaded {
		t.Fatalf("fresh slot must report nothing loaded")
	}

	_, gen := slot.Begin(context.Background())
	if !slot.Publish(gen, "hello", nil) {
		t.Fatalf("current generation must publish")
	}

	value, loaded, err := slot.Get()
	if !loaded || err != nil || value != "hello" {
		t.Fatalf("got value=%q err=%v loaded=%v", value, err, loaded)
	}
}

func TestSlot_StalePublishDropped(t *testing.T) {
	var slot Slot[string]

	_, oldGen := slot.Begin(context.Background())
	_, newGen := slot.Begin(context.Background())

	if !slot.Publish(newGen, "fresh", nil) {
		t.Fatalf("newest generation must publish")
	}
	if slot.Publish(oldGen, "stale", nil) {
		t.Fatalf("stale generation must be dropped")
	}

	value, _, _ := slot.Get()
	if value != "fresh" {
		t.Fatalf("stale publish overwrote fresh value: %q", value)
	}
}

func TestSlot_BeginCancelsPreviousFetch(t *testing.T) {
	var slot Slot[int]

	oldCtx, _ := slot.Begin(context.Background())
	slot.Begin(context.Background())

	select {
	case <-oldCtx.Done():
	default:
		t.Fatalf("superseded fetch context must be cancelled")
	}
}

func TestSlot_PublishError(t *testing.T) {
	var slot Slot[int]

	_, gen := slot.Begin(context.Background())
	slot.Publish(gen, 0, context.DeadlineExceeded)

	_, loaded, err := slot.Get()
	if !loaded || err == nil {
		t.Fatalf("expected published error, got err=%v loaded=%v", err, loaded)
	}
}
