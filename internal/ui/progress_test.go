package ui

import (
	"strings"
	"testing"

	"shaderlex/internal/driver"
)

func TestApplyEventTracksStatus(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("tokenizing", []string{"a.glsl", "b.frag"}, events).(*progressModel)

	m.applyEvent(driver.Event{File: "a.glsl", Stage: driver.StageLex, Status: driver.StatusWorking})
	if m.items[0].status != "lexing" {
		t.Fatalf("status %q, want lexing", m.items[0].status)
	}
	if got := m.percent(); got != 0.25 {
		t.Errorf("percent %v, want 0.25", got)
	}

	m.applyEvent(driver.Event{File: "a.glsl", Stage: driver.StageLex, Status: driver.StatusDone})
	m.applyEvent(driver.Event{File: "b.frag", Stage: driver.StageLex, Status: driver.StatusError})
	m.applyEvent(driver.Event{File: "b.frag", Stage: driver.StageLex, Status: driver.StatusError})
	if m.finished() != 2 || m.failed != 1 {
		t.Errorf("finished=%d failed=%d", m.finished(), m.failed)
	}
	if got := m.percent(); got != 1 {
		t.Errorf("percent %v, want 1", got)
	}

	// unknown files are ignored
	if cmd := m.applyEvent(driver.Event{File: "zzz.glsl", Status: driver.StatusDone}); cmd != nil {
		t.Error("event for an unknown file changed the model")
	}
}

func TestViewListsFiles(t *testing.T) {
	m := NewProgressModel("tokenizing", []string{"shaders/blur.frag"}, nil).(*progressModel)
	m.applyEvent(driver.Event{File: "shaders/blur.frag", Stage: driver.StageLex, Status: driver.StatusError})
	m.done = true

	view := m.View()
	for _, want := range []string{"done: tokenizing (1/1), 1 with errors", "error", "shaders/blur.frag"} {
		if !strings.Contains(view, want) {
			t.Errorf("view is missing %q:\n%s", want, view)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := truncate("a/very/long/path.glsl", 10); got != "a/very/..." {
		t.Errorf("got %q", got)
	}
	if got := truncate("日本語のパス", 3); got != "日" {
		t.Errorf("got %q", got)
	}
}
