package main

import (
	"errors"
	"regexp"
	"testing"
	"time"
)

var uuidRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestSessionIDIsUUID(t *testing.T) {
	sm := NewSessionManager(1)
	sess, err := sm.CreateSession()
	if err != nil {
		t.Fatal(err)
	}
	defer sess.Game.Stop()
	if !uuidRegex.MatchString(sess.ID) {
		t.Errorf("session ID %q is not a valid UUID v4", sess.ID)
	}
}

func TestGetMissingSession(t *testing.T) {
	sm := NewSessionManager(1)
	if _, err := sm.GetSession("nope"); !errors.Is(err, errSessionNotFound) {
		t.Errorf("expected errSessionNotFound, got %v", err)
	}
}

func TestSessionLimit(t *testing.T) {
	sm := NewSessionManager(1)
	for i := 0; i < maxSessions; i++ {
		sess, err := sm.CreateSession()
		if err != nil {
			t.Fatalf("session %d: %v", i, err)
		}
		defer sess.Game.Stop()
	}
	if _, err := sm.CreateSession(); !errors.Is(err, errSessionFull) {
		t.Errorf("expected errSessionFull, got %v", err)
	}
}

func TestDetachRemovesEmptySession(t *testing.T) {
	sm := NewSessionManager(1)
	sess, _ := sm.CreateSession()
	a, b := &mockBroadcaster{}, &mockBroadcaster{}
	sess.Game.Attach(a, true)
	sess.Game.Attach(b, false)

	sm.Detach(sess.ID, a)
	if sm.Count() != 1 {
		t.Fatal("session with a viewer should stay")
	}
	sm.Detach(sess.ID, b)
	if sm.Count() != 0 {
		t.Error("empty session should be removed")
	}
}

func TestReapIdleSessions(t *testing.T) {
	prev := SessionIdleTimeout
	SessionIdleTimeout = 20 * time.Millisecond
	defer func() { SessionIdleTimeout = prev }()

	sm := NewSessionManager(1)
	idle, _ := sm.CreateSession()
	busy, _ := sm.CreateSession()
	defer busy.Game.Stop()
	busy.Game.Attach(&mockBroadcaster{}, false)

	time.Sleep(40 * time.Millisecond)
	if n := sm.Reap(); n != 1 {
		t.Errorf("expected 1 reaped, got %d", n)
	}
	if _, err := sm.GetSession(idle.ID); err == nil {
		t.Error("idle session should be gone")
	}
	if _, err := sm.GetSession(busy.ID); err != nil {
		t.Error("attached session should survive")
	}
}

func TestListSessions(t *testing.T) {
	sm := NewSessionManager(1)
	sess, _ := sm.CreateSession()
	defer sess.Game.Stop()
	sess.Game.Attach(&mockBroadcaster{}, true)

	list := sm.ListSessions()
	if len(list) != 1 {
		t.Fatalf("expected 1 session, got %d", len(list))
	}
	if list[0].ID != sess.ID || !list[0].Pilot || list[0].Viewers != 1 || list[0].State != "menu" {
		t.Errorf("unexpected info %+v", list[0])
	}
}
