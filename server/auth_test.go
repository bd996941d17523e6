package main

import (
	"errors"
	"testing"
	"time"
)

func TestPilotTokenRoundTrip(t *testing.T) {
	a := NewAuth([]byte("test-secret"))
	token, err := a.IssuePilotToken("sid-1")
	if err != nil {
		t.Fatal(err)
	}
	if err := a.ValidatePilotToken(token, "sid-1"); err != nil {
		t.Errorf("expected valid token, got %v", err)
	}
}

func TestPilotTokenWrongSession(t *testing.T) {
	a := NewAuth(nil)
	token, _ := a.IssuePilotToken("sid-1")
	err := a.ValidatePilotToken(token, "sid-2")
	if !errors.Is(err, errInvalidToken) {
		t.Errorf("expected errInvalidToken, got %v", err)
	}
}

func TestPilotTokenOtherSecret(t *testing.T) {
	token, _ := NewAuth([]byte("one")).IssuePilotToken("sid")
	if err := NewAuth([]byte("two")).ValidatePilotToken(token, "sid"); !errors.Is(err, errInvalidToken) {
		t.Errorf("expected errInvalidToken, got %v", err)
	}
}

func TestPilotTokenExpires(t *testing.T) {
	a := NewAuth([]byte("secret"))
	issued := time.Now()
	a.now = func() time.Time { return issued }
	token, _ := a.IssuePilotToken("sid")

	a.now = func() time.Time { return issued.Add(pilotTokenExpiry + time.Minute) }
	if err := a.ValidatePilotToken(token, "sid"); !errors.Is(err, errInvalidToken) {
		t.Errorf("expected expired token to fail, got %v", err)
	}
}

func TestPilotTokenGarbage(t *testing.T) {
	a := NewAuth(nil)
	for _, tok := range []string{"", "abc", "a.b.c"} {
		if err := a.ValidatePilotToken(tok, "sid"); !errors.Is(err, errInvalidToken) {
			t.Errorf("token %q: expected errInvalidToken, got %v", tok, err)
		}
	}
}
