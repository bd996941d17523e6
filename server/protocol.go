package main

import (
	"encoding/json"

	"void-runner/sim"
)

// Client -> Server message types
const (
	MsgCreate = "create" // create session, issues a pilot token
	MsgJoin   = "join"   // attach to a session, as pilot when a token is given
	MsgInput  = "input"
	MsgList   = "list"  // list sessions
	MsgCheck  = "check" // check if session exists
	MsgLeave  = "leave"
)

// Server -> Client message types
const (
	MsgCreated  = "created"
	MsgJoined   = "joined"
	MsgEvent    = "event" // simulation events of one tick
	MsgSessions = "sessions"
	MsgChecked  = "checked"
	MsgError    = "error"
)

// binaryInputTag prefixes the compact input frame [0x01, held, pressed]
const binaryInputTag = 0x01

// Envelope wraps all outgoing messages with a type field
type Envelope struct {
	T    string      `json:"t"`
	Data interface{} `json:"d,omitempty"`
}

// InEnvelope is used for incoming messages. json.RawMessage avoids double-unmarshal.
type InEnvelope struct {
	T string          `json:"t"`
	D json.RawMessage `json:"d,omitempty"`
}

// InputMsg carries the pilot's control bitmasks (sim.Control and sim.Action)
type InputMsg struct {
	Held    uint8 `json:"held"`
	Pressed uint8 `json:"pressed"`
}

// JoinMsg is sent to attach to a session
type JoinMsg struct {
	SID   string `json:"sid"`
	Token string `json:"token,omitempty"`
}

// CheckMsg is sent by client to check if a session exists
type CheckMsg struct {
	SID string `json:"sid"`
}

// CreatedMsg answers create
type CreatedMsg struct {
	SID   string `json:"sid"`
	Token string `json:"token"`
}

// JoinedMsg answers join
type JoinedMsg struct {
	SID   string `json:"sid"`
	Pilot bool   `json:"pilot"`
}

// EventsMsg is sent once per tick that produced events
type EventsMsg struct {
	Tick   uint64      `json:"tick"`
	Events []sim.Event `json:"ev"`
}

// SessionInfo is used in the session list
type SessionInfo struct {
	ID      string `json:"id"`
	State   string `json:"state"`
	Score   int    `json:"score"`
	Viewers int    `json:"viewers"`
	Pilot   bool   `json:"pilot"`
}

// CheckedMsg is the response to a session check
type CheckedMsg struct {
	SID     string `json:"sid"`
	Exists  bool   `json:"exists"`
	State   string `json:"state,omitempty"`
	Viewers int    `json:"viewers,omitempty"`
}

// ErrorMsg sends error to client
type ErrorMsg struct {
	Msg string `json:"msg"`
}

// StateFrame is the binary (msgpack) snapshot broadcast
type StateFrame struct {
	Tick     uint64       `msgpack:"tick"`
	SID      string       `msgpack:"sid"`
	Snapshot sim.Snapshot `msgpack:"s"`
}
