package main

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"void-runner/sim"
)

const (
	writeWait         = 10 * time.Second
	pongWait          = 60 * time.Second
	pingPeriod        = (pongWait * 9) / 10
	maxMessageSize    = 4096
	sendBufSize       = 256
	maxMessagesPerSec = 50
)

// frame is one queued outbound websocket message
type frame struct {
	kind int // websocket.TextMessage or websocket.BinaryMessage
	data []byte
}

// Client is one renderer or pilot connection
type Client struct {
	hub        *Hub
	conn       *websocket.Conn
	sessionID  string
	remoteAddr string
	log        *logrus.Entry

	sendMu sync.Mutex
	send   chan frame
	closed bool

	msgCount   int
	msgResetAt time.Time
}

// NewClient creates a new Client
func NewClient(hub *Hub, conn *websocket.Conn, remoteAddr string) *Client {
	return &Client{
		hub:        hub,
		conn:       conn,
		send:       make(chan frame, sendBufSize),
		remoteAddr: remoteAddr,
		log:        hub.log.WithField("ip", remoteAddr),
	}
}

// ReadPump reads messages until the connection fails or the client floods
func (c *Client) ReadPump() {
	defer func() {
		c.hub.TrackDisconnect(c.remoteAddr)
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		kind, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.WithError(err).Warn("ws read failed")
			}
			return
		}
		if !c.allow(time.Now()) {
			c.log.WithField("limit", maxMessagesPerSec).Warn("rate limit exceeded, disconnecting")
			return
		}
		c.dispatch(kind, message)
	}
}

// allow counts one message against the per-second budget
func (c *Client) allow(now time.Time) bool {
	if now.After(c.msgResetAt) {
		c.msgCount = 0
		c.msgResetAt = now.Add(time.Second)
	}
	c.msgCount++
	return c.msgCount <= maxMessagesPerSec
}

// dispatch routes a binary input frame [0x01, held, pressed] or a JSON envelope
func (c *Client) dispatch(kind int, message []byte) {
	if kind == websocket.BinaryMessage && len(message) == 3 && message[0] == binaryInputTag {
		c.handleBinaryInput(message)
		return
	}
	c.handleMessage(message)
}

// WritePump drains the send queue and keeps the connection alive with pings
func (c *Client) WritePump() {
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ping.Stop()
		c.conn.Close()
	}()

	for {
		var f frame
		select {
		case out, ok := <-c.send:
			if !ok {
				c.conn.SetWriteDeadline(time.Now().Add(writeWait))
				c.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			f = out
		case <-ping.C:
			f = frame{kind: websocket.PingMessage}
		}
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(f.kind, f.data); err != nil {
			c.log.WithError(err).Debug("ws write failed")
			return
		}
	}
}

// SendJSON queues a JSON text message
func (c *Client) SendJSON(msg interface{}) {
	data, err := json.Marshal(msg)
	if err != nil {
		c.log.WithError(err).Error("marshal failed")
		return
	}
	c.enqueue(frame{kind: websocket.TextMessage, data: data})
}

// SendBinary queues a binary message
func (c *Client) SendBinary(data []byte) {
	c.enqueue(frame{kind: websocket.BinaryMessage, data: data})
}

// enqueue drops the frame when the client is gone or too slow to keep up
func (c *Client) enqueue(f frame) bool {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- f:
		return true
	default:
		return false
	}
}

// closeSend closes the send queue once; later sends are dropped
func (c *Client) closeSend() {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

func (c *Client) sendError(err error) {
	c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: err.Error()}})
}

// handleMessage routes incoming messages (single-pass decode via InEnvelope)
func (c *Client) handleMessage(raw []byte) {
	var env InEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		c.log.WithError(err).Debug("unmarshal error")
		return
	}

	switch env.T {
	case MsgList:
		c.handleList()
	case MsgCreate:
		c.handleCreate()
	case MsgJoin:
		c.handleJoin(env.D)
	case MsgInput:
		c.handleInput(env.D)
	case MsgCheck:
		c.handleCheck(env.D)
	case MsgLeave:
		c.handleLeave()
	}
}

func (c *Client) handleList() {
	c.SendJSON(Envelope{T: MsgSessions, Data: c.hub.sessions.ListSessions()})
}

func (c *Client) handleCreate() {
	sess, err := c.hub.sessions.CreateSession()
	if err != nil {
		c.sendError(err)
		return
	}
	token, err := c.hub.auth.IssuePilotToken(sess.ID)
	if err != nil {
		c.log.WithError(err).Error("issue pilot token")
		c.sendError(err)
		return
	}
	c.SendJSON(Envelope{T: MsgCreated, Data: CreatedMsg{SID: sess.ID, Token: token}})
}

func (c *Client) handleJoin(data json.RawMessage) {
	var msg JoinMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	sess, err := c.hub.sessions.GetSession(msg.SID)
	if err != nil {
		c.sendError(err)
		return
	}

	pilot := false
	if msg.Token != "" {
		if err := c.hub.auth.ValidatePilotToken(msg.Token, sess.ID); err != nil {
			c.log.WithError(err).WithField("sid", sess.ID).Warn("rejected pilot token")
			c.sendError(errInvalidToken)
			return
		}
		pilot = true
	}

	if c.sessionID != "" && c.sessionID != sess.ID {
		c.hub.sessions.Detach(c.sessionID, c)
	}
	if !sess.Game.Attach(c, pilot) {
		c.sendError(errors.New("session already has a pilot"))
		return
	}
	c.sessionID = sess.ID
	c.hub.sessions.MarkActive(sess.ID)
	c.log.WithFields(logrus.Fields{"sid": sess.ID, "pilot": pilot}).Info("joined session")

	c.SendJSON(Envelope{T: MsgJoined, Data: JoinedMsg{SID: sess.ID, Pilot: pilot}})
}

// handleBinaryInput decodes the compact [0x01, held, pressed] frame
func (c *Client) handleBinaryInput(msg []byte) {
	c.applyInput(sim.Control(msg[1]), sim.Action(msg[2]))
}

func (c *Client) handleInput(data json.RawMessage) {
	var input InputMsg
	if err := json.Unmarshal(data, &input); err != nil {
		return
	}
	c.applyInput(sim.Control(input.Held), sim.Action(input.Pressed))
}

func (c *Client) applyInput(held sim.Control, pressed sim.Action) {
	if c.sessionID == "" {
		return
	}
	sess, err := c.hub.sessions.GetSession(c.sessionID)
	if err != nil {
		return
	}
	sess.Game.HandleInput(c, held, pressed)
}

func (c *Client) handleCheck(data json.RawMessage) {
	var msg CheckMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	sess, err := c.hub.sessions.GetSession(msg.SID)
	if err != nil {
		c.SendJSON(Envelope{T: MsgChecked, Data: CheckedMsg{SID: msg.SID, Exists: false}})
		return
	}
	info := sess.Game.Info()
	c.SendJSON(Envelope{T: MsgChecked, Data: CheckedMsg{
		SID:     msg.SID,
		Exists:  true,
		State:   info.State,
		Viewers: info.Viewers,
	}})
}

func (c *Client) handleLeave() {
	if c.sessionID != "" {
		c.hub.sessions.Detach(c.sessionID, c)
		c.sessionID = ""
	}
}
