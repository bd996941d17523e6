package main

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/skip2/go-qrcode"
)

const qrSize = 256

var uuidPathRe = regexp.MustCompile(`^/[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true // Non-browser clients don't send Origin
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		return u.Host == r.Host
	},
}

func extractIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// PilotURL is the address a second device opens to fly session sid
func PilotURL(publicURL, sid, token string) string {
	return fmt.Sprintf("%s/%s#pilot=%s", strings.TrimRight(publicURL, "/"), sid, url.QueryEscape(token))
}

// SetupRoutes configures HTTP routes. publicURL is the externally reachable
// base used in QR codes; empty falls back to the request host.
func SetupRoutes(hub *Hub, clientDir, publicURL string) *http.ServeMux {
	mux := http.NewServeMux()

	// Serve static files with no-cache so browsers always revalidate
	fs := http.FileServer(http.Dir(clientDir))
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache")
		// SPA: serve index.html for root and session paths
		if r.URL.Path == "/" || uuidPathRe.MatchString(r.URL.Path) {
			http.ServeFile(w, r, filepath.Join(clientDir, "index.html"))
			return
		}
		fs.ServeHTTP(w, r)
	}))

	// Pilot QR: only whoever holds the token can render it
	mux.HandleFunc("/qr.png", func(w http.ResponseWriter, r *http.Request) {
		sid := r.URL.Query().Get("sid")
		token := r.URL.Query().Get("token")
		if _, err := hub.sessions.GetSession(sid); err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		if err := hub.auth.ValidatePilotToken(token, sid); err != nil {
			hub.log.WithError(err).WithField("sid", sid).Warn("rejected qr request")
			http.Error(w, errInvalidToken.Error(), http.StatusForbidden)
			return
		}
		base := publicURL
		if base == "" {
			base = "http://" + r.Host
		}
		png, err := qrcode.Encode(PilotURL(base, sid, token), qrcode.Medium, qrSize)
		if err != nil {
			http.Error(w, "qr encode failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		w.Write(png)
	})

	// WebSocket endpoint
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ip := extractIP(r)
		if !hub.CanAccept(ip) {
			hub.log.WithField("ip", ip).Warn("connection limit reached")
			http.Error(w, "too many connections", http.StatusServiceUnavailable)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			hub.log.WithError(err).Warn("upgrade error")
			return
		}

		hub.TrackConnect(ip)

		client := NewClient(hub, conn, ip)
		hub.register <- client

		go client.WritePump()
		go client.ReadPump()
	})

	return mux
}
