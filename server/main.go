package main

import (
	"flag"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/skip2/go-qrcode"

	"void-runner/logger"
)

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	clientDir := flag.String("client", "", "Path to renderer directory (default: ../client)")
	publicURL := flag.String("public-url", "", "Externally reachable base URL, printed as a QR code on start")
	seed := flag.Int64("seed", 0, "Fixed random seed for every session (0 = random)")
	flag.Parse()

	logger.Init()
	log := logger.Component("main")

	if *clientDir == "" {
		exe, _ := os.Executable()
		*clientDir = filepath.Join(filepath.Dir(exe), "..", "client")
		// Fallback for development
		if _, err := os.Stat(*clientDir); os.IsNotExist(err) {
			*clientDir = "../client"
		}
	}

	hub := NewHub(*seed, nil)
	go hub.Run()

	mux := SetupRoutes(hub, *clientDir, *publicURL)

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	server := &http.Server{Addr: *addr, Handler: mux}

	go func() {
		log.WithField("addr", *addr).Info("server starting")
		log.WithField("dir", *clientDir).Info("serving renderer files")
		if *publicURL != "" {
			if qr, err := qrcode.New(*publicURL, qrcode.Low); err == nil {
				os.Stdout.WriteString(qr.ToSmallString(false))
			}
		}
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.WithError(err).Fatal("ListenAndServe")
		}
	}()

	<-stop
	log.Info("shutting down")
	hub.Stop()
	server.Close()
}
