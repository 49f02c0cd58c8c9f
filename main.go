package main

import (
	"io"
	"log"
	"net/http"
	"os"

	"github.com/gambutlab/tallysheet/internal/config"
	"github.com/gambutlab/tallysheet/internal/gelf"
	"github.com/gambutlab/tallysheet/internal/handler"
	"github.com/gambutlab/tallysheet/internal/router"
	"github.com/gambutlab/tallysheet/internal/service"
)

func main() {
	cfg := config.Load()

	// GELF UDP logging
	if cfg.GelfAddr != "" {
		gelfWriter, err := gelf.New(cfg.GelfAddr)
		if err != nil {
			log.Printf("Warning: GELF init failed: %v", err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stderr, gelfWriter))
			log.Printf("GELF logging: enabled (%s)", cfg.GelfAddr)
		}
	}

	tallySvc := service.NewTallysheetService()
	tallyH := handler.NewTallysheetHandler(tallySvc, cfg.MaxUploadMB)

	r := router.New(tallyH)

	log.Printf("Tallysheet server starting on %s (max upload %d MB)", cfg.HTTPAddr, cfg.MaxUploadMB)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
