package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/gambutlab/tallysheet/internal/handler"
	mw "github.com/gambutlab/tallysheet/internal/middleware"
)

func New(tallyH *handler.TallysheetHandler) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS)

	r.Post("/generate-full-section", tallyH.GenerateFullSection)
	r.Get("/generate-sample", tallyH.GenerateSample)

	return r
}
