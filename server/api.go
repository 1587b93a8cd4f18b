package main

/**
 * gosinglish - A Singlish to Sinhala transliteration library
 * Copyright Singlish Project, 2022
 * Licensed under AGPL-3.0-only
 */

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/singlishproject/gosinglish/singlish"
)

// App carries the engine and logger through the handlers
type App struct {
	engine *singlish.Engine
	log    zerolog.Logger
}

type convertRequest struct {
	Text string `json:"text"`
}

type convertResponse struct {
	Text   string `json:"text"`
	Output string `json:"output"`
	// Latin runs no rule converted; omitted when the scheme covered everything
	Residue []string `json:"residue,omitempty"`
}

type schemeStatus struct {
	Identifier  string `json:"identifier"`
	LangCode    string `json:"lang-code"`
	DisplayName string `json:"display-name"`
	Author      string `json:"author,omitempty"`
	Stable      bool   `json:"stable"`
}

type statusResponse struct {
	Status string       `json:"status"`
	Scheme schemeStatus `json:"scheme"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (app *App) convertText(text string) convertResponse {
	output := app.engine.Convert(text)
	return convertResponse{
		Text:    text,
		Output:  output,
		Residue: singlish.LatinResidue(output),
	}
}

func (app *App) handleConvert(w http.ResponseWriter, r *http.Request) {
	var request convertRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	writeJSON(w, http.StatusOK, app.convertText(request.Text))
}

func (app *App) handleConvertPath(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, app.convertText(chi.URLParam(r, "text")))
}

func (app *App) handleStatus(w http.ResponseWriter, r *http.Request) {
	details := app.engine.Scheme().Details

	writeJSON(w, http.StatusOK, statusResponse{
		Status: "ok",
		Scheme: schemeStatus{
			Identifier:  details.Identifier,
			LangCode:    details.LangCode,
			DisplayName: details.DisplayName,
			Author:      details.Author,
			Stable:      details.IsStable,
		},
	})
}

// captureWriter records the status code for the access log
type captureWriter struct {
	http.ResponseWriter
	status int
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (app *App) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cw := &captureWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(cw, r)

		app.log.Info().
			Int("status", cw.status).
			Dur("elapsed", time.Since(start)).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request done")
	})
}

func (app *App) routes(allowedOrigins []string) http.Handler {
	router := chi.NewRouter()

	router.Use(app.accessLog)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Post("/api/convert", app.handleConvert)
	router.Get("/api/convert/{text}", app.handleConvertPath)
	router.Get("/api/status", app.handleStatus)

	return router
}
