// Package api exposes chart editors over HTTP for the browser page.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/gorilla/mux"
	"github.com/jsphweid/synchro/model"
	"github.com/jsphweid/synchro/session"
	"github.com/rs/cors"
)

type Server struct {
	registry       *session.Registry
	logger         *slog.Logger
	allowedOrigins []string
}

func NewServer(registry *session.Registry, allowedOrigins []string, logger *slog.Logger) *Server {
	return &Server{registry: registry, logger: logger, allowedOrigins: allowedOrigins}
}

func (s *Server) Router() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(s.logRequests)

	router.HandleFunc("/editors", s.handleCreateEditor).Methods("POST")
	router.HandleFunc("/editors/{id}", s.handleGetEditor).Methods("GET")
	router.HandleFunc("/editors/{id}", s.handleDeleteEditor).Methods("DELETE")
	router.HandleFunc("/editors/{id}/mode", s.handleMode).Methods("PUT")
	router.HandleFunc("/editors/{id}/length", s.handleLength).Methods("PUT")
	router.HandleFunc("/editors/{id}/press", s.handlePress).Methods("POST")
	router.HandleFunc("/editors/{id}/enter", s.handleEnter).Methods("POST")
	router.HandleFunc("/editors/{id}/release", s.handleRelease).Methods("POST")
	router.HandleFunc("/editors/{id}/export", s.handleExport).Methods("GET")
	router.HandleFunc("/editors/{id}/save", s.handleSave).Methods("POST")
	router.HandleFunc("/editors/{id}/load/{name}", s.handleLoad).Methods("POST")

	router.HandleFunc("/charts", s.handleListCharts).Methods("GET")
	router.HandleFunc("/charts/import", s.handleImport).Methods("POST")
	router.HandleFunc("/charts/{name}", s.handleGetChart).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(router)
}

func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("listening", "addr", addr)
	return srv.ListenAndServe()
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "took", time.Since(start))
	})
}

func statusFor(err error) int {
	switch ftag.Get(err) {
	case ftag.NotFound:
		return http.StatusNotFound
	case ftag.InvalidArgument:
		return http.StatusBadRequest
	case session.Unavailable:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	detail := fmsg.GetIssue(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
		detail = "internal error"
	} else if detail == "" {
		detail = err.Error()
	}
	writeJSON(w, status, model.ErrorResponse{Error: detail})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// decodeBody fills v from a JSON body. An empty body leaves v untouched when
// optional is set.
func decodeBody(r *http.Request, v any, optional bool) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) && optional {
		return nil
	}
	if err != nil {
		return fault.Wrap(err, fmsg.WithDesc("could not unmarshal request body", "Request body is not valid JSON."), ftag.With(ftag.InvalidArgument))
	}
	return nil
}
