package api

import (
	"net/http"
	"strconv"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/gorilla/mux"
	"github.com/jsphweid/synchro/chart"
	"github.com/jsphweid/synchro/db"
	"github.com/jsphweid/synchro/midi"
	"github.com/jsphweid/synchro/session"
)

// maxMidiSize bounds uploads to /charts/import.
const maxMidiSize = 4 << 20

func (s *Server) library(w http.ResponseWriter) (db.Library, bool) {
	lib := s.registry.Library()
	if lib == nil {
		s.writeError(w, fault.New("no chart library configured", fmsg.WithDesc("no library", "The chart library is disabled."), ftag.With(session.Unavailable)))
		return nil, false
	}
	return lib, true
}

func (s *Server) handleListCharts(w http.ResponseWriter, r *http.Request) {
	lib, ok := s.library(w)
	if !ok {
		return
	}
	list, err := lib.List()
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetChart(w http.ResponseWriter, r *http.Request) {
	lib, ok := s.library(w)
	if !ok {
		return
	}
	c, err := lib.Get(mux.Vars(r)["name"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := chart.Write(w, c); err != nil {
		s.logger.Error("could not write chart", "error", err)
	}
}

func queryNumber(r *http.Request, key string) (float64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0, fault.New("bad "+key+" "+raw, fmsg.WithDesc("bad query parameter", key+" must be a non-negative number."), ftag.With(ftag.InvalidArgument))
	}
	return v, nil
}

// handleImport converts an uploaded MIDI file into a chart. The result is
// returned, not stored; the page loads it into an editor or saves it.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	length, err := queryNumber(r, "length")
	if err != nil {
		s.writeError(w, err)
		return
	}
	offset, err := queryNumber(r, "offset")
	if err != nil {
		s.writeError(w, err)
		return
	}

	parsed, err := midi.Read(http.MaxBytesReader(w, r.Body, maxMidiSize))
	if err != nil {
		s.writeError(w, err)
		return
	}
	query := r.URL.Query()
	c, stats := midi.Convert(parsed, midi.Options{
		LengthSeconds: length,
		OffsetMs:      int(offset),
		SongName:      query.Get("songName"),
		Artist:        query.Get("artist"),
	})
	s.logger.Info("midi imported", "spans", stats.Spans, "taps", stats.Taps, "holds", stats.Holds, "skipped", stats.Skipped)

	w.Header().Set("Content-Type", "application/json")
	if err := chart.Write(w, c); err != nil {
		s.logger.Error("could not write chart", "error", err)
	}
}
