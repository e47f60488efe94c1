package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jsphweid/synchro/chart"
	"github.com/jsphweid/synchro/constants"
	"github.com/jsphweid/synchro/editor"
	"github.com/jsphweid/synchro/model"
	"github.com/jsphweid/synchro/session"
)

func (s *Server) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := s.registry.Get(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, err)
		return nil, false
	}
	return sess, true
}

func (s *Server) handleCreateEditor(w http.ResponseWriter, r *http.Request) {
	input := model.CreateEditorRequestBody{Length: constants.DefaultSongLengthSeconds}
	if err := decodeBody(r, &input, true); err != nil {
		s.writeError(w, err)
		return
	}
	sess := s.registry.Create(float64(input.Length))
	writeJSON(w, http.StatusCreated, sess.State())
}

func (s *Server) handleGetEditor(w http.ResponseWriter, r *http.Request) {
	if sess, ok := s.session(w, r); ok {
		writeJSON(w, http.StatusOK, sess.State())
	}
}

func (s *Server) handleDeleteEditor(w http.ResponseWriter, r *http.Request) {
	if err := s.registry.Delete(mux.Vars(r)["id"]); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMode(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var input model.ModeRequestBody
	if err := decodeBody(r, &input, false); err != nil {
		s.writeError(w, err)
		return
	}
	mode, err := model.ParseMode(input.Mode)
	if err != nil {
		s.writeError(w, err)
		return
	}
	sess.Do(func(e *editor.Editor) { e.SetMode(mode) })
	writeJSON(w, http.StatusOK, sess.State())
}

func (s *Server) handleLength(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var input model.LengthRequestBody
	if err := decodeBody(r, &input, false); err != nil {
		s.writeError(w, err)
		return
	}
	sess.Do(func(e *editor.Editor) { e.Resize(float64(input.Length)) })
	writeJSON(w, http.StatusOK, sess.State())
}

func (s *Server) handleCell(w http.ResponseWriter, r *http.Request, fn func(e *editor.Editor, col, row int)) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var input model.CellRequestBody
	if err := decodeBody(r, &input, false); err != nil {
		s.writeError(w, err)
		return
	}
	sess.Do(func(e *editor.Editor) { fn(e, input.Column, input.Row) })
	writeJSON(w, http.StatusOK, sess.State())
}

func (s *Server) handlePress(w http.ResponseWriter, r *http.Request) {
	s.handleCell(w, r, func(e *editor.Editor, col, row int) { e.Press(col, row) })
}

func (s *Server) handleEnter(w http.ResponseWriter, r *http.Request) {
	s.handleCell(w, r, func(e *editor.Editor, col, row int) { e.Enter(col, row) })
}

func (s *Server) handleRelease(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.Do(func(e *editor.Editor) { e.Release() })
	writeJSON(w, http.StatusOK, sess.State())
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	query := r.URL.Query()
	var c model.Chart
	sess.Do(func(e *editor.Editor) {
		c = e.Export(e.Metadata(query.Get("songName"), query.Get("artist")))
	})
	w.Header().Set("Content-Type", "application/json")
	if err := chart.Write(w, c); err != nil {
		s.logger.Error("could not write export", "error", err)
	}
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var input model.SaveRequestBody
	if err := decodeBody(r, &input, true); err != nil {
		s.writeError(w, err)
		return
	}
	name, err := sess.Save(input.SongName, input.Artist)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.SaveResponse{Name: name})
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	skipped, err := sess.Load(mux.Vars(r)["name"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	if skipped > 0 {
		s.logger.Warn("tiles did not fit the grid", "session", sess.Id, "skipped", skipped)
	}
	writeJSON(w, http.StatusOK, sess.State())
}
