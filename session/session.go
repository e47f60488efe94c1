// Package session keeps the editors the HTTP API hands out. Editors are not
// safe for concurrent use, so every access goes through Session.Do.
package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/bep/debounce"
	"github.com/google/uuid"
	"github.com/jsphweid/synchro/db"
	"github.com/jsphweid/synchro/editor"
	"github.com/jsphweid/synchro/model"
	"github.com/jsphweid/synchro/util"
)

// Unavailable tags operations that need a chart library when none is set up.
const Unavailable ftag.Kind = "UNAVAILABLE"

type Session struct {
	Id string

	mu       sync.Mutex
	editor   *editor.Editor
	name     string
	songName string
	artist   string
	autosave func(f func())
	registry *Registry
}

type Registry struct {
	mu            sync.RWMutex
	sessions      map[string]*Session
	library       db.Library
	autosaveDelay time.Duration
	logger        *slog.Logger
}

// NewRegistry builds a registry. With a nil library or a zero delay,
// sessions are only saved when asked to.
func NewRegistry(library db.Library, autosaveDelay time.Duration, logger *slog.Logger) *Registry {
	return &Registry{
		sessions:      make(map[string]*Session),
		library:       library,
		autosaveDelay: autosaveDelay,
		logger:        logger,
	}
}

func (r *Registry) Create(lengthSeconds float64) *Session {
	id := uuid.New().String()
	s := &Session{
		Id:       id,
		editor:   editor.New(lengthSeconds, r.logger.With("session", id)),
		registry: r,
	}
	if r.library != nil && r.autosaveDelay > 0 {
		s.autosave = debounce.New(r.autosaveDelay)
	}

	r.mu.Lock()
	r.sessions[id] = s
	r.mu.Unlock()
	r.logger.Info("session created", "session", id, "rows", s.editor.Rows())
	return s
}

func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fault.New("no session "+id, fmsg.WithDesc("session not found", "No editor with that id."), ftag.With(ftag.NotFound))
	}
	return s, nil
}

func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return fault.New("no session "+id, fmsg.WithDesc("session not found", "No editor with that id."), ftag.With(ftag.NotFound))
	}
	delete(r.sessions, id)
	r.logger.Info("session deleted", "session", id)
	return nil
}

func (r *Registry) Ids() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return util.GetKeysSorted(r.sessions)
}

func (r *Registry) Library() db.Library {
	return r.library
}

// Do runs fn with exclusive access to the editor. Saved sessions are
// written back to the library shortly after the last change.
func (s *Session) Do(fn func(e *editor.Editor)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.editor.Revision()
	fn(s.editor)
	if s.editor.Revision() != before && s.name != "" && s.autosave != nil {
		s.autosave(s.flush)
	}
}

func (s *Session) flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.saveLocked(); err != nil {
		s.registry.logger.Error("autosave failed", "session", s.Id, "chart", s.name, "error", err)
		return
	}
	s.registry.logger.Debug("autosaved", "session", s.Id, "chart", s.name)
}

// Save exports the chart into the library under the slug of its song name
// and remembers the name for autosave.
func (s *Session) Save(songName, artist string) (string, error) {
	if s.registry.library == nil {
		return "", fault.New("no chart library configured", fmsg.WithDesc("no library", "Saving charts is disabled."), ftag.With(Unavailable))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.songName = songName
	s.artist = artist
	s.name = db.Slug(songName)
	if err := s.saveLocked(); err != nil {
		return "", err
	}
	return s.name, nil
}

func (s *Session) saveLocked() error {
	c := s.editor.Export(s.editor.Metadata(s.songName, s.artist))
	return s.registry.library.Save(s.name, c)
}

// Load replaces the editor contents with a library chart.
func (s *Session) Load(name string) (int, error) {
	if s.registry.library == nil {
		return 0, fault.New("no chart library configured", fmsg.WithDesc("no library", "Loading charts is disabled."), ftag.With(Unavailable))
	}
	c, err := s.registry.library.Get(name)
	if err != nil {
		return 0, err
	}
	// loading is not an edit, so it bypasses Do and never schedules autosave
	s.mu.Lock()
	defer s.mu.Unlock()
	skipped := s.editor.Load(c)
	s.name, s.songName, s.artist = name, c.SongName, c.Artist
	return skipped, nil
}

func (s *Session) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

// State snapshots the editor for the API.
func (s *Session) State() model.EditorResponse {
	var res model.EditorResponse
	s.Do(func(e *editor.Editor) {
		res = model.EditorResponse{
			Id:       s.Id,
			Rows:     e.Rows(),
			Columns:  e.Columns(),
			Length:   e.LengthSeconds(),
			Mode:     e.Mode(),
			Dragging: e.Dragging(),
			NumNotes: e.NumNotes(),
			Cells:    make([]model.CellState, 0),
		}
		for _, c := range e.Frame().Cells() {
			res.Cells = append(res.Cells, model.CellState{
				Row:    c.Row,
				Column: c.Column,
				Active: c.State.Active(),
				Hold:   c.State.Hold(),
			})
		}
	})
	return res
}
