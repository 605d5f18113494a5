package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/rpgo/synthfeed/internal/calculation"
	"github.com/rpgo/synthfeed/internal/domain"
	"github.com/rpgo/synthfeed/internal/output"
	"github.com/rpgo/synthfeed/internal/session"
	"github.com/sirupsen/logrus"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// sessionID returns the caller's session id, or "" when the request carries no well-formed one.
func sessionID(r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && session.ValidID(c.Value) {
		return c.Value
	}
	return ""
}

// setSessionCookie (re)issues the cookie so it expires together with the server-side session.
func (s *Server) setSessionCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.cfg.Server.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// seeds returns the caller's seeds. Without a live session that is the defaults and no
// cookie is set; a live session gets its cookie refreshed.
func (s *Server) seeds(w http.ResponseWriter, r *http.Request) domain.SeedSet {
	id := sessionID(r)
	seeds, ok := s.sessions.Seeds(id)
	if ok {
		s.setSessionCookie(w, id)
	}
	return seeds
}

// regenerate draws fresh seeds for the caller, starting a session if there is none.
func (s *Server) regenerate(w http.ResponseWriter, r *http.Request) domain.SeedSet {
	id := sessionID(r)
	if id == "" {
		id = session.NewID()
	}
	seeds := s.sessions.Regenerate(id)
	s.setSessionCookie(w, id)
	s.log.WithFields(logrus.Fields{
		"seeds":    []int64(seeds),
		"sessions": s.sessions.Len(),
	}).Info("regenerated seeds")
	return seeds
}

func (s *Server) dashboard(w http.ResponseWriter, r *http.Request) (*domain.Dashboard, bool) {
	dash, err := s.builder.Build(r.Context(), s.seeds(w, r))
	if err != nil {
		s.log.WithError(err).Error("build dashboard")
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("build dashboard: %v", err))
		return nil, false
	}
	return dash, true
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	dash, ok := s.dashboard(w, r)
	if !ok {
		return
	}
	page, err := s.page.Format(dash)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("render page: %v", err))
		return
	}
	w.Header().Set("Content-Type", output.ContentType("html"))
	_, _ = w.Write(page)
}

func (s *Server) handleRegenerate(w http.ResponseWriter, r *http.Request) {
	s.regenerate(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	format := strings.TrimSpace(r.URL.Query().Get("format"))
	if format == "" {
		format = "json"
	}
	f, err := output.Resolve(format)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	dash, ok := s.dashboard(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", output.ContentType(f.Name()))
	if err := output.Render(w, f.Name(), dash); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) handleSeeds(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"seeds": s.seeds(w, r)})
}

func (s *Server) handleAPIRegenerate(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"seeds": s.regenerate(w, r)})
}

func (s *Server) handleSeries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	seed, err := strconv.ParseInt(q.Get("seed"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "seed must be an integer")
		return
	}

	points := s.cfg.Generation.NumPoints
	if v := q.Get("points"); v != "" {
		points, err = strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "points must be an integer")
			return
		}
	}
	if points > s.cfg.Server.MaxPoints {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("points must not exceed %d", s.cfg.Server.MaxPoints))
		return
	}

	data, err := s.generator.GenerateSeries(seed, points)
	if errors.Is(err, calculation.ErrInvalidPointCount) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, data)
}
