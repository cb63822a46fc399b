package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/paperforge/paperforge/internal/access"
	"github.com/paperforge/paperforge/internal/extract"
	"github.com/paperforge/paperforge/internal/history"
	"github.com/paperforge/paperforge/internal/quiz"
	"github.com/paperforge/paperforge/internal/render"
)

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func ListUsersHandler(acl access.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := acl.List(r.Context())
		if err != nil {
			http.Error(w, "list users", http.StatusInternalServerError)
			return
		}
		type user struct {
			UserID  int64 `json:"user_id"`
			AddedBy int64 `json:"added_by"`
			AddedAt int64 `json:"added_at"`
		}
		out := make([]user, 0, len(entries))
		for _, e := range entries {
			out = append(out, user{UserID: e.UserID, AddedBy: e.AddedBy, AddedAt: e.AddedAt})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func AuthorizeUserHandler(acl access.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			UserID int64 `json:"user_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == 0 {
			http.Error(w, "user_id required", http.StatusBadRequest)
			return
		}
		if err := acl.Authorize(r.Context(), req.UserID, 0); err != nil {
			http.Error(w, "authorize", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]int64{"user_id": req.UserID})
	}
}

func RevokeUserHandler(acl access.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
		if err != nil {
			http.Error(w, "bad user id", http.StatusBadRequest)
			return
		}
		if err := acl.Revoke(r.Context(), id); err != nil {
			http.Error(w, "revoke", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// GET /papers/{testID}?mode=with-answers|questions|answer-key&theme=modern
func PaperHandler(svc *extract.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		testID := chi.URLParam(r, "testID")
		mode := render.ModeWithAnswers
		if m := r.URL.Query().Get("mode"); m != "" {
			var err error
			if mode, err = render.ParseMode(m); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}
		doc, err := svc.Paper(r.Context(), testID, mode, r.URL.Query().Get("theme"))
		switch {
		case errors.Is(err, extract.ErrBadTestID):
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, quiz.ErrNoQuestions):
			http.Error(w, "no usable data for this identifier", http.StatusNotFound)
			return
		case err != nil:
			logrus.WithError(err).WithField("test_id", testID).Error("paper generation failed")
			http.Error(w, "paper generation failed", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+mode.Filename()+`"`)
		_, _ = w.Write([]byte(doc))
	}
}

func StatsHandler(events *history.EventRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		total, err := events.Count(r.Context())
		if err != nil {
			http.Error(w, "stats", http.StatusInternalServerError)
			return
		}
		recent, err := events.Recent(r.Context(), 20)
		if err != nil {
			http.Error(w, "stats", http.StatusInternalServerError)
			return
		}
		type event struct {
			TestID        string `json:"test_id"`
			Title         string `json:"title"`
			UserID        int64  `json:"user_id"`
			QuestionCount int    `json:"question_count"`
			CreatedAt     int64  `json:"created_at"`
		}
		out := struct {
			Extracted int64   `json:"extracted"`
			Recent    []event `json:"recent"`
		}{Extracted: total, Recent: make([]event, 0, len(recent))}
		for _, e := range recent {
			out.Recent = append(out.Recent, event{
				TestID: e.TestID, Title: e.Title, UserID: e.UserID,
				QuestionCount: e.QuestionCount, CreatedAt: e.CreatedAt,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}
