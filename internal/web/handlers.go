package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/kayan-consulting/kayan/internal/core"
	"github.com/kayan-consulting/kayan/internal/i18n"
	"github.com/kayan-consulting/kayan/internal/logging"
	"github.com/kayan-consulting/kayan/internal/models"
	"github.com/kayan-consulting/kayan/internal/update"
)

// maxMessageBytes bounds chat submissions from both the form and the API.
const maxMessageBytes = 4 << 10

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	data := buildPage(s.sessions.View(r), s.opts.Texts, s.opts.Services, s.opts.Phone, s.opts.Now().Year())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := pageTemplate.Execute(w, data); err != nil {
		s.log.ErrorContext(r.Context(), "failed to render page", "error", err)
	}
}

// apply runs a transition on the caller's session and sends the browser back
// to the page.
func (s *Server) apply(w http.ResponseWriter, r *http.Request, fn func(m *models.AppModel)) {
	sess := s.sessions.Get(w, r)
	sess.Update(fn)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleLanguage(w http.ResponseWriter, r *http.Request) {
	lang, err := i18n.Parse(r.FormValue("lang"))
	s.apply(w, r, func(m *models.AppModel) {
		if err == nil {
			update.SetLanguage(m, lang)
			return
		}
		update.ToggleLanguage(m)
	})
}

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	s.apply(w, r, update.ToggleMenu)
}

func (s *Server) handleService(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := s.opts.Services.Lookup(id); !ok {
		http.NotFound(w, r)
		return
	}
	s.apply(w, r, func(m *models.AppModel) {
		update.SelectService(m, id)
	})
}

func (s *Server) handleChatOpen(w http.ResponseWriter, r *http.Request) {
	s.apply(w, r, func(m *models.AppModel) {
		update.CloseMenu(m)
		update.OpenChat(m)
	})
}

func (s *Server) handleChatClose(w http.ResponseWriter, r *http.Request) {
	s.apply(w, r, update.CloseChat)
}

func (s *Server) handleSuggestion(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil || n < 1 || n > len(update.Suggestions) {
		http.NotFound(w, r)
		return
	}
	s.apply(w, r, func(m *models.AppModel) {
		update.UseSuggestion(m, s.opts.Texts, n-1)
	})
}

// handleChatSubmit appends the visitor's message and asks the consultant in
// the background; the page shows the pending state until the reply lands.
func (s *Server) handleChatSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxMessageBytes)
	message := r.FormValue("message")

	sess := s.sessions.Get(w, r)
	var (
		ask update.Ask
		ok  bool
	)
	sess.Update(func(m *models.AppModel) {
		update.SetInput(m, message)
		ask, ok = update.Submit(m)
	})
	if ok {
		s.ask(sess, ask)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) ask(sess *core.SessionState, ask update.Ask) {
	s.log.Info("consultant asked", "lang", ask.Language, "prompt", logging.Truncate(ask.Prompt, 60))
	s.replies.Add(1)
	go func() {
		defer s.replies.Done()
		reply := s.opts.Replier.Reply(s.baseCtx, ask.Prompt, ask.Language)
		sess.Update(func(m *models.AppModel) {
			update.ReceiveReply(m, reply)
		})
	}()
}

type chatRequest struct {
	Message string `json:"message"`
	Lang    string `json:"lang"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleAPIChat answers one question synchronously without touching any
// session.
func (s *Server) handleAPIChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxMessageBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "message is required"})
		return
	}
	lang := s.opts.DefaultLanguage
	if req.Lang != "" {
		parsed, err := i18n.Parse(req.Lang)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		lang = parsed
	}

	reply := s.opts.Replier.Reply(r.Context(), message, lang)
	writeJSON(w, http.StatusOK, chatResponse{Reply: reply})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
