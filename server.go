package main

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/gorilla/mux"

	"github.com/cloud-gov/password-meter/locale"
	"github.com/cloud-gov/password-meter/strength"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

const (
	langCookie    = "pwmeter_lang"
	maxFormBytes  = 64 << 10
	sessionMaxAge = 24 * time.Hour
)

type Server struct {
	logger           lager.Logger
	catalog          *locale.Catalog
	history          *HistoryStore
	generatePassword strength.Generator
	credentialSender CredentialSender
	metrics          *Metrics
}

type page struct {
	Lang      *locale.Messages
	Languages []*locale.Messages
	MaxScore  int

	Evaluated   bool
	Show        bool
	Password    string
	Result      strength.Result
	Band        strength.Band
	Status      string
	Suggestions []string
	Gauge       *gaugeView

	Generated     string
	Last          string
	LastGenerated bool
	ShareEnabled  bool
	ShareLink    string
	Error        string

	sessionID string
}

// Routes registers the form and JSON endpoints on r.
func (s *Server) Routes(r *mux.Router) {
	r.HandleFunc("/", s.index).Methods(http.MethodGet)
	r.HandleFunc("/evaluate", s.evaluate).Methods(http.MethodPost)
	r.HandleFunc("/generate", s.generate).Methods(http.MethodPost)
	r.HandleFunc("/share", s.share).Methods(http.MethodPost)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/score", s.apiScore).Methods(http.MethodPost)
	api.HandleFunc("/generate", s.apiGenerate).Methods(http.MethodGet, http.MethodPost)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	p := s.newPage(w, r)
	s.render(w, r, http.StatusOK, p)
}

func (s *Server) evaluate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	p := s.newPage(w, r)
	password := r.PostForm.Get("password")
	p.Show = r.PostForm.Get("show") != ""

	// An empty submission means nothing has been evaluated yet.
	if password != "" {
		res := strength.Score(password)
		s.metrics.ObserveScore(res)
		s.logger.Info("evaluate", lager.Data{"requestID": requestID(r), "score": res.Score})

		p.fill(res)
		if p.Show {
			p.Password = password
		}
		s.history.Remember(p.sessionID, SavedPassword{Value: password})
		p.Last = password
		p.LastGenerated = false
	}

	s.render(w, r, http.StatusOK, p)
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	p := s.newPage(w, r)
	password := s.generatePassword()
	s.metrics.ObserveGenerated()
	s.logger.Info("generate", lager.Data{"requestID": requestID(r)})

	s.history.Remember(p.sessionID, SavedPassword{Value: password, Generated: true})
	p.Generated = password
	p.Last = password
	p.LastGenerated = true

	s.render(w, r, http.StatusOK, p)
}

func (s *Server) share(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	p := s.newPage(w, r)
	status := http.StatusOK
	switch {
	case s.credentialSender == nil:
		p.Error = errSharingDisabled.Error()
		status = http.StatusNotImplemented
	case !p.LastGenerated:
		// Only generated passwords leave the server; typed ones never do.
		p.Error = p.Lang.NothingToShare
		status = http.StatusConflict
	default:
		link, err := s.credentialSender.Send(r.Context(), shareMessage(p.Last))
		if err != nil {
			s.logger.Error("share", err, lager.Data{"requestID": requestID(r)})
			p.Error = "Unable to create a one-time link."
			status = http.StatusBadGateway
			break
		}
		s.logger.Info("share", lager.Data{"requestID": requestID(r)})
		p.ShareLink = link
	}

	s.render(w, r, status, p)
}

func (s *Server) newPage(w http.ResponseWriter, r *http.Request) *page {
	lang := s.language(w, r)
	p := &page{
		Lang:         lang,
		Languages:    s.catalog.All(),
		MaxScore:     strength.MaxScore,
		ShareEnabled: s.credentialSender != nil,
		sessionID:    s.session(w, r),
	}

	if last, ok := s.history.Last(p.sessionID); ok {
		p.Last = last.Value
		p.LastGenerated = last.Generated
	}
	return p
}

func (p *page) fill(res strength.Result) {
	p.Evaluated = true
	p.Result = res
	p.Band = strength.BandFor(res.Score)
	p.Status = p.Lang.Status(p.Band)
	p.Suggestions = localize(p.Lang, res.Suggestions)
	g := newGaugeView(p.Lang.GaugeTitle, res.Score)
	p.Gauge = &g
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, p *page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, p); err != nil {
		s.logger.Error("render", err, lager.Data{"requestID": requestID(r)})
	}
}

// language resolves the request's language and remembers explicit choices.
func (s *Server) language(w http.ResponseWriter, r *http.Request) *locale.Messages {
	selected := r.FormValue("lang")
	var cookie string
	if c, err := r.Cookie(langCookie); err == nil {
		cookie = c.Value
	}

	m := s.catalog.Match(r.Header.Get("Accept-Language"), selected, cookie)
	if selected != "" && m.Code() != cookie {
		http.SetCookie(w, &http.Cookie{
			Name:     langCookie,
			Value:    m.Code(),
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return m
}

// session returns the caller's session id, issuing one when missing.
func (s *Server) session(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && validSessionID(c.Value) {
		return c.Value
	}

	sid := newSessionID()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sid,
		Path:     "/",
		MaxAge:   int(sessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteStrictMode,
	})
	return sid
}

func shareMessage(password string) string {
	return fmt.Sprintf("Password: %s", password)
}

func localize(m *locale.Messages, keys []strength.Suggestion) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, m.Suggestion(k))
	}
	return out
}
