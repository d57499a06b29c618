package main

import (
	"net/http"

	"code.cloudfoundry.org/lager"

	"github.com/cloud-gov/password-meter/strength"
)

type ScoreRequest struct {
	Password *string `json:"password"`
}

type SuggestionView struct {
	Key     strength.Suggestion `json:"key"`
	Message string              `json:"message"`
}

type ScoreResponse struct {
	Score       int              `json:"score"`
	MaxScore    int              `json:"max_score"`
	Strong      bool             `json:"strong"`
	Band        strength.Band    `json:"band"`
	Color       strength.Color   `json:"color"`
	Language    string           `json:"language"`
	Suggestions []SuggestionView `json:"suggestions"`
}

type GenerateResponse struct {
	Password string        `json:"password"`
	Score    int           `json:"score"`
	Band     strength.Band `json:"band"`
}

func (s *Server) apiScore(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)

	var req ScoreRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be JSON")
		return
	}
	if req.Password == nil {
		writeError(w, http.StatusBadRequest, `must pass field "password"`)
		return
	}

	lang := s.catalog.Match(r.Header.Get("Accept-Language"), r.URL.Query().Get("lang"))
	res := strength.Score(*req.Password)
	s.metrics.ObserveScore(res)
	s.logger.Info("api-score", lager.Data{"requestID": requestID(r), "score": res.Score})

	resp := ScoreResponse{
		Score:       res.Score,
		MaxScore:    strength.MaxScore,
		Strong:      res.Strong(),
		Band:        strength.BandFor(res.Score),
		Color:       strength.ColorFor(res.Score),
		Language:    lang.Code(),
		Suggestions: make([]SuggestionView, 0, len(res.Suggestions)),
	}
	for _, k := range res.Suggestions {
		resp.Suggestions = append(resp.Suggestions, SuggestionView{Key: k, Message: lang.Suggestion(k)})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) apiGenerate(w http.ResponseWriter, r *http.Request) {
	password := s.generatePassword()
	s.metrics.ObserveGenerated()
	s.logger.Info("api-generate", lager.Data{"requestID": requestID(r)})

	res := strength.Score(password)
	writeJSON(w, http.StatusOK, GenerateResponse{
		Password: password,
		Score:    res.Score,
		Band:     strength.BandFor(res.Score),
	})
}
