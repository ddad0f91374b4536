package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/abhisek/intervet/internal/api"
	"github.com/abhisek/intervet/internal/assessment"
	"github.com/abhisek/intervet/internal/bank"
	"github.com/abhisek/intervet/internal/resume"
)

// maxUploadBytes caps resume uploads at 10 MiB.
const maxUploadBytes = 10 << 20

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.HealthResponse{Status: "ok", DB: "ok"})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid multipart form: %v", err))
		return
	}
	file, _, err := r.FormFile("pdf")
	if err != nil {
		writeError(w, http.StatusBadRequest, "pdf file field is required")
		return
	}
	defer file.Close()

	pdf, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("read upload: %v", err))
		return
	}

	text, err := resume.ExtractText(r.Context(), pdf)
	if err != nil {
		if errors.Is(err, resume.ErrNoText) {
			writeError(w, http.StatusBadRequest, "No text could be extracted from PDF. The PDF may be scanned (image-only).")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, s.parser.Parse(r.Context(), text))
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %v", err))
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	id := s.candidates.Upsert(assessment.ParsedProfile{
		Name:          strings.TrimSpace(req.Name),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		Experience:    req.Experience,
		TenthPct:      req.TenthPct,
		TwelfthPct:    req.TwelfthPct,
		DegreePctCGPA: req.DegreePctCGPA,
	})
	writeJSON(w, http.StatusOK, api.RegisterCandidateResponse{UserID: id, Persisted: true})
}

func (s *Server) handleSaveLevels(w http.ResponseWriter, r *http.Request) {
	var req api.SaveLevelsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %v", err))
		return
	}
	if req.UserID == "" || req.AptitudeLevel == "" || req.ReasoningLevel == "" || req.CodingLevel == "" {
		writeError(w, http.StatusBadRequest, "missing fields")
		return
	}

	saved := s.candidates.SaveLevels(req.UserID, assessment.LevelChoice{
		Aptitude:  req.AptitudeLevel,
		Reasoning: req.ReasoningLevel,
		Coding:    req.CodingLevel,
	})
	if !saved {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, api.SaveLevelsResponse{Saved: true})
}

func (s *Server) handleSelectQuestions(w http.ResponseWriter, r *http.Request) {
	var req api.SelectQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %v", err))
		return
	}

	var profile *assessment.ParsedProfile
	switch {
	case req.UserID != "":
		c, ok := s.candidates.Get(req.UserID)
		if !ok {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		profile = &c.Profile
	case req.Resume != nil:
		profile = req.Resume
	default:
		writeError(w, http.StatusBadRequest, "Provide user_id or resume data")
		return
	}

	counts := api.DefaultCounts()
	if req.Counts != nil {
		counts = *req.Counts
	}

	// Resume strength folds into the served level per domain.
	strength := bank.ComputeStrength(profile)
	requested := assessment.LevelChoice{
		Aptitude:  req.AptitudeLevel,
		Reasoning: req.ReasoningLevel,
		Coding:    req.CodingLevel,
	}

	set := assessment.QuestionSet{}
	for _, d := range assessment.Domains {
		level := bank.FinalLevel(strength, defaultLevel(requested.For(d)))
		group := assessment.QuestionGroup{
			FinalLevel: level,
			Questions:  s.pick(s.bank.Questions(d), level, countFor(counts, d)),
		}
		switch d {
		case assessment.DomainAptitude:
			set.Aptitude = group
		case assessment.DomainReasoning:
			set.Reasoning = group
		case assessment.DomainCoding:
			set.Coding = group
		}
	}

	writeJSON(w, http.StatusOK, set)
}

func (s *Server) handleGenerateReport(w http.ResponseWriter, r *http.Request) {
	var req api.GenerateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %v", err))
		return
	}

	markdown := s.narrator.Narrate(r.Context(), req)
	writeJSON(w, http.StatusOK, api.GenerateReportResponse{ReportMarkdown: markdown})
}

func defaultLevel(l assessment.Level) assessment.Level {
	if l == "" {
		return assessment.LevelBeginner
	}
	return l
}

func countFor(counts api.DomainCounts, d assessment.Domain) int {
	switch d {
	case assessment.DomainAptitude:
		return counts.Aptitude
	case assessment.DomainReasoning:
		return counts.Reasoning
	case assessment.DomainCoding:
		return counts.Coding
	}
	return 0
}
