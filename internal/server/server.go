// Package server is the embedded assessment backend: the same HTTP
// surface the hosted service exposes, served locally from the bundled
// question banks. `intervet serve` runs it so the TUI can point at
// localhost instead of the hosted backend.
package server

import (
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"sync"

	"github.com/gorilla/mux"

	"github.com/abhisek/intervet/internal/assessment"
	"github.com/abhisek/intervet/internal/bank"
	"github.com/abhisek/intervet/internal/llm"
	"github.com/abhisek/intervet/internal/resume"
)

// Server handles the assessment backend endpoints.
type Server struct {
	bank       *bank.Bank
	parser     *resume.Parser
	narrator   *Narrator
	candidates *candidateRegistry

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Server. provider may be nil, in which case resume
// parsing uses the regex fallback and reports use the local template.
func New(b *bank.Bank, provider llm.Provider) *Server {
	return &Server{
		bank:       b,
		parser:     resume.NewParser(provider),
		narrator:   NewNarrator(provider),
		candidates: newCandidateRegistry(),
		rng:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Router builds the HTTP route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/parse", s.handleParse).Methods(http.MethodPost)
	r.HandleFunc("/users", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/responses", s.handleSaveLevels).Methods(http.MethodPost)
	r.HandleFunc("/select_questions", s.handleSelectQuestions).Methods(http.MethodPost)
	r.HandleFunc("/generate_report", s.handleGenerateReport).Methods(http.MethodPost)
	return r
}

func (s *Server) pick(pool []assessment.Question, level assessment.Level, count int) []assessment.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return bank.PickByLevel(s.rng, pool, level, count)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError sends the message as plain body text; clients surface it
// verbatim.
func writeError(w http.ResponseWriter, status int, msg string) {
	http.Error(w, msg, status)
}
