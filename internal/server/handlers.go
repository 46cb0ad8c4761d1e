package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/Kcheesee/JApplication-Tracker/internal/db"
	"github.com/Kcheesee/JApplication-Tracker/internal/fetch"
	"github.com/Kcheesee/JApplication-Tracker/internal/ingestion"
	"github.com/Kcheesee/JApplication-Tracker/internal/scoring"
	"github.com/Kcheesee/JApplication-Tracker/internal/server/middleware"
	"github.com/Kcheesee/JApplication-Tracker/internal/tailoring"
	"github.com/Kcheesee/JApplication-Tracker/internal/types"
)

// CreatePostingRequest is the body for POST /postings. HTML is optional;
// when absent the server fetches the URL itself.
type CreatePostingRequest struct {
	URL  string `json:"url"`
	HTML string `json:"html,omitempty"`
}

// CreatePostingResponse returns the stored posting with its ID.
type CreatePostingResponse struct {
	ID      uuid.UUID         `json:"id"`
	Posting *types.JobPosting `json:"posting"`
}

// AnalyzeRequest is the body for POST /postings/{id}/analyze and
// POST /postings/{id}/tailor. Deep is ignored by the tailor endpoint.
type AnalyzeRequest struct {
	Resume *types.ResumeData `json:"resume"`
	Deep   bool              `json:"deep,omitempty"`
}

// AnalyzeResponse returns a fit analysis plus the ID it was stored under.
type AnalyzeResponse struct {
	AnalysisID uuid.UUID           `json:"analysis_id"`
	Fit        *types.FitAnalysis  `json:"fit"`
	Deep       *types.DeepAnalysis `json:"deep,omitempty"`
}

// TailorResponse returns a tailoring plan plus the ID it was stored under.
type TailorResponse struct {
	AnalysisID uuid.UUID            `json:"analysis_id"`
	Plan       *types.TailoringPlan `json:"plan"`
}

// handleRegister creates a new account and returns a signed token.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := s.userService.Register(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	s.jsonResponse(w, http.StatusCreated, types.AuthResponse{User: user, Token: token})
}

// handleLogin authenticates and returns a signed token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := s.userService.Login(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	s.jsonResponse(w, http.StatusOK, types.AuthResponse{User: user, Token: token})
}

// handleCreatePosting ingests a posting from supplied HTML or by fetching
// the URL, then stores the parsed result.
func (s *Server) handleCreatePosting(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreatePostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.URL == "" {
		s.errorResponse(w, http.StatusBadRequest, "url is required")
		return
	}

	html := req.HTML
	if html == "" {
		result, err := fetch.Posting(r.Context(), req.URL, s.fetchOpts)
		if err != nil {
			s.errorResponse(w, http.StatusBadGateway, "Failed to fetch posting: "+err.Error())
			return
		}
		html = result.HTML
	}

	posting, err := ingestion.ParsePosting(req.URL, html)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Failed to parse posting: "+err.Error())
		return
	}

	id, err := s.store.SavePosting(r.Context(), userID, posting)
	if err != nil {
		log.Printf("[SERVER] failed to save posting: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save posting")
		return
	}

	s.jsonResponse(w, http.StatusCreated, CreatePostingResponse{ID: id, Posting: posting})
}

// handleListPostings lists the user's postings, optionally filtered by
// company substring and limited via query parameters.
func (s *Server) handleListPostings(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	filters := db.PostingFilters{Company: r.URL.Query().Get("company")}
	postings, err := s.store.ListPostings(r.Context(), userID, filters)
	if err != nil {
		log.Printf("[SERVER] failed to list postings: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list postings")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"postings": postings,
		"count":    len(postings),
	})
}

func (s *Server) handleGetPosting(w http.ResponseWriter, r *http.Request) {
	userID, postingID, ok := s.postingScope(w, r)
	if !ok {
		return
	}

	rec, err := s.store.GetPosting(r.Context(), userID, postingID)
	if err != nil {
		log.Printf("[SERVER] failed to get posting: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get posting")
		return
	}
	if rec == nil {
		s.errorResponse(w, http.StatusNotFound, "Posting not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, rec)
}

func (s *Server) handleDeletePosting(w http.ResponseWriter, r *http.Request) {
	userID, postingID, ok := s.postingScope(w, r)
	if !ok {
		return
	}

	if err := s.store.DeletePosting(r.Context(), userID, postingID); err != nil {
		s.errorResponse(w, http.StatusNotFound, "Posting not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleAnalyze scores the supplied resume against the stored posting and
// saves the result. With deep=true and an available LLM client it also runs
// the enhanced analysis; that path degrades to the rule-based result rather
// than failing.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	userID, postingID, ok := s.postingScope(w, r)
	if !ok {
		return
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Resume == nil {
		s.errorResponse(w, http.StatusBadRequest, "resume is required")
		return
	}

	rec, err := s.store.GetPosting(r.Context(), userID, postingID)
	if err != nil {
		log.Printf("[SERVER] failed to get posting: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get posting")
		return
	}
	if rec == nil || rec.Posting == nil {
		s.errorResponse(w, http.StatusNotFound, "Posting not found")
		return
	}

	fit := scoring.AnalyzeFit(req.Resume, rec.Posting)
	analysisID, err := s.store.SaveAnalysis(r.Context(), postingID, db.AnalysisKindFit, fit)
	if err != nil {
		log.Printf("[SERVER] failed to save analysis: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save analysis")
		return
	}

	resp := AnalyzeResponse{AnalysisID: analysisID, Fit: fit}
	if req.Deep {
		resp.Deep = s.deep.AnalyzeDeep(r.Context(), req.Resume, rec.Posting)
		if _, err := s.store.SaveAnalysis(r.Context(), postingID, db.AnalysisKindDeep, resp.Deep); err != nil {
			log.Printf("[SERVER] failed to save deep analysis: %v", err)
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleTailor builds a tailoring plan for the supplied resume against the
// stored posting and saves it.
func (s *Server) handleTailor(w http.ResponseWriter, r *http.Request) {
	userID, postingID, ok := s.postingScope(w, r)
	if !ok {
		return
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Resume == nil {
		s.errorResponse(w, http.StatusBadRequest, "resume is required")
		return
	}

	rec, err := s.store.GetPosting(r.Context(), userID, postingID)
	if err != nil {
		log.Printf("[SERVER] failed to get posting: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get posting")
		return
	}
	if rec == nil || rec.Posting == nil {
		s.errorResponse(w, http.StatusNotFound, "Posting not found")
		return
	}

	fit := scoring.AnalyzeFit(req.Resume, rec.Posting)
	plan := tailoring.BuildPlan(req.Resume, rec.Posting, fit)

	analysisID, err := s.store.SaveAnalysis(r.Context(), postingID, db.AnalysisKindPlan, plan)
	if err != nil {
		log.Printf("[SERVER] failed to save tailoring plan: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save tailoring plan")
		return
	}

	s.jsonResponse(w, http.StatusOK, TailorResponse{AnalysisID: analysisID, Plan: plan})
}

// handleGetAnalysis returns a stored analysis. Ownership is checked through
// the posting the analysis belongs to.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	analysisID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis ID")
		return
	}

	rec, err := s.store.GetAnalysis(r.Context(), analysisID)
	if err != nil {
		log.Printf("[SERVER] failed to get analysis: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get analysis")
		return
	}
	if rec == nil {
		s.errorResponse(w, http.StatusNotFound, "Analysis not found")
		return
	}

	posting, err := s.store.GetPosting(r.Context(), userID, rec.PostingID)
	if err != nil {
		log.Printf("[SERVER] failed to check analysis ownership: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get analysis")
		return
	}
	if posting == nil {
		s.errorResponse(w, http.StatusNotFound, "Analysis not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, rec)
}

// postingScope extracts the authenticated user and the {id} path parameter,
// writing the error response itself on failure.
func (s *Server) postingScope(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, uuid.Nil, false
	}

	postingID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid posting ID")
		return uuid.Nil, uuid.Nil, false
	}

	return userID, postingID, true
}
