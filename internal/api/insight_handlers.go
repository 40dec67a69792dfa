package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"viralgenix/internal/database"

	_ "viralgenix/internal/models"
)

type CreateInsightRequest struct {
	Text     string `json:"text" example:"Posts with a personal story get twice the reach."`
	Category string `json:"category,omitempty" example:"engagement"`
}

// @Summary      Save an insight
// @Description  Persists a free-form insight note for the authenticated user.
// @Tags         insights
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        insightRequest  body      CreateInsightRequest  true  "Insight fields"
// @Success      201             {object}  models.Insight
// @Failure      400             {string}  string "Text is required"
// @Failure      401             {string}  string "Unauthorized"
// @Failure      500             {string}  string "Internal Server Error"
// @Router       /insights [post]
func (s *Server) CreateInsightHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	var req CreateInsightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		http.Error(w, "Text is required", http.StatusBadRequest)
		return
	}

	insight, err := s.store.CreateInsight(r.Context(), database.CreateInsightParams{
		OwnerID:  claims.UserID,
		Text:     req.Text,
		Category: req.Category,
	})
	if err != nil {
		log.Printf("ERROR: Failed to create insight for user %d: %v", claims.UserID, err)
		http.Error(w, "Failed to save insight", http.StatusInternalServerError)
		return
	}

	if err := s.store.LogEvent(r.Context(), claims.UserID, "insight_created", map[string]interface{}{
		"insight_id": insight.ID,
		"category":   insight.Category,
	}); err != nil {
		log.Printf("WARN: Failed to log insight_created event for user %d: %v", claims.UserID, err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(insight)
}

// @Summary      List insights
// @Description  Returns the authenticated user's insights, newest first.
// @Tags         insights
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query     int  false  "Maximum number of rows (default 50)"
// @Param        offset  query     int  false  "Offset for pagination"
// @Success      200     {array}   models.Insight
// @Failure      401     {string}  string "Unauthorized"
// @Failure      500     {string}  string "Internal Server Error"
// @Router       /insights [get]
func (s *Server) ListInsightsHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > 200 {
			http.Error(w, "Invalid 'limit' parameter", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	offset := 0
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		parsed, err := strconv.Atoi(offsetStr)
		if err != nil || parsed < 0 {
			http.Error(w, "Invalid 'offset' parameter", http.StatusBadRequest)
			return
		}
		offset = parsed
	}

	insights, err := s.store.ListInsightsByOwner(r.Context(), claims.UserID, limit, offset)
	if err != nil {
		http.Error(w, "Failed to retrieve insights", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(insights)
}
