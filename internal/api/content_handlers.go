package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"viralgenix/internal/database"
	"viralgenix/internal/generator"
	"viralgenix/internal/models"

	"github.com/go-chi/chi/v5"
)

type GenerateContentRequest struct {
	Topic      string `json:"topic" example:"Productivity tips for founders"`
	Audience   string `json:"audience" example:"Entrepreneurs"`
	Trend      string `json:"trend,omitempty" example:"AI assistants"`
	ToneSample string `json:"tone_sample,omitempty" example:"Short punchy sentences. No fluff."`
}

type GenerateContentResponse struct {
	Content  *models.Content `json:"content"`
	Degraded bool            `json:"degraded" example:"false"`
}

// @Summary      Generate content
// @Description  Generates a blog article and a derived video script for the given topic, persists the result and returns it. If the upstream AI call fails, placeholder text is stored instead and the degraded flag is set; the request still succeeds.
// @Tags         contents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        generateRequest  body      GenerateContentRequest  true  "Generation inputs"
// @Success      201              {object}  GenerateContentResponse
// @Failure      400              {string}  string "Topic is required"
// @Failure      401              {string}  string "Unauthorized"
// @Failure      500              {string}  string "Internal Server Error"
// @Router       /contents [post]
func (s *Server) GenerateContentHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	var req GenerateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req.Topic = strings.TrimSpace(req.Topic)
	if req.Topic == "" {
		http.Error(w, "Topic is required", http.StatusBadRequest)
		return
	}
	if req.Audience == "" {
		req.Audience = "General"
	}

	result, err := s.genService.GenerateContent(r.Context(), claims.UserID, generator.GenerateParams{
		Topic:      req.Topic,
		Audience:   req.Audience,
		Trend:      req.Trend,
		ToneSample: req.ToneSample,
	})
	if err != nil {
		// ErrUnknownOwner here means the token refers to a deleted
		// account, which should not happen
		if errors.Is(err, database.ErrUnknownOwner) {
			log.Printf("CRITICAL: authenticated user %d does not exist in the database", claims.UserID)
		} else {
			log.Printf("ERROR: Failed to persist generated content for user %d: %v", claims.UserID, err)
		}
		http.Error(w, "Failed to save generated content", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(GenerateContentResponse{
		Content:  result.Content,
		Degraded: result.Degraded,
	})
}

// @Summary      List generation history
// @Description  Returns the topics and creation times of the authenticated user's generated content, newest first.
// @Tags         contents
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query     int  false  "Maximum number of rows (default 50)"
// @Param        offset  query     int  false  "Offset for pagination"
// @Success      200     {array}   models.ContentSummary
// @Failure      401     {string}  string "Unauthorized"
// @Failure      500     {string}  string "Internal Server Error"
// @Router       /contents [get]
func (s *Server) ListContentsHandler(w http.ResponseWriter, r *http.Request) {
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

	summaries, err := s.store.ListContentsByOwner(r.Context(), claims.UserID, limit, offset)
	if err != nil {
		http.Error(w, "Failed to retrieve content history", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summaries)
}

// @Summary      Get one content record
// @Description  Returns the full generated record (article, script, captions) for the authenticated owner.
// @Tags         contents
// @Produce      json
// @Security     BearerAuth
// @Param        contentId  path      int  true  "Content ID"
// @Success      200        {object}  models.Content
// @Failure      400        {string}  string "Invalid content ID"
// @Failure      401        {string}  string "Unauthorized"
// @Failure      404        {string}  string "Content not found"
// @Failure      500        {string}  string "Internal Server Error"
// @Router       /contents/{contentId} [get]
func (s *Server) GetContentHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	contentID, err := strconv.ParseInt(chi.URLParam(r, "contentId"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid content ID", http.StatusBadRequest)
		return
	}

	content, err := s.store.GetContentByID(r.Context(), contentID, claims.UserID)
	if err != nil {
		http.Error(w, "Failed to retrieve content", http.StatusInternalServerError)
		return
	}
	if content == nil {
		http.Error(w, "Content not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(content)
}

// @Summary      Export a content record as Markdown
// @Description  Downloads the article and script of one record as a Markdown document.
// @Tags         contents
// @Produce      text/markdown
// @Security     BearerAuth
// @Param        contentId  path      int  true  "Content ID"
// @Success      200        {string}  string "Markdown document"
// @Failure      400        {string}  string "Invalid content ID"
// @Failure      401        {string}  string "Unauthorized"
// @Failure      404        {string}  string "Content not found"
// @Failure      500        {string}  string "Internal Server Error"
// @Router       /contents/{contentId}/export [get]
func (s *Server) ExportContentHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	contentID, err := strconv.ParseInt(chi.URLParam(r, "contentId"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid content ID", http.StatusBadRequest)
		return
	}

	content, err := s.store.GetContentByID(r.Context(), contentID, claims.UserID)
	if err != nil {
		http.Error(w, "Failed to retrieve content", http.StatusInternalServerError)
		return
	}
	if content == nil {
		http.Error(w, "Content not found", http.StatusNotFound)
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", content.Topic)
	fmt.Fprintf(&b, "## Blog article\n\n%s\n\n", content.Article)
	fmt.Fprintf(&b, "## Video script\n\n%s\n", content.Script)
	if content.Captions != "" {
		fmt.Fprintf(&b, "\n## Captions\n\n%s\n", content.Captions)
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="content-%d.md"`, content.ID))
	w.Write([]byte(b.String()))
}
