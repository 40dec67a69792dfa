package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	_ "viralgenix/internal/models"
)

// @Summary      List active sessions
// @Description  Returns every live session of the authenticated account, newest first, so the owner can see which devices are logged in.
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Session
// @Failure      401  {string}  string "Unauthorized"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /sessions [get]
func (s *Server) ListSessionsHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	sessions, err := s.store.ListSessionsForUser(r.Context(), claims.UserID)
	if err != nil {
		log.Printf("ERROR: Failed to list sessions for user %d: %v", claims.UserID, err)
		http.Error(w, "Failed to retrieve sessions", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sessions)
}

// @Summary      Terminate one session
// @Description  Deletes a single session row, logging that device out. The delete is scoped to the authenticated owner; a foreign or unknown session ID is a silent no-op.
// @Tags         sessions
// @Security     BearerAuth
// @Param        sessionId  path      string  true  "Session ID" format(uuid)
// @Success      204        {null}    nil     "No Content"
// @Failure      400        {string}  string "Invalid session ID"
// @Failure      401        {string}  string "Unauthorized"
// @Failure      500        {string}  string "Internal Server Error"
// @Router       /sessions/{sessionId} [delete]
func (s *Server) DeleteSessionHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	sessionID, err := uuid.Parse(chi.URLParam(r, "sessionId"))
	if err != nil {
		http.Error(w, "Invalid session ID", http.StatusBadRequest)
		return
	}

	if err := s.store.DeleteSessionByID(r.Context(), sessionID, claims.UserID); err != nil {
		log.Printf("ERROR: Failed to delete session %s for user %d: %v", sessionID, claims.UserID, err)
		http.Error(w, "Failed to delete session", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Log out everywhere
// @Description  Deletes all sessions of the authenticated account. Issued access tokens keep working until they expire; only refresh tokens die here.
// @Tags         sessions
// @Security     BearerAuth
// @Success      204  {null}    nil "No Content"
// @Failure      401  {string}  string "Unauthorized"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /sessions/terminate_all [post]
func (s *Server) TerminateAllSessionsHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	if err := s.store.DeleteAllSessionsForUser(r.Context(), claims.UserID); err != nil {
		log.Printf("ERROR: Failed to terminate sessions for user %d: %v", claims.UserID, err)
		http.Error(w, "Failed to terminate sessions", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
