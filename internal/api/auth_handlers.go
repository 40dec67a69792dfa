package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"
	"viralgenix/internal/auth"
	"viralgenix/internal/database"

	_ "viralgenix/internal/models"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

type RegisterRequest struct {
	Username    string `json:"username" example:"alice"`
	Password    string `json:"password" example:"secret1"`
	DisplayName string `json:"display_name,omitempty" example:"Alice"`
}

type LoginRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"secret1"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...."`
	RefreshToken string `json:"refresh_token" example:"V1StGXR8_Z5jdHi6B-myT78q_Z5jdHi6B-myT78q"`
}

// @Summary      Register a new account
// @Description  Creates an account with a unique username. Registration does not log the user in; a separate login call is required.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        registerRequest  body      RegisterRequest  true  "Registration fields"
// @Success      201              {object}  models.User
// @Failure      400              {string}  string "Username and password are required"
// @Failure      409              {string}  string "Username already taken"
// @Failure      500              {string}  string "Internal Server Error"
// @Router       /auth/register [post]
func (s *Server) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		http.Error(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var displayName *string
	if name := strings.TrimSpace(req.DisplayName); name != "" {
		displayName = &name
	}

	user, err := s.store.CreateUser(r.Context(), database.CreateUserParams{
		Username:     req.Username,
		PasswordHash: hashedPassword,
		DisplayName:  displayName,
	})
	if err != nil {
		if errors.Is(err, database.ErrDuplicateUsername) {
			http.Error(w, "Username already taken", http.StatusConflict)
			return
		}
		log.Printf("ERROR: Failed to create user %q: %v", req.Username, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if err := s.store.LogEvent(r.Context(), user.ID, "user_registered", map[string]interface{}{
		"username": user.Username,
	}); err != nil {
		log.Printf("WARN: Failed to log user_registered event for user %d: %v", user.ID, err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user)
}

// @Summary      Logs a user in
// @Description  Authenticates a user and returns a short-lived access token and a long-lived refresh token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        loginRequest   body      LoginRequest  true  "Login Credentials"
// @Success      200            {object}  TokenResponse
// @Failure      400            {string}  string "Invalid request body"
// @Failure      401            {string}  string "Invalid username or password"
// @Failure      500            {string}  string "Internal Server Error"
// @Router       /auth/login [post]
func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := s.store.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	// unknown user and wrong password are deliberately indistinguishable
	if user == nil || !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}

	accessToken, err := auth.GenerateJWT(user, s.config.JWT.Secret)
	if err != nil {
		http.Error(w, "Failed to generate access token", http.StatusInternalServerError)
		return
	}

	generateID, err := nanoid.Standard(40)
	if err != nil {
		log.Printf("CRITICAL: Failed to initialize nanoid generator: %v", err)
		http.Error(w, "Internal server error (token generation)", http.StatusInternalServerError)
		return
	}
	refreshToken := generateID()
	expiresAt := time.Now().Add(24 * time.Hour)

	sessionParams := database.CreateSessionParams{
		ID:           uuid.New(),
		UserID:       user.ID,
		RefreshToken: refreshToken,
		UserAgent:    r.UserAgent(),
		ClientIP:     r.RemoteAddr,
		ExpiresAt:    expiresAt,
	}

	err = s.store.CreateSession(r.Context(), sessionParams)
	if err != nil {
		log.Printf("ERROR: Failed to create session for user %d: %v", user.ID, err)
		http.Error(w, "Failed to process login session", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" example:"V1StGXR8_Z5jdHi6B-myT78q_Z5jdHi6B-myT78q"`
}

// @Summary      Refresh access token
// @Description  Provides a new short-lived access token and a new refresh token in exchange for a valid, non-expired refresh token. Implements refresh token rotation.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        refreshTokenRequest   body      RefreshTokenRequest  true  "Refresh Token"
// @Success      200                   {object}  TokenResponse
// @Failure      400                   {string}  string "Invalid request body or missing token"
// @Failure      401                   {string}  string "Invalid or expired refresh token"
// @Failure      500                   {string}  string "Internal Server Error"
// @Router       /auth/refresh [post]
func (s *Server) RefreshTokenHandler(w http.ResponseWriter, r *http.Request) {
	var req RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.RefreshToken == "" {
		http.Error(w, "Refresh token is required", http.StatusBadRequest)
		return
	}

	var newAccessToken, newRefreshToken string

	txErr := s.store.ExecTx(r.Context(), func(q *database.Queries) error {
		user, err := q.GetUserByRefreshToken(r.Context(), req.RefreshToken)
		if err != nil {
			return err
		}
		if user == nil {
			return errors.New("invalid or expired refresh token")
		}

		if err := q.DeleteSessionByRefreshToken(r.Context(), req.RefreshToken); err != nil {
			return err
		}

		newAccessToken, err = auth.GenerateJWT(user, s.config.JWT.Secret)
		if err != nil {
			return err
		}

		generateID, _ := nanoid.Standard(40)
		newRefreshToken = generateID()
		sessionParams := database.CreateSessionParams{
			ID:           uuid.New(),
			UserID:       user.ID,
			RefreshToken: newRefreshToken,
			UserAgent:    r.UserAgent(),
			ClientIP:     r.RemoteAddr,
			ExpiresAt:    time.Now().Add(24 * time.Hour),
		}
		return q.CreateSession(r.Context(), sessionParams)
	})

	if txErr != nil {
		if txErr.Error() == "invalid or expired refresh token" {
			http.Error(w, txErr.Error(), http.StatusUnauthorized)
		} else {
			log.Printf("ERROR: Refresh token transaction failed: %v", txErr)
			http.Error(w, "Failed to refresh token", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(TokenResponse{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshToken,
	})
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" example:"V1StGXR8_Z5jdHi6B-myT78q_Z5jdHi6B-myT78q"`
}

// @Summary      Log out
// @Description  Deletes the session identified by the given refresh token. The access token simply expires. Logging out always succeeds.
// @Tags         auth
// @Accept       json
// @Security     BearerAuth
// @Param        logoutRequest  body      LogoutRequest  true  "Refresh token of the session to terminate"
// @Success      204            {null}    nil "No Content"
// @Failure      400            {string}  string "Invalid request body"
// @Failure      401            {string}  string "Unauthorized"
// @Router       /auth/logout [post]
func (s *Server) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	var req LogoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.RefreshToken != "" {
		if err := s.store.DeleteSessionByRefreshToken(r.Context(), req.RefreshToken); err != nil {
			log.Printf("WARN: Failed to delete session on logout: %v", err)
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
