package dto

import "github.com/campusevents/eventsphere/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"priya.sharma@iitd.ac.in"`
	Password string `json:"password" binding:"required" example:"Campus123!"`
}

// LoginResponse carries the issued session token and its subject. The role
// inside the token is fixed for the session; changing roles means logging in
// as a different account.
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresIn int             `json:"expiresIn" example:"43200"`
	User      *models.User    `json:"user"`
	College   *models.College `json:"college"`
}
