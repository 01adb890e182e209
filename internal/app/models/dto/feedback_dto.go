package dto

// SubmitFeedbackRequest represents feedback submission data.
type SubmitFeedbackRequest struct {
	Rating  int     `json:"rating" binding:"required,min=1,max=5" example:"5"`
	Comment *string `json:"comment,omitempty" example:"Excellent workshop, very informative."`
}
