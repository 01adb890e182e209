package dto

import "github.com/campusevents/eventsphere/internal/app/models"

// StudentRegistrationResponse pairs a registration with its event, matching
// what a "my registrations" view needs in one call.
type StudentRegistrationResponse struct {
	Registration models.Registration `json:"registration"`
	Event        *models.Event       `json:"event,omitempty"`
}
