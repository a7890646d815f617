package profile

import (
	"github.com/google/uuid"
	"github.com/heartmarshall/leadfinder-backend/internal/domain"
)

// Input holds the editable fields of a profile.
type Input struct {
	Name        string
	Description *string
	Filters     domain.Filters
	IsDefault   bool
}

// build validates the input and returns the profile it describes.
func (i Input) build(userID uuid.UUID) (*domain.Profile, error) {
	return domain.NewProfile(userID, i.Name, i.Description, i.Filters, i.IsDefault)
}
