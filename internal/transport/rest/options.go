package rest

import (
	"net/http"

	"github.com/heartmarshall/leadfinder-backend/internal/domain"
)

type optionsResponse struct {
	Industries     []string     `json:"industries"`
	CompanySizes   []sizeOption `json:"company_sizes"`
	LeadStatuses   []string     `json:"lead_statuses"`
	ContactMethods []string     `json:"contact_methods"`
}

// Options handles GET /api/options: the fixed choices offered by the
// profile, search and lead forms.
func Options(w http.ResponseWriter, r *http.Request) {
	statuses := make([]string, 0, len(domain.LeadStatuses))
	for _, s := range domain.LeadStatuses {
		statuses = append(statuses, s.String())
	}

	writeJSON(w, http.StatusOK, optionsResponse{
		Industries:   domain.Industries,
		CompanySizes: toSizeOptions(domain.CompanySizes),
		LeadStatuses: statuses,
		ContactMethods: []string{
			domain.ContactMethodEmail.String(),
			domain.ContactMethodPhone.String(),
			domain.ContactMethodMeeting.String(),
			domain.ContactMethodOther.String(),
		},
	})
}
