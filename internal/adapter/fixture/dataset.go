package fixture

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/leadfinder-backend/internal/domain"
)

// Demo account credentials.
const (
	DemoEmail    = "utilisateur@exemple.com"
	DemoPassword = "motdepasse"
)

// Stable identifiers of the demo dataset.
var (
	DemoUserID   = uuid.MustParse("8d0f6a52-1c41-4c8e-9a3b-7e2f10c4d001")
	DemoProfile1 = uuid.MustParse("8d0f6a52-1c41-4c8e-9a3b-7e2f10c4d101")
	DemoProfile2 = uuid.MustParse("8d0f6a52-1c41-4c8e-9a3b-7e2f10c4d102")
	DemoLeadA    = uuid.MustParse("8d0f6a52-1c41-4c8e-9a3b-7e2f10c4d201")
	DemoLeadB    = uuid.MustParse("8d0f6a52-1c41-4c8e-9a3b-7e2f10c4d202")
	DemoLeadC    = uuid.MustParse("8d0f6a52-1c41-4c8e-9a3b-7e2f10c4d203")
	DemoSearch1  = uuid.MustParse("8d0f6a52-1c41-4c8e-9a3b-7e2f10c4d301")
	DemoSearch2  = uuid.MustParse("8d0f6a52-1c41-4c8e-9a3b-7e2f10c4d302")
)

// Dataset is the content of a data source.
type Dataset struct {
	Users    []domain.User
	Profiles []domain.Profile
	Leads    []domain.Lead
	Statuses []domain.LeadStatusRecord
	History  []domain.SearchHistory
}

// DemoDataset returns the demo user with two profiles, three leads and two
// past searches. Timestamps are relative to now.
func DemoDataset(now time.Time) Dataset {
	now = now.UTC().Truncate(time.Microsecond)
	day := 24 * time.Hour

	fullName := "Utilisateur Test"
	user := domain.User{
		ID:                DemoUserID,
		Email:             DemoEmail,
		FullName:          &fullName,
		Role:              "user",
		NotificationEmail: true,
		NotificationWeb:   true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	desc := "PME et ETI innovantes des grandes métropoles"
	profile1 := domain.Profile{
		ID:          DemoProfile1,
		UserID:      DemoUserID,
		Name:        "Profil de test 1",
		Description: &desc,
		Filters: domain.Filters{
			Industries:   []string{"Technologie", "Finance"},
			CompanySizes: []string{"PME", "ETI"},
			Locations:    []string{"Paris", "Lyon"},
			Keywords:     []string{"innovation", "digital"},
			RevenueMin:   ptr(100000.0),
			RevenueMax:   ptr(5000000.0),
		}.Normalize(),
		IsDefault: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	profile2 := domain.Profile{
		ID:        DemoProfile2,
		UserID:    DemoUserID,
		Name:      "Profil de test 2",
		Filters:   domain.Filters{}.Normalize(),
		CreatedAt: now.Add(-day),
		UpdatedAt: now.Add(-day),
	}

	leads := []domain.Lead{
		{
			ID:            DemoLeadA,
			CompanyName:   "Entreprise A",
			ContactName:   "Contact A",
			Email:         "contacta@exemple.com",
			Phone:         ptr("+33 1 23 45 67 89"),
			Website:       ptr("https://entreprise-a.exemple.com"),
			Industry:      ptr("Technologie"),
			CompanySize:   ptr("PME"),
			AnnualRevenue: ptr(1200000.0),
			Notes:         ptr("Éditeur de logiciels, innovation produit, siège à Paris"),
			Status:        domain.LeadStatusNew,
			CreatedBy:     ptr(DemoUserID),
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            DemoLeadB,
			CompanyName:   "Entreprise B",
			ContactName:   "Contact B",
			Email:         "contactb@exemple.com",
			Industry:      ptr("Finance"),
			CompanySize:   ptr("ETI"),
			AnnualRevenue: ptr(3500000.0),
			Notes:         ptr("Transformation digital en cours, agence à Lyon"),
			Status:        domain.LeadStatusContacted,
			CreatedBy:     ptr(DemoUserID),
			CreatedAt:     now.Add(-day),
			UpdatedAt:     now.Add(-day),
		},
		{
			ID:          DemoLeadC,
			CompanyName: "Entreprise C",
			ContactName: "Contact C",
			Email:       "contactc@exemple.com",
			Industry:    ptr("Santé"),
			CompanySize: ptr("TPE"),
			Status:      domain.LeadStatusQualified,
			CreatedBy:   ptr(DemoUserID),
			CreatedAt:   now.Add(-2 * day),
			UpdatedAt:   now.Add(-2 * day),
		},
	}

	history := []domain.SearchHistory{
		{
			ID:           DemoSearch1,
			UserID:       DemoUserID,
			ProfileID:    &profile1.ID,
			SearchName:   ptr("Recherche test 1"),
			Filters:      profile1.Filters,
			ResultsCount: 42,
			CreatedAt:    now,
		},
		{
			ID:           DemoSearch2,
			UserID:       DemoUserID,
			ProfileID:    &profile2.ID,
			SearchName:   ptr("Recherche test 2"),
			Filters:      profile2.Filters,
			ResultsCount: 18,
			CreatedAt:    now.Add(-day),
		},
	}

	return Dataset{
		Users:    []domain.User{user},
		Profiles: []domain.Profile{profile1, profile2},
		Leads:    leads,
		History:  history,
	}
}

func ptr[T any](v T) *T { return &v }
