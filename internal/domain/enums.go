package domain

// LeadStatus is the position of a lead in the sales pipeline.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "nouveau"
	LeadStatusContacted LeadStatus = "contacté"
	LeadStatusQualified LeadStatus = "qualifié"
	LeadStatusProposal  LeadStatus = "proposition"
	LeadStatusWon       LeadStatus = "gagné"
	LeadStatusLost      LeadStatus = "perdu"
)

// LeadStatuses lists every pipeline status in pipeline order.
var LeadStatuses = []LeadStatus{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusQualified,
	LeadStatusProposal,
	LeadStatusWon,
	LeadStatusLost,
}

func (s LeadStatus) String() string { return string(s) }

func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified,
		LeadStatusProposal, LeadStatusWon, LeadStatusLost:
		return true
	}
	return false
}

// OrNew returns s when it is a known status and LeadStatusNew otherwise.
func (s LeadStatus) OrNew() LeadStatus {
	if s.IsValid() {
		return s
	}
	return LeadStatusNew
}

// CompanySize is a French company-size category.
type CompanySize string

const (
	CompanySizeTPE CompanySize = "TPE"
	CompanySizePME CompanySize = "PME"
	CompanySizeETI CompanySize = "ETI"
	CompanySizeGE  CompanySize = "GE"
)

func (c CompanySize) String() string { return string(c) }

func (c CompanySize) IsValid() bool {
	switch c {
	case CompanySizeTPE, CompanySizePME, CompanySizeETI, CompanySizeGE:
		return true
	}
	return false
}

// Label returns the human-readable label of the size category.
func (c CompanySize) Label() string {
	switch c {
	case CompanySizeTPE:
		return "TPE (1-9 employés)"
	case CompanySizePME:
		return "PME (10-249 employés)"
	case CompanySizeETI:
		return "ETI (250-4999 employés)"
	case CompanySizeGE:
		return "GE (5000+ employés)"
	}
	return string(c)
}

// CompanySizes lists the size categories from smallest to largest.
var CompanySizes = []CompanySize{CompanySizeTPE, CompanySizePME, CompanySizeETI, CompanySizeGE}

// Industries is the list of industries offered in profile and search forms.
var Industries = []string{
	"Technologie",
	"Finance",
	"Santé",
	"Éducation",
	"Commerce de détail",
	"Industrie",
	"Services",
	"Immobilier",
	"Transport",
	"Énergie",
}

// ContactMethod is how a lead was last contacted.
type ContactMethod string

const (
	ContactMethodEmail   ContactMethod = "email"
	ContactMethodPhone   ContactMethod = "phone"
	ContactMethodMeeting ContactMethod = "meeting"
	ContactMethodOther   ContactMethod = "other"
)

func (m ContactMethod) String() string { return string(m) }

func (m ContactMethod) IsValid() bool {
	switch m {
	case ContactMethodEmail, ContactMethodPhone, ContactMethodMeeting, ContactMethodOther:
		return true
	}
	return false
}

// Theme is the presentation colour scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) String() string { return string(t) }

func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}
