package dashboard

import (
	"math"

	"github.com/heartmarshall/leadfinder-backend/internal/domain"
)

// StatusStat is the share of leads in one pipeline status.
type StatusStat struct {
	Status     domain.LeadStatus
	Count      int
	Percentage int
}

// Aggregate counts leads per status, in pipeline order. Percentages are
// rounded to the nearest integer and are 0 when there are no leads.
// Unknown or missing statuses count as nouveau.
func Aggregate(leads []domain.Lead) []StatusStat {
	counts := make(map[domain.LeadStatus]int, len(domain.LeadStatuses))
	for i := range leads {
		counts[leads[i].Status.OrNew()]++
	}

	total := len(leads)
	stats := make([]StatusStat, 0, len(domain.LeadStatuses))
	for _, s := range domain.LeadStatuses {
		stats = append(stats, StatusStat{
			Status:     s,
			Count:      counts[s],
			Percentage: percent(counts[s], total),
		})
	}
	return stats
}

// ConversionRate is the share of won leads.
func ConversionRate(leads []domain.Lead) int {
	won := 0
	for i := range leads {
		if leads[i].Status == domain.LeadStatusWon {
			won++
		}
	}
	return percent(won, len(leads))
}

func percent(n, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(n) / float64(total) * 100))
}
