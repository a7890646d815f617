package search

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/heartmarshall/leadfinder-backend/internal/domain"
	"github.com/heartmarshall/leadfinder-backend/pkg/ctxutil"
)

// ExportHeader is the first row of every lead export.
var ExportHeader = []string{"company", "contact", "email", "phone", "website", "industry", "size", "revenue", "status"}

// ExportFilename returns the download name of an export made at t.
func ExportFilename(t time.Time) string {
	return "leads_export_" + t.Format("2006-01-02") + ".csv"
}

// ExportCSV writes the user's last search results as CSV. Without stored
// results only the header is written.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	leads, err := s.results.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("search.ExportCSV: %w", err)
	}

	return WriteCSV(w, leads)
}

// WriteCSV writes the header row and one row per lead. Null fields are
// written as empty strings.
func WriteCSV(w io.Writer, leads []domain.Lead) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(ExportHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i := range leads {
		if err := cw.Write(exportRow(&leads[i])); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func exportRow(l *domain.Lead) []string {
	revenue := ""
	if l.AnnualRevenue != nil {
		revenue = strconv.FormatFloat(*l.AnnualRevenue, 'f', -1, 64)
	}
	return []string{
		l.CompanyName,
		l.ContactName,
		l.Email,
		deref(l.Phone),
		deref(l.Website),
		deref(l.Industry),
		deref(l.CompanySize),
		revenue,
		l.Status.String(),
	}
}
