package customer

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/gocarina/gocsv"

	"github.com/talkincode/restopos/internal/domain"
)

// csvRow is one line of a customer import file
type csvRow struct {
	Name        string  `csv:"name"`
	Email       string  `csv:"email"`
	Phone       string  `csv:"phone"`
	LastVisit   string  `csv:"last_visit"`
	TotalVisits int     `csv:"total_visits"`
	TotalSpend  float64 `csv:"total_spend"`
	Rating      float64 `csv:"rating"`
	Preferences string  `csv:"preferences"` // separated by ;
}

// ParseCSV reads customers from a csv with a header row. last_visit accepts
// any common date layout; rows without a name are rejected.
func ParseCSV(r io.Reader, loc *time.Location) ([]domain.Customer, error) {
	var rows []csvRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("parse customer csv: %w", err)
	}
	out := make([]domain.Customer, 0, len(rows))
	for i, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			return nil, fmt.Errorf("line %d: name is required", i+2)
		}
		c := domain.Customer{
			Name:        name,
			Email:       strings.TrimSpace(row.Email),
			Phone:       strings.TrimSpace(row.Phone),
			TotalVisits: row.TotalVisits,
			TotalSpend:  row.TotalSpend,
			Rating:      row.Rating,
			Preferences: splitPreferences(row.Preferences),
		}
		if v := strings.TrimSpace(row.LastVisit); v != "" {
			t, err := dateparse.ParseIn(v, loc)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid last_visit %q: %w", i+2, v, err)
			}
			c.LastVisit = t
		}
		out = append(out, c)
	}
	return out, nil
}

func splitPreferences(v string) []string {
	out := []string{}
	for _, p := range strings.Split(v, ";") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
