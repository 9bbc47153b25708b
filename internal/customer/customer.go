package customer

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/talkincode/restopos/internal/domain"
	"github.com/talkincode/restopos/internal/schema"
	"github.com/talkincode/restopos/pkg/common"
)

// ActiveWindow is how recent a visit must be for a customer to count as active
const ActiveWindow = 30 * 24 * time.Hour

// Search returns customers whose name or email contains term ignoring case,
// or whose phone contains term verbatim. An empty term matches everyone.
func Search(customers []domain.Customer, term string) []domain.Customer {
	lterm := strings.ToLower(term)
	out := make([]domain.Customer, 0, len(customers))
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Name), lterm) ||
			strings.Contains(strings.ToLower(c.Email), lterm) ||
			strings.Contains(c.Phone, term) {
			out = append(out, c)
		}
	}
	return out
}

// Stats aggregates a customer list for the list header
type Stats struct {
	Total         int     `json:"total"`
	Active        int     `json:"active"`
	AverageSpend  float64 `json:"average_spend"`
	AverageRating float64 `json:"average_rating"`
}

// ComputeStats counts customers seen within ActiveWindow of now and averages
// spend and rating. An empty list yields zeros.
func ComputeStats(customers []domain.Customer, now time.Time) Stats {
	s := Stats{Total: len(customers)}
	cutoff := now.Add(-ActiveWindow)
	spend := make(stats.Float64Data, 0, len(customers))
	rating := make(stats.Float64Data, 0, len(customers))
	for _, c := range customers {
		if c.LastVisit.After(cutoff) {
			s.Active++
		}
		spend = append(spend, c.TotalSpend)
		rating = append(rating, c.Rating)
	}
	s.AverageSpend = mean(spend)
	s.AverageRating = mean(rating)
	return s
}

func mean(data stats.Float64Data) float64 {
	m, err := stats.Mean(data)
	if errors.Is(err, stats.ErrEmptyInput) {
		return 0
	}
	return m
}

// Initials builds avatar initials from the first letter of each word
func Initials(name string) string {
	var b strings.Builder
	for _, w := range strings.Fields(name) {
		r := []rune(w)
		b.WriteRune(r[0])
	}
	return b.String()
}

type customerComparator func(c *common.Comparer, a, b *domain.Customer) int

var sortFields = map[string]customerComparator{
	"name": func(c *common.Comparer, a, b *domain.Customer) int { return c.Strings(a.Name, b.Name) },
	"email": func(c *common.Comparer, a, b *domain.Customer) int {
		return c.Strings(a.Email, b.Email)
	},
	"last_visit": func(c *common.Comparer, a, b *domain.Customer) int {
		return c.Times(a.LastVisit, b.LastVisit)
	},
	"total_visits": func(_ *common.Comparer, a, b *domain.Customer) int {
		return common.Numbers(float64(a.TotalVisits), float64(b.TotalVisits))
	},
	"total_spend": func(_ *common.Comparer, a, b *domain.Customer) int {
		return common.Numbers(a.TotalSpend, b.TotalSpend)
	},
	"rating": func(_ *common.Comparer, a, b *domain.Customer) int {
		return common.Numbers(a.Rating, b.Rating)
	},
}

// Sort returns a stably sorted copy; unknown fields keep the input order
func Sort(customers []domain.Customer, field string, dir schema.SortDirection) []domain.Customer {
	out := make([]domain.Customer, len(customers))
	copy(out, customers)
	cmp, ok := sortFields[field]
	if !ok {
		return out
	}
	c := common.NewComparer()
	sort.SliceStable(out, func(i, j int) bool {
		r := cmp(c, &out[i], &out[j])
		if dir == schema.Desc {
			r = -r
		}
		return r < 0
	})
	return out
}
