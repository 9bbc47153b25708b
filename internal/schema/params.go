package schema

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cast"
)

// FilterAll is the filter value that imposes no constraint on a field
const FilterAll = "all"

// ProductFilter narrows a product listing. Nil and empty criteria impose no
// constraint.
type ProductFilter struct {
	Search     string `json:"search,omitempty"`
	Kind       string `json:"kind,omitempty"`
	GroupID    string `json:"group,omitempty"`
	SubgroupID string `json:"subgroup,omitempty"`
	Favorites  *bool  `json:"favorites,omitempty"`
	Suspended  *bool  `json:"suspended,omitempty"`
	Active     *bool  `json:"active,omitempty"`
}

// SortDirection is asc or desc
type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

const (
	DefaultPage   = 1
	DefaultLimit  = 10
	MaxLimit      = 100
	DefaultSortBy = "name"
)

// Pagination selects the page, size and order of a listing
type Pagination struct {
	Page      int           `json:"page"`
	Limit     int           `json:"limit"`
	SortBy    string        `json:"sort_by"`
	Direction SortDirection `json:"direction"`
}

// DefaultPagination first page of ten, ordered by name ascending
func DefaultPagination() Pagination {
	return Pagination{Page: DefaultPage, Limit: DefaultLimit, SortBy: DefaultSortBy, Direction: Asc}
}

// ParseFilter reads the product filter from query parameters
func ParseFilter(q url.Values) (ProductFilter, Result) {
	var r Result
	f := ProductFilter{
		Search:     q.Get("search"),
		Kind:       strings.TrimSpace(q.Get("kind")),
		GroupID:    strings.TrimSpace(q.Get("group")),
		SubgroupID: strings.TrimSpace(q.Get("subgroup")),
	}
	f.Favorites = parseOptionalBool(q, "favorites", &r)
	f.Suspended = parseOptionalBool(q, "suspended", &r)
	f.Active = parseOptionalBool(q, "active", &r)
	return f, r
}

// ParsePagination reads page, limit, sort_by and direction, applying defaults
// for absent values and rejecting out of range ones.
func ParsePagination(q url.Values) (Pagination, Result) {
	var r Result
	p := DefaultPagination()

	if v := strings.TrimSpace(q.Get("page")); v != "" {
		n, err := parseDecimal(v)
		switch {
		case err != nil:
			r.add("page", "page must be a number")
		case n < 1:
			r.add("page", "page must be greater than or equal to 1")
		default:
			p.Page = n
		}
	}

	if v := strings.TrimSpace(q.Get("limit")); v != "" {
		n, err := parseDecimal(v)
		switch {
		case err != nil:
			r.add("limit", "limit must be a number")
		case n < 1 || n > MaxLimit:
			r.add("limit", "limit must be between 1 and 100")
		default:
			p.Limit = n
		}
	}

	if v := strings.TrimSpace(q.Get("sort_by")); v != "" {
		p.SortBy = v
	}

	if v := strings.TrimSpace(q.Get("direction")); v != "" {
		switch d := SortDirection(strings.ToLower(v)); d {
		case Asc, Desc:
			p.Direction = d
		default:
			r.add("direction", "direction must be asc or desc")
		}
	}

	return p, r
}

func parseOptionalBool(q url.Values, key string, r *Result) *bool {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return nil
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		r.add(key, key+" must be a boolean")
		return nil
	}
	return &b
}

// parseDecimal reads a base-10 integer. Leading zeros are dropped so that
// cast does not read the value as octal; base prefixes are rejected.
func parseDecimal(v string) (int, error) {
	digits := strings.TrimPrefix(v, "-")
	if digits == "" {
		return 0, fmt.Errorf("%q is not a decimal number", v)
	}
	for _, ch := range digits {
		if ch < '0' || ch > '9' {
			return 0, fmt.Errorf("%q is not a decimal number", v)
		}
	}
	if digits = strings.TrimLeft(digits, "0"); digits == "" {
		return 0, nil
	}
	if strings.HasPrefix(v, "-") {
		digits = "-" + digits
	}
	return cast.ToIntE(digits)
}
