package listview

import (
	"strings"

	"github.com/BruksfildServices01/barbersmart-admin/internal/flex"
)

// BarberKey is a barber identifier normalized for comparison, so that "7",
// " 07 " and the JSON number 7 all select the same barber. Empty means no
// barber filter.
type BarberKey string

func NewBarberKey(raw string) BarberKey {
	return BarberKey(flex.CanonicalKey(raw))
}

func (k BarberKey) Matches(id flex.ID) bool {
	return k == "" || string(k) == id.Key()
}

// Query is the state of the appointments table. It is a value: every user
// action produces a new Query through one of the reducers below.
type Query struct {
	Search   string    `json:"search"`
	BarberID BarberKey `json:"barber_id"`
	Page     int       `json:"page"`
}

func NewQuery() Query {
	return Query{Page: 1}
}

// WithSearch sets the client-name search term and goes back to page 1.
func (q Query) WithSearch(term string) Query {
	q.Search = term
	q.Page = 1
	return q
}

// WithBarber sets the barber filter and goes back to page 1.
func (q Query) WithBarber(raw string) Query {
	q.BarberID = NewBarberKey(raw)
	q.Page = 1
	return q
}

// GoToPage moves to page when it lies in [1, totalPages]; any other request
// leaves the query unchanged.
func (q Query) GoToPage(page, totalPages int) Query {
	if page < 1 || page > totalPages {
		return q
	}
	q.Page = page
	return q
}

// matchesText is a case-insensitive substring match; a blank term matches
// everything.
func matchesText(value, term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(term))
}
