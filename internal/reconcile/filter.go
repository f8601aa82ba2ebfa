package reconcile

import (
	"strings"
	"time"

	"github.com/erazemk/cardledger/internal/model"
)

// Filter selects reconciled entries. Zero-valued fields are unset and match
// everything; set fields are combined with AND.
type Filter struct {
	CardNumber string
	CardType   string
	Status     model.CardStatus
	Vendor     string
	Model      string

	// From and To bound the sale date, inclusive, at day granularity in the
	// location of each bound. Either may be zero for an open end.
	From time.Time
	To   time.Time

	Month model.YearMonth

	// Search matches case-insensitively against the displayed fields.
	Search string
}

// IsZero reports whether no predicate is set.
func (f Filter) IsZero() bool {
	return f == Filter{}
}

// Match reports whether e satisfies every set predicate.
func (f Filter) Match(e model.Entry) bool {
	if f.CardNumber != "" && e.CardNumber != f.CardNumber {
		return false
	}
	if f.CardType != "" && e.CardType != f.CardType {
		return false
	}
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	if f.Vendor != "" && e.Vendor != f.Vendor {
		return false
	}
	if f.Model != "" && e.Model != f.Model {
		return false
	}
	if f.hasWindow() {
		if e.DateTime == nil || !f.inWindow(*e.DateTime) {
			return false
		}
	}
	if f.Search != "" && !containsFold(e.DisplayFields(), f.Search) {
		return false
	}
	return true
}

func (f Filter) hasWindow() bool {
	return !f.From.IsZero() || !f.To.IsZero() || !f.Month.IsZero()
}

func (f Filter) inWindow(t time.Time) bool {
	return inDateRange(t, f.From, f.To) && (f.Month.IsZero() || f.Month.Contains(t))
}

// Apply returns the entries matching f, in input order. An unset filter
// returns entries unchanged.
func Apply(entries []model.Entry, f Filter) []model.Entry {
	if f.IsZero() {
		return entries
	}
	out := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		if f.Match(e) {
			out = append(out, e)
		}
	}
	return out
}

// inDateRange reports whether t falls on or after the day of from and on or
// before the end of the day of to. Zero bounds are open.
func inDateRange(t, from, to time.Time) bool {
	if !from.IsZero() && t.Before(startOfDay(from)) {
		return false
	}
	if !to.IsZero() && !t.Before(startOfDay(to).AddDate(0, 0, 1)) {
		return false
	}
	return true
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// containsFold reports whether the lowercase concatenation of fields
// contains the lowercase term.
func containsFold(fields []string, term string) bool {
	return strings.Contains(strings.ToLower(strings.Join(fields, " ")), strings.ToLower(term))
}
