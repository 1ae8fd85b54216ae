package ledger

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"moneywise/internal/domain"
)

const weekWindow = 7 * 24 * time.Hour

// CategoryAmount is the outflow of one category
type CategoryAmount struct {
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
	Percent  int64  `json:"percent"`
}

// Summary is the parent's spending overview
type Summary struct {
	Income     int64            `json:"income"`
	Expenses   int64            `json:"expenses"`
	Saved      int64            `json:"saved"`
	Withdrawn  int64            `json:"withdrawn"`
	ThisWeek   int64            `json:"this_week"`
	ByCategory []CategoryAmount `json:"by_category"`
}

// Summarize aggregates the activity history. Outflow categories are expenses
// plus moves to savings, sorted by amount descending then name.
func Summarize(activity []domain.Activity, now time.Time) Summary {
	var s Summary
	byCategory := map[string]int64{}
	for _, a := range activity {
		abs := max(a.Amount, -a.Amount)
		switch a.Type {
		case domain.ActivityIncome:
			s.Income += abs
		case domain.ActivityExpense:
			s.Expenses += abs
			byCategory[a.Category] += abs
			if now.Sub(a.Timestamp) <= weekWindow {
				s.ThisWeek += abs
			}
		case domain.ActivitySavings:
			if a.Amount < 0 {
				s.Saved += abs
				byCategory[a.Category] += abs
			} else {
				s.Withdrawn += abs
			}
		}
	}

	outflow := s.Expenses + s.Saved
	s.ByCategory = make([]CategoryAmount, 0, len(byCategory))
	for name, amount := range byCategory {
		s.ByCategory = append(s.ByCategory, CategoryAmount{
			Category: name,
			Amount:   amount,
			Percent:  Percent(amount, outflow),
		})
	}
	slices.SortFunc(s.ByCategory, func(a, b CategoryAmount) int {
		if c := cmp.Compare(b.Amount, a.Amount); c != 0 {
			return c
		}
		return strings.Compare(a.Category, b.Category)
	})
	return s
}

// FilterAll matches every activity type in FilterActivity
const FilterAll = "all"

// FilterActivity keeps entries whose description or category contains search
// (case-insensitive) and whose type matches typ. An empty typ means all.
func FilterActivity(activity []domain.Activity, search, typ string) []domain.Activity {
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]domain.Activity, 0, len(activity))
	for _, a := range activity {
		if typ != "" && typ != FilterAll && string(a.Type) != typ {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(a.Description), search) &&
			!strings.Contains(strings.ToLower(a.Category), search) {
			continue
		}
		out = append(out, a)
	}
	return out
}
