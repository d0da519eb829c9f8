// Package leaderboard ranks entrepreneurs by reported monthly revenue.
package leaderboard

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Entry is one leaderboard row.
type Entry struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Avatar           string  `json:"avatar,omitempty"`
	Revenue          float64 `json:"revenue"`
	LastMonthRevenue float64 `json:"lastMonthRevenue"`
	Location         string  `json:"location"`
	BusinessModel    string  `json:"businessModel"`
	WeeklyWins       int     `json:"weeklyWins"`
	Streak           int     `json:"streak"`
	GroupsCount      int     `json:"groupsCount"`
	Rank             int     `json:"rank"`
	PreviousRank     int     `json:"previousRank"`
	TotalEarned      float64 `json:"totalEarned"`
	JoinedAt         string  `json:"joinedAt"`
}

// Growth is month-over-month revenue growth as a percentage, zero when
// there is no prior month to compare against.
func (e Entry) Growth() float64 {
	if e.LastMonthRevenue == 0 {
		return 0
	}
	last := decimal.NewFromFloat(e.LastMonthRevenue)
	cur := decimal.NewFromFloat(e.Revenue)
	pct, _ := cur.Sub(last).Div(last).Mul(decimal.NewFromInt(100)).Round(2).Float64()
	return pct
}

// RankChange is positive when the entry climbed since last period.
func (e Entry) RankChange() int {
	return e.PreviousRank - e.Rank
}

// Monthly sorts by reported revenue and renumbers ranks.
func Monthly(entries []Entry) []Entry {
	out := clone(entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Revenue > out[j].Revenue })
	renumber(out)
	return out
}

// Weekly sorts by weekly wins, revenue breaking ties.
func Weekly(entries []Entry) []Entry {
	out := clone(entries)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].WeeklyWins != out[j].WeeklyWins {
			return out[i].WeeklyWins > out[j].WeeklyWins
		}
		return out[i].Revenue > out[j].Revenue
	})
	renumber(out)
	return out
}

// RisingStars picks entries growing more than 20% month over month,
// fastest first, capped at five.
func RisingStars(entries []Entry) []Entry {
	out := []Entry{}
	for _, e := range entries {
		if e.Growth() > 20 {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Growth() > out[j].Growth() })
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

func clone(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

func renumber(entries []Entry) {
	for i := range entries {
		entries[i].Rank = i + 1
	}
}
