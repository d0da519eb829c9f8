// Package motivation holds the quote collection and the vision board.
package motivation

import (
	"math/rand"
	"sync"
)

// Quote is one saved motivational quote.
type Quote struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Author string `json:"author"`
}

// VisionItem is one vision board entry.
type VisionItem struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	EstimatedCost  float64 `json:"estimatedCost,omitempty"`
	RequiredIncome float64 `json:"requiredIncome,omitempty"`
}

// DefaultQuotes seeds a fresh account.
func DefaultQuotes() []Quote {
	return []Quote{
		{
			ID:     "1",
			Text:   "Success is not final, failure is not fatal: it is the courage to continue that counts.",
			Author: "Winston Churchill",
		},
		{
			ID:     "2",
			Text:   "The way to get started is to quit talking and begin doing.",
			Author: "Walt Disney",
		},
	}
}

// DefaultVision seeds a fresh vision board.
func DefaultVision() []VisionItem {
	return []VisionItem{
		{
			ID:             "1",
			Title:          "BMW M4 Competition",
			Description:    "High-performance sports car",
			EstimatedCost:  80000,
			RequiredIncome: 15000,
		},
		{
			ID:             "2",
			Title:          "Luxury Penthouse",
			Description:    "Downtown penthouse with city views",
			EstimatedCost:  500000,
			RequiredIncome: 25000,
		},
	}
}

// Rand serializes draws from a seeded source. rand.Rand itself is not safe
// for concurrent use and one instance is shared across requests.
type Rand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRand(seed int64) *Rand {
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

func (r *Rand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

// QuoteOfDay picks a quote using the supplied source, nil when the
// collection is empty.
func QuoteOfDay(quotes []Quote, rng *Rand) *Quote {
	if len(quotes) == 0 {
		return nil
	}
	return &quotes[rng.Intn(len(quotes))]
}
