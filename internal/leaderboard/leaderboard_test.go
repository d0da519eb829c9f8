package leaderboard

import (
	"context"
	"testing"
)

func TestGrowth(t *testing.T) {
	t.Parallel()

	e := Entry{Revenue: 145000, LastMonthRevenue: 125000}
	if got := e.Growth(); got != 16 {
		t.Errorf("Growth = %v, want 16", got)
	}

	fresh := Entry{Revenue: 50000, LastMonthRevenue: 0}
	if got := fresh.Growth(); got != 0 {
		t.Errorf("Growth with no prior month = %v, want 0", got)
	}

	down := Entry{Revenue: 135000, LastMonthRevenue: 140000}
	if got := down.Growth(); got != -3.57 {
		t.Errorf("negative Growth = %v, want -3.57", got)
	}
}

func TestMonthlyRanks(t *testing.T) {
	t.Parallel()

	entries := DemoEntries()
	ranked := Monthly(entries)

	for i := 1; i < len(ranked); i++ {
		if ranked[i].Revenue > ranked[i-1].Revenue {
			t.Fatalf("not sorted by revenue at %d", i)
		}
	}
	for i, e := range ranked {
		if e.Rank != i+1 {
			t.Errorf("%s: Rank = %d, want %d", e.Name, e.Rank, i+1)
		}
	}

	// Input order untouched.
	if entries[0].Name != "Sarah Chen" {
		t.Error("Monthly mutated its input")
	}
}

func TestWeeklyRanksByWins(t *testing.T) {
	t.Parallel()

	ranked := Weekly(DemoEntries())
	if ranked[0].Name != "Elena Rodriguez" {
		t.Errorf("top weekly = %s, want Elena Rodriguez (6 wins)", ranked[0].Name)
	}
}

func TestRisingStars(t *testing.T) {
	t.Parallel()

	rising := RisingStars(DemoEntries())
	// Demo growth rates top out at Elena's 16%, so nobody clears the 20% bar.
	if len(rising) != 0 {
		t.Fatalf("got %d rising stars, want 0: %+v", len(rising), rising)
	}

	boosted := append(DemoEntries(), Entry{
		ID: "x", Name: "Rocket", Revenue: 60000, LastMonthRevenue: 40000,
	})
	rising = RisingStars(boosted)
	if len(rising) != 1 || rising[0].Name != "Rocket" {
		t.Fatalf("rising = %+v", rising)
	}
}

func TestMemoryRanks(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ranks := NewMemoryRanks()

	if _, reported, err := ranks.Revenue(ctx, 1); err != nil || reported {
		t.Fatalf("fresh store reported revenue: %v %v", reported, err)
	}
	if rank, err := ranks.Rank(ctx, 1); err != nil || rank != 0 {
		t.Fatalf("fresh store rank = %d, %v", rank, err)
	}

	if err := ranks.Report(ctx, 1, 50_000); err != nil {
		t.Fatal(err)
	}
	if err := ranks.Report(ctx, 2, 80_000); err != nil {
		t.Fatal(err)
	}
	if err := ranks.Report(ctx, 3, 20_000); err != nil {
		t.Fatal(err)
	}

	if rank, err := ranks.Rank(ctx, 1); err != nil || rank != 2 {
		t.Errorf("rank of user 1 = %d, %v; want 2", rank, err)
	}
	if rank, err := ranks.Rank(ctx, 2); err != nil || rank != 1 {
		t.Errorf("rank of user 2 = %d, %v; want 1", rank, err)
	}

	// Re-reporting replaces the score.
	if err := ranks.Report(ctx, 3, 100_000); err != nil {
		t.Fatal(err)
	}
	if rank, err := ranks.Rank(ctx, 3); err != nil || rank != 1 {
		t.Errorf("rank of user 3 after update = %d, %v; want 1", rank, err)
	}
}
