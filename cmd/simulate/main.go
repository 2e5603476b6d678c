// Command simulate runs a headless scripted playthrough: greedy investment
// into the cheapest available policies, an event every few cycles, and a
// cycle-by-cycle report. Useful for smoke-testing catalog balance.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/ohindex/sovereign-health/internal/catalog"
	"github.com/ohindex/sovereign-health/internal/entropy"
	"github.com/ohindex/sovereign-health/internal/events"
	"github.com/ohindex/sovereign-health/internal/game"
)

func main() {
	iso := flag.String("country", "BRA", "ISO code of the country to play")
	seed := flag.Int64("seed", 42, "session seed for competitor drift")
	eventEvery := flag.Int("event-every", 3, "trigger an event every N cycles (0 = never)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	deck, err := events.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load event deck:", err)
		os.Exit(1)
	}

	session := game.NewSession(*seed)
	if res := session.Dispatch(game.SelectCountry{ISO: *iso}); !res.Applied {
		fmt.Fprintf(os.Stderr, "select country %s: %s\n", *iso, res.Reason)
		os.Exit(1)
	}
	session.Dispatch(game.Start{})

	st := session.Snapshot()
	fmt.Printf("Sovereign Health playthrough: %s, %d–%d, seed %d\n\n",
		st.Country, st.StartYear, st.EndYear, *seed)

	for cycle := 1; ; cycle++ {
		investGreedily(session)

		if *eventEvery > 0 && cycle%*eventEvery == 0 {
			playEvent(session, deck)
		}

		if res := session.Dispatch(game.AdvanceCycle{}); !res.Applied {
			break
		}
		st = session.Snapshot()
		if st.Phase == game.PhaseEnded {
			break
		}
		fmt.Printf("cycle %2d  year %d  OHI %5.1f  rank %2d/%d  spent %s\n",
			st.Cycle, st.Year, st.Composite,
			playerRank(st), len(st.Rankings),
			humanize.Comma(int64(st.History[len(st.History)-1].Spent)),
		)
	}

	printSummary(session.Snapshot())
}

// investGreedily spends each pillar's remaining budget on the cheapest
// available next levels, favoring broad coverage over deep stacking.
func investGreedily(session *game.Session) {
	for {
		st := session.Snapshot()
		invested := false
		for _, ps := range st.Policies {
			if ps.Status != game.StatusAvailable && ps.Status != game.StatusActive {
				continue
			}
			def, ok := catalog.ByID(ps.PolicyID)
			if !ok {
				continue
			}
			cost := catalog.CostAtLevel(def, ps.Level+1)
			if cost > st.Budget.Available(def.Pillar) {
				continue
			}
			if res := session.Dispatch(game.InvestInPolicy{PolicyID: ps.PolicyID, Cost: cost}); res.Applied {
				invested = true
			}
		}
		if !invested {
			return
		}
	}
}

// playEvent draws, announces, and resolves one event with its first choice.
func playEvent(session *game.Session, deck *events.Deck) {
	ev := deck.Draw(entropy.CryptoFloat())
	if res := session.Dispatch(game.TriggerEvent{Event: ev}); !res.Applied {
		return
	}
	fmt.Printf("      event: [%s] %s → %s\n", ev.Severity, ev.Title, ev.Choices[0].Label)
	session.Dispatch(game.ResolveEvent{ChoiceID: ev.Choices[0].ID})
}

func playerRank(st game.State) int {
	for _, e := range st.Rankings {
		if e.Player {
			return e.Rank
		}
	}
	return 0
}

func printSummary(st game.State) {
	fmt.Printf("\nRun complete: %d cycles, final OHI %.1f\n", st.Stats.CyclesPlayed, st.Composite)
	fmt.Printf("  peak %.1f  lowest %.1f  best rank %d\n",
		st.Stats.PeakScore, st.Stats.LowestScore, st.Stats.BestRank)
	fmt.Printf("  total invested %s points, %d policies maxed, %d events handled (%d critical)\n",
		humanize.Comma(int64(st.Stats.TotalSpent)),
		st.Stats.MaxedPolicies, st.Stats.EventsHandled, st.Stats.CriticalEventsHandled)
	if len(st.Stats.Achievements) > 0 {
		fmt.Printf("  achievements: %v\n", st.Stats.Achievements)
	}

	fmt.Println("\nFinal leaderboard:")
	for _, e := range st.Rankings {
		marker := "  "
		if e.Player {
			marker = "▸ "
		}
		fmt.Printf("  %s%2d. %-14s %5.1f  (%+d)\n", marker, e.Rank, e.Name, e.Score, e.Delta)
	}
}
