// Package scoring derives totals, standings, and chart data from a game's
// round list. Everything here is a pure function over the game's state and
// is safe to recompute on every read.
package scoring

import (
	"iter"
	"sort"

	"scoretally/internal/models"
)

// PlayerTotals returns each player's running total across all rounds.
// Missing round entries count as 0.
func PlayerTotals(g *models.Game) map[string]int {
	totals := make(map[string]int, len(g.Players))
	for _, p := range g.Players {
		totals[p.ID] = 0
	}
	for _, r := range g.Rounds {
		for _, p := range g.Players {
			totals[p.ID] += r.Scores.Get(p.ID)
		}
	}
	return totals
}

// ProjectedTotals returns what PlayerTotals would be if pending were
// appended as the next round. The game is not mutated.
func ProjectedTotals(g *models.Game, pending models.ScoreMap) map[string]int {
	totals := PlayerTotals(g)
	for _, p := range g.Players {
		totals[p.ID] += pending.Get(p.ID)
	}
	return totals
}

// ReachesTarget reports whether any of the given totals meets or exceeds
// the game's target score
func ReachesTarget(g *models.Game, totals map[string]int) bool {
	for _, total := range totals {
		if total >= g.TargetScore {
			return true
		}
	}
	return false
}

// Standings returns players ranked by running total, highest first. Players
// with equal totals keep their roster order.
func Standings(g *models.Game) []Standing {
	totals := PlayerTotals(g)

	standings := make([]Standing, 0, len(g.Players))
	for _, p := range g.Players {
		standings = append(standings, Standing{
			Player: p,
			Total:  totals[p.ID],
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Total > standings[j].Total
	})

	return standings
}

// ChartSeries returns the cumulative score series for a line chart: a
// synthetic round-0 point with every total at zero, then one point per
// round carrying each player's running total. The sequence is finite and
// can be ranged over any number of times.
func ChartSeries(g *models.Game) iter.Seq[ChartPoint] {
	return func(yield func(ChartPoint) bool) {
		running := make(map[string]int, len(g.Players))
		for _, p := range g.Players {
			running[p.ID] = 0
		}

		if !yield(ChartPoint{Round: 0, Totals: cloneTotals(running)}) {
			return
		}

		for i, r := range g.Rounds {
			for _, p := range g.Players {
				running[p.ID] += r.Scores.Get(p.ID)
			}
			if !yield(ChartPoint{Round: i + 1, Totals: cloneTotals(running)}) {
				return
			}
		}
	}
}

// ChartPoints materializes ChartSeries into a slice for JSON responses
func ChartPoints(g *models.Game) []ChartPoint {
	points := make([]ChartPoint, 0, len(g.Rounds)+1)
	for point := range ChartSeries(g) {
		points = append(points, point)
	}
	return points
}

func cloneTotals(totals map[string]int) map[string]int {
	out := make(map[string]int, len(totals))
	for id, v := range totals {
		out[id] = v
	}
	return out
}
