package distributions

import (
	"golang.org/x/exp/rand"
)

//Group holds the online sufficient statistics for one cluster: the
//number of absorbed values, their running mean, and the running sum of
//squared deviations from that mean (count times the population
//variance, not divided by count). These three scalars fully summarize
//the cluster's data for posterior computation.
type Group struct {
	Count              int
	Mean               float64
	CountTimesVariance float64
}

//Init will reset the group to the empty state. The model and rng are
//accepted for interface uniformity with other component models and are
//unused here.
func (g *Group) Init(m Model, rng *rand.Rand) {
	g.Count = 0
	g.Mean = 0
	g.CountTimesVariance = 0
}

//AddValue will absorb one observation using Welford's online update,
//which stays numerically stable over long streams.
func (g *Group) AddValue(m Model, value float64, rng *rand.Rand) {
	g.Count++
	delta := value - g.Mean
	g.Mean += delta / float64(g.Count)
	g.CountTimesVariance += delta * (value - g.Mean)
}

//RemoveValue will undo a prior AddValue of the same value. Under
//floating point the inversion is approximate and round-off accumulates
//over many add/remove cycles on the same group. Panics if the group is
//empty.
func (g *Group) RemoveValue(m Model, value float64, rng *rand.Rand) {
	// not gated by CheckLevel; a negative Count corrupts every later posterior
	if g.Count <= 0 {
		panic("cannot remove value from empty group")
	}
	total := g.Mean * float64(g.Count)
	delta := value - g.Mean
	g.Count--
	if g.Count == 0 {
		g.Mean = 0
	} else {
		g.Mean = (total - value) / float64(g.Count)
	}
	if g.Count <= 1 {
		// variance is undefined for fewer than two points
		g.CountTimesVariance = 0
	} else {
		g.CountTimesVariance -= delta * (value - g.Mean)
	}
}

//Merge will absorb another group's statistics into this one using the
//pairwise variance combination of Chan et al., which handles
//unequal-size partitions. The source group is read but not modified.
func (g *Group) Merge(m Model, source *Group, rng *rand.Rand) {
	totalCount := g.Count + source.Count
	if totalCount == 0 {
		return
	}
	delta := source.Mean - g.Mean
	sourcePart := float64(source.Count) / float64(totalCount)
	crossPart := float64(g.Count) * sourcePart
	g.Count = totalCount
	g.Mean += sourcePart * delta
	g.CountTimesVariance += source.CountTimesVariance + crossPart*sqr(delta)
}

//Variance will return the population variance of the absorbed values,
//or 0 when fewer than two values have been seen.
func (g *Group) Variance() float64 {
	if g.Count < 2 {
		return 0
	}
	return g.CountTimesVariance / float64(g.Count)
}
