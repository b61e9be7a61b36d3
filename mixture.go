package distributions

import (
	"math"

	"golang.org/x/exp/rand"
)

//Mixture manages many groups together with their cached Scorer
//parameters laid out as parallel arrays, so one value can be scored
//against every live group in a single pass over flat float slices.
//Array slot i always holds the Scorer fields derived from Groups[i]
//under the shared model. Mutating operations keep all arrays the same
//length; callers must serialize mutations externally.
type Mixture struct {
	Groups []Group

	score     []float64
	logCoeff  []float64
	precision []float64
	mean      []float64
	temp      []float64
}

//Len will return the number of live groups.
func (mix *Mixture) Len() int {
	return len(mix.Groups)
}

//Temp will return the reusable scratch buffer, resized alongside the
//group arrays. Callers may use it as the output buffer for ScoreValue
//to avoid per-call allocation.
func (mix *Mixture) Temp() []float64 {
	return mix.temp
}

func (mix *Mixture) updateGroup(m Model, groupid int, rng *rand.Rand) {
	var scorer Scorer
	scorer.Init(m, &mix.Groups[groupid], rng)
	mix.score[groupid] = scorer.Score
	mix.logCoeff[groupid] = scorer.LogCoeff
	mix.precision[groupid] = scorer.Precision
	mix.mean[groupid] = scorer.Mean
}

func resize(s []float64, n int) []float64 {
	if n > len(s) {
		// append doubles capacity on reallocation
		return append(s, make([]float64, n-len(s))...)
	}
	return s[:n]
}

func (mix *Mixture) resizeAll(n int) {
	mix.score = resize(mix.score, n)
	mix.logCoeff = resize(mix.logCoeff, n)
	mix.precision = resize(mix.precision, n)
	mix.mean = resize(mix.mean, n)
	mix.temp = resize(mix.temp, n)
}

//Init will size the cached arrays to match an externally populated
//Groups slice and recompute every group's Scorer parameters.
func (mix *Mixture) Init(m Model, rng *rand.Rand) {
	groupCount := len(mix.Groups)
	mix.resizeAll(groupCount)
	for groupid := 0; groupid < groupCount; groupid++ {
		mix.updateGroup(m, groupid, rng)
	}
}

//AddGroup will append one empty group, grow all arrays by one slot and
//fill in the new group's Scorer parameters. Amortized O(1).
func (mix *Mixture) AddGroup(m Model, rng *rand.Rand) {
	groupid := len(mix.Groups)
	mix.Groups = append(mix.Groups, Group{})
	mix.resizeAll(groupid + 1)
	mix.Groups[groupid].Init(m, rng)
	mix.updateGroup(m, groupid, rng)
}

//RemoveGroup will delete one group in O(1) by swapping the last slot's
//group and cached parameters into its place, then shrinking all arrays
//by one. A group's index is therefore not a stable identity across
//removals; callers needing stable identity must keep their own
//remapping.
func (mix *Mixture) RemoveGroup(m Model, groupid int) {
	assertAt(CheckCheap, groupid >= 0 && groupid < len(mix.Groups),
		"bad groupid: %d (have %d groups)", groupid, len(mix.Groups))
	last := len(mix.Groups) - 1
	if groupid != last {
		mix.Groups[groupid] = mix.Groups[last]
		mix.score[groupid] = mix.score[last]
		mix.logCoeff[groupid] = mix.logCoeff[last]
		mix.precision[groupid] = mix.precision[last]
		mix.mean[groupid] = mix.mean[last]
	}
	mix.Groups = mix.Groups[:last]
	mix.resizeAll(last)
}

//AddValue will absorb value into the identified group and refresh only
//that group's cached Scorer parameters.
func (mix *Mixture) AddValue(m Model, groupid int, value float64, rng *rand.Rand) {
	assertAt(CheckCheap, groupid >= 0 && groupid < len(mix.Groups),
		"bad groupid: %d (have %d groups)", groupid, len(mix.Groups))
	mix.Groups[groupid].AddValue(m, value, rng)
	mix.updateGroup(m, groupid, rng)
}

//RemoveValue will remove value from the identified group and refresh
//only that group's cached Scorer parameters. Panics if the group is
//empty.
func (mix *Mixture) RemoveValue(m Model, groupid int, value float64, rng *rand.Rand) {
	assertAt(CheckCheap, groupid >= 0 && groupid < len(mix.Groups),
		"bad groupid: %d (have %d groups)", groupid, len(mix.Groups))
	mix.Groups[groupid].RemoveValue(m, value, rng)
	mix.updateGroup(m, groupid, rng)
}

//ScoreValue will write the posterior-predictive log-density of value
//under every live group into scoresAccum, which must have length
//exactly Len(). Read-only with respect to the mixture; touches only
//the cached arrays, never the raw group statistics.
func (mix *Mixture) ScoreValue(m Model, value float64, scoresAccum []float64, rng *rand.Rand) {
	assertAt(CheckFull, len(scoresAccum) == len(mix.Groups),
		"bad scores buffer: len %d, want %d", len(scoresAccum), len(mix.Groups))
	for i := range mix.Groups {
		scoresAccum[i] = mix.score[i] +
			mix.logCoeff[i]*math.Log(1+mix.precision[i]*sqr(value-mix.mean[i]))
	}
}
