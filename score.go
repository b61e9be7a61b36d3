package distributions

import (
	"math"

	"golang.org/x/exp/rand"
)

//SampleValue will draw one value from the posterior-predictive
//distribution of the group: exact latent-parameter draw, then one
//Normal draw under those parameters.
func SampleValue(m Model, g *Group, rng *rand.Rand) float64 {
	var sampler Sampler
	sampler.Init(m, g, rng)
	return sampler.Eval(m, rng)
}

//ScoreValue will return the posterior-predictive log-density of value
//under the group. For repeated evaluations against the same group
//state, initialize a Scorer once instead.
func ScoreValue(m Model, g *Group, value float64, rng *rand.Rand) float64 {
	var scorer Scorer
	scorer.Init(m, g, rng)
	return scorer.Eval(m, value, rng)
}

//ScoreGroup will return the marginal log-evidence of the group's data
//under the prior, via the ratio of the prior and posterior NIX
//log-normalizers. Used for model-selection and merge/split decisions.
func ScoreGroup(m Model, g *Group, rng *rand.Rand) float64 {
	post := m.PlusGroup(g)
	score := lgamma(0.5*post.Nu) - lgamma(0.5*m.Nu)
	score += 0.5 * math.Log(m.Kappa/post.Kappa)
	score += 0.5*m.Nu*math.Log(m.Nu*m.Sigmasq) -
		0.5*post.Nu*math.Log(post.Nu*post.Sigmasq)
	score += -0.5 * float64(g.Count) * logPi
	return score
}
