package distributions

import (
	"math"

	"golang.org/x/exp/rand"
)

//Scorer caches the four scalars that determine a group's
//posterior-predictive Student-t log-density. Init once per group
//state, Eval many times: the log-gamma and division work is paid once
//and amortized across every candidate value scored against the group.
type Scorer struct {
	Score     float64
	LogCoeff  float64
	Precision float64
	Mean      float64
}

//Init will derive the cached parameters from the conjugate posterior
//of the group. The rng is unused and accepted for interface
//uniformity.
func (s *Scorer) Init(m Model, g *Group, rng *rand.Rand) {
	post := m.PlusGroup(g)
	lambda := post.Kappa / ((post.Kappa + 1) * post.Sigmasq)
	s.Score = lgammaNu(post.Nu) + 0.5*math.Log(lambda/(math.Pi*post.Nu))
	s.LogCoeff = -0.5*post.Nu - 0.5
	s.Precision = lambda / post.Nu
	s.Mean = post.Mu
}

//Eval will return the posterior-predictive log-density at value.
func (s *Scorer) Eval(m Model, value float64, rng *rand.Rand) float64 {
	return s.Score + s.LogCoeff*math.Log(1+s.Precision*sqr(value-s.Mean))
}
