package distributions

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

//Sampler holds one exact draw of the latent Normal parameters from the
//posterior given a group. Init then Eval yields one posterior-predictive
//sample; repeating both yields independent draws.
type Sampler struct {
	Mu      float64
	Sigmasq float64
}

//Init will draw Sigmasq from the scaled-inverse-chi-squared posterior
//and then Mu from its conditional Normal posterior.
func (s *Sampler) Init(m Model, g *Group, rng *rand.Rand) {
	post := m.PlusGroup(g)
	chisq := distuv.ChiSquared{K: post.Nu, Src: rng}
	s.Sigmasq = post.Nu * post.Sigmasq / chisq.Rand()
	s.Mu = distuv.Normal{
		Mu:    post.Mu,
		Sigma: math.Sqrt(s.Sigmasq / post.Kappa),
		Src:   rng,
	}.Rand()
}

//Eval will draw one value from Normal(Mu, Sigmasq) under the sampled
//latent parameters.
func (s *Sampler) Eval(m Model, rng *rand.Rand) float64 {
	return distuv.Normal{
		Mu:    s.Mu,
		Sigma: math.Sqrt(s.Sigmasq),
		Src:   rng,
	}.Rand()
}
