package distributions

import "math"

//Model holds the fixed hyperparameters of a Normal-Inverse-Chi-Squared
//prior on the mean and variance of a Normal likelihood. One Model is
//shared across all groups in an inference run and is never mutated.
type Model struct {
	Mu      float64 // prior mean location
	Kappa   float64 // pseudo-count on the prior mean
	Sigmasq float64 // prior scale
	Nu      float64 // prior degrees of freedom
}

//ExampleModel will return the canonical parameter set used by tests
//and fixtures.
func ExampleModel() Model {
	return Model{Mu: 0, Kappa: 1, Sigmasq: 1, Nu: 1}
}

//Valid reports whether the hyperparameters are finite and positive
//where required. Callers loading a Model from outside should check
//this before use.
func (m Model) Valid() bool {
	for _, v := range [4]float64{m.Mu, m.Kappa, m.Sigmasq, m.Nu} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return m.Kappa > 0 && m.Sigmasq > 0 && m.Nu > 0
}

//PlusGroup will combine the prior with one group's sufficient
//statistics and return the exact conjugate posterior hyperparameters.
//Pure function; an empty group returns the prior unchanged.
func (m Model) PlusGroup(g *Group) Model {
	n := float64(g.Count)
	mu1 := m.Mu - g.Mean
	var post Model
	post.Kappa = m.Kappa + n
	post.Mu = (m.Kappa*m.Mu + g.Mean*n) / post.Kappa
	post.Nu = m.Nu + n
	post.Sigmasq = (m.Nu*m.Sigmasq +
		g.CountTimesVariance +
		(n*m.Kappa*mu1*mu1)/post.Kappa) / post.Nu
	return post
}
