package distributions

import "math"

const logPi = 1.1447298858494002

func sqr(x float64) float64 { return x * x }

func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}

//lgammaNu will return lgamma((nu+1)/2) - lgamma(nu/2), the log-gamma
//ratio appearing in the Student-t normalizer. Kept as a named entry
//point so an approximate half-integer implementation can replace the
//exact one without touching callers.
func lgammaNu(nu float64) float64 {
	return lgamma(0.5*nu+0.5) - lgamma(0.5*nu)
}
