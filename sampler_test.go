package distributions

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestSamplerDeterministicGivenSeed(t *testing.T) {
	model := Model{Mu: 1, Kappa: 2, Sigmasq: 1.5, Nu: 6}
	var g Group
	g.AddValue(model, 0.5, newTestRand(0))
	g.AddValue(model, 1.5, newTestRand(0))

	draw := func() []float64 {
		rng := newTestRand(31)
		out := make([]float64, 10)
		for i := range out {
			out[i] = SampleValue(model, &g, rng)
		}
		return out
	}
	require.Equal(t, draw(), draw())
}

func TestSamplerIndependentDrawsDiffer(t *testing.T) {
	rng := newTestRand(32)
	model := ExampleModel()
	var g Group
	g.AddValue(model, 2, rng)
	require.NotEqual(t, SampleValue(model, &g, rng), SampleValue(model, &g, rng))
}

//TestSamplerScorerAgreement draws many posterior-predictive samples
//and checks their empirical moments and central mass against the
//closed-form Student-t the Scorer encodes.
func TestSamplerScorerAgreement(t *testing.T) {
	rng := newTestRand(33)
	model := Model{Mu: 1, Kappa: 2, Sigmasq: 1.5, Nu: 8}
	var g Group
	for _, v := range []float64{0.5, 1.2, 0.8, 1.6, 1.0, 0.9} {
		g.AddValue(model, v, rng)
	}
	tdist := postPredictive(model, &g)

	const sampleCount = 20000
	samples := make([]float64, sampleCount)
	below := 0
	central := 0
	lo, hi := tdist.Quantile(0.1), tdist.Quantile(0.9)
	for i := range samples {
		x := SampleValue(model, &g, rng)
		samples[i] = x
		if x < tdist.Mu {
			below++
		}
		if x >= lo && x <= hi {
			central++
		}
	}

	wantVar := tdist.Sigma * tdist.Sigma * tdist.Nu / (tdist.Nu - 2)
	require.InDelta(t, tdist.Mu, stat.Mean(samples, nil), 0.05)
	require.InEpsilon(t, wantVar, stat.Variance(samples, nil), 0.15)
	require.InDelta(t, 0.5, float64(below)/sampleCount, 0.02)
	require.InDelta(t, 0.8, float64(central)/sampleCount, 0.02)
}
