// Command dppgibbs runs a collapsed Dirichlet-process Gibbs sampler
// over synthetic scalar data, clustering values with the
// Normal-Inverse-Chi-Squared component model. It exists to exercise
// the Mixture batch-scoring path end to end.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"math"
	"strconv"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/posterior/distributions"
)

type chain struct {
	model  distributions.Model
	mix    *distributions.Mixture
	data   []float64
	assign []int // value index -> current mixture slot
	alpha  float64
	rng    *rand.Rand

	scores []float64 // len mix.Len()+1, last slot is the new-cluster term
}

//clusterString will return a parenthesized summary of the current
//partition, one group of value indices per cluster.
func (c *chain) clusterString() string {
	var buffer bytes.Buffer
	for k := 0; k < c.mix.Len(); k++ {
		buffer.WriteString("(")
		first := true
		for i, a := range c.assign {
			if a != k {
				continue
			}
			if !first {
				buffer.WriteString(",")
			}
			buffer.WriteString(strconv.Itoa(i))
			first = false
		}
		buffer.WriteString(");")
	}
	return buffer.String()
}

//reseat will remove value i from its cluster, score it against every
//live cluster plus a fresh one, and sample a new assignment from the
//collapsed conditional.
func (c *chain) reseat(i int) {
	x := c.data[i]
	id := c.assign[i]
	c.mix.RemoveValue(c.model, id, x, c.rng)
	if c.mix.Groups[id].Count == 0 {
		last := c.mix.Len() - 1
		c.mix.RemoveGroup(c.model, id)
		// the last slot was swapped into id; repair the assignment table
		for j, a := range c.assign {
			if a == last {
				c.assign[j] = id
			}
		}
	}

	n := c.mix.Len()
	if cap(c.scores) < n+1 {
		c.scores = make([]float64, n+1)
	}
	c.scores = c.scores[:n+1]
	c.mix.ScoreValue(c.model, x, c.scores[:n], c.rng)
	for k := 0; k < n; k++ {
		c.scores[k] += math.Log(float64(c.mix.Groups[k].Count))
	}
	var empty distributions.Group
	c.scores[n] = math.Log(c.alpha) +
		distributions.ScoreValue(c.model, &empty, x, c.rng)

	total := floats.LogSumExp(c.scores)
	u := c.rng.Float64()
	pick := n
	cum := 0.0
	for k, s := range c.scores {
		cum += math.Exp(s - total)
		if cum > u {
			pick = k
			break
		}
	}
	if pick == n {
		c.mix.AddGroup(c.model, c.rng)
		pick = c.mix.Len() - 1
	}
	c.mix.AddValue(c.model, pick, x, c.rng)
	c.assign[i] = pick
}

//sweep will reseat every value once.
func (c *chain) sweep() {
	for i := range c.data {
		c.reseat(i)
	}
}

//logEvidence will return the total marginal log-evidence of the
//current partition under the prior.
func (c *chain) logEvidence() float64 {
	total := 0.0
	for k := range c.mix.Groups {
		total += distributions.ScoreGroup(c.model, &c.mix.Groups[k], c.rng)
	}
	return total
}

//bestCluster will return the MAP cluster slot for one value under the
//current mixture state, reusing the mixture's scratch buffer.
func (c *chain) bestCluster(x float64) int {
	scores := c.mix.Temp()
	c.mix.ScoreValue(c.model, x, scores, c.rng)
	return floats.MaxIdx(scores)
}

//accumAssoc will add the current partition's pairwise co-assignment
//indicators into the running association matrix.
func (c *chain) accumAssoc(assoc *mat.Dense) {
	n := len(c.data)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if c.assign[i] == c.assign[j] {
				assoc.Set(i, j, assoc.At(i, j)+1)
			}
		}
	}
}

func synthData(n int, rng *rand.Rand) []float64 {
	data := make([]float64, n)
	for i := range data {
		switch i % 3 {
		case 0:
			data[i] = rng.NormFloat64()*0.5 - 4
		case 1:
			data[i] = rng.NormFloat64() * 0.5
		default:
			data[i] = rng.NormFloat64()*0.5 + 4
		}
	}
	return data
}

func main() {
	genArg := flag.Int("gen", 1000, "number of Gibbs sweeps to run")
	alphaArg := flag.Float64("a", 1.0, "DP concentration parameter")
	seedArg := flag.Uint64("seed", 1729, "random seed")
	nArg := flag.Int("n", 30, "number of synthetic values to cluster")
	printFreqArg := flag.Int("pr", 100, "print partition every pr sweeps")
	sampFreqArg := flag.Int("samp", 10, "sample association matrix every samp sweeps")
	flag.Parse()
	if *alphaArg <= 0 {
		log.Fatal("concentration parameter must be positive")
	}
	if *nArg < 2 {
		log.Fatal("need at least two values to cluster")
	}

	rng := rand.New(rand.NewSource(*seedArg))
	data := synthData(*nArg, rng)

	model := distributions.ExampleModel()
	mix := &distributions.Mixture{Groups: make([]distributions.Group, 1)}
	mix.Init(model, rng)
	assign := make([]int, len(data))
	for i, x := range data {
		mix.AddValue(model, 0, x, rng)
		assign[i] = 0
	}

	c := &chain{
		model:  model,
		mix:    mix,
		data:   data,
		assign: assign,
		alpha:  *alphaArg,
		rng:    rng,
	}

	assoc := mat.NewDense(len(data), len(data), nil)
	samples := 0
	for gen := 1; gen <= *genArg; gen++ {
		c.sweep()
		if gen%*sampFreqArg == 0 {
			c.accumAssoc(assoc)
			samples++
		}
		if gen%*printFreqArg == 0 {
			fmt.Println(gen, c.mix.Len(), c.logEvidence(), c.clusterString())
		}
	}

	fmt.Println("clusters:", c.mix.Len())
	for k := range c.mix.Groups {
		g := &c.mix.Groups[k]
		fmt.Printf("  cluster %d: count=%d mean=%.3f var=%.3f\n",
			k, g.Count, g.Mean, g.Variance())
	}
	fmt.Println("MAP slot for 0.0:", c.bestCluster(0))
	if samples > 0 && len(data) <= 40 {
		assoc.Scale(1/float64(samples), assoc)
		fmt.Printf("mean association matrix:\n%.2f\n",
			mat.Formatted(assoc, mat.Prefix(""), mat.Squeeze()))
	}
}
