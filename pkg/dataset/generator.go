package dataset

import (
	"math/rand/v2"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	DefaultSeed = 42
	DefaultSize = 1000

	maxTenureMonths = 72
	minCharge       = 20
	maxCharge       = 120
	seniorRate      = 0.15
	noiseSigma      = 100

	monthlyChurnRate = 0.5
	otherChurnRate   = 0.1
)

var contractWeights = []float64{0.6, 0.2, 0.2}

// Generator draws synthetic customer datasets.
//
// Demographic and contract columns come from a source reseeded with the
// generator seed on every call, so they repeat call after call. The churn
// label comes from a separate source that is never reseeded; with no churn
// source configured the process-wide math/rand/v2 generator is used.
type Generator struct {
	seed     uint64
	size     int
	churnSrc rand.Source
}

type Option func(*Generator)

func WithSeed(seed uint64) Option {
	return func(g *Generator) { g.seed = seed }
}

func WithSize(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.size = n
		}
	}
}

// WithChurnSource fixes the source of the churn label draw.
func WithChurnSource(src rand.Source) Option {
	return func(g *Generator) { g.churnSrc = src }
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		seed: DefaultSeed,
		size: DefaultSize,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) Seed() uint64 { return g.seed }

func (g *Generator) Size() int { return g.size }

// Generate returns a fresh dataset. Columns are drawn one after another so a
// given seed always yields the same demographic columns.
func (g *Generator) Generate() Dataset {
	n := g.size
	src := rand.NewPCG(g.seed, g.seed)
	rng := rand.New(src)

	rows := make(Dataset, n)

	for i := range rows {
		rows[i].Gender = Gender(rng.IntN(2))
	}

	senior := distuv.Bernoulli{P: seniorRate, Src: src}
	for i := range rows {
		rows[i].IsSenior = senior.Rand() == 1
	}

	for i := range rows {
		rows[i].TenureMonths = rng.IntN(maxTenureMonths)
	}

	charge := distuv.Uniform{Min: minCharge, Max: maxCharge, Src: src}
	for i := range rows {
		rows[i].MonthlyCharge = roundCharge(charge.Rand())
	}

	contract := distuv.NewCategorical(contractWeights, src)
	for i := range rows {
		rows[i].Contract = ContractType(int(contract.Rand()))
	}

	payments := PaymentMethods()
	for i := range rows {
		rows[i].Payment = payments[rng.IntN(len(payments))]
	}

	noise := distuv.Normal{Mu: 0, Sigma: noiseSigma, Src: src}
	for i := range rows {
		rows[i].TotalCharges = float64(rows[i].TenureMonths)*rows[i].MonthlyCharge + noise.Rand()
	}

	monthly := distuv.Bernoulli{P: monthlyChurnRate, Src: g.churnSrc}
	other := distuv.Bernoulli{P: otherChurnRate, Src: g.churnSrc}
	for i := range rows {
		draw := other
		if rows[i].Contract == Monthly {
			draw = monthly
		}
		if draw.Rand() == 1 {
			rows[i].Churned = Cancelled
		} else {
			rows[i].Churned = Active
		}
	}

	return rows
}

// roundCharge rounds half to even at two decimals and keeps the value below
// the exclusive upper bound.
func roundCharge(v float64) float64 {
	d := decimal.NewFromFloat(v).RoundBank(2)
	upper := decimal.NewFromInt(maxCharge)
	if d.GreaterThanOrEqual(upper) {
		d = upper.Sub(decimal.New(1, -2))
	}
	return d.InexactFloat64()
}
