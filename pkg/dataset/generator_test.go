package dataset

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestGenerator_ShapeAndRanges(t *testing.T) {
	ds := NewGenerator().Generate()
	require.Len(t, ds, DefaultSize)

	for i, c := range ds {
		assert.GreaterOrEqual(t, c.TenureMonths, 0, "row %d", i)
		assert.Less(t, c.TenureMonths, maxTenureMonths, "row %d", i)
		assert.GreaterOrEqual(t, c.MonthlyCharge, float64(minCharge), "row %d", i)
		assert.Less(t, c.MonthlyCharge, float64(maxCharge), "row %d", i)

		cents := c.MonthlyCharge * 100
		assert.InDelta(t, math.Round(cents), cents, 1e-6, "row %d not rounded to cents", i)
	}
}

func TestGenerator_SeniorRate(t *testing.T) {
	var seniors, total int
	for seed := uint64(1); seed <= 20; seed++ {
		for _, c := range NewGenerator(WithSeed(seed)).Generate() {
			if c.IsSenior {
				seniors++
			}
			total++
		}
	}
	assert.InDelta(t, 0.15, float64(seniors)/float64(total), 0.015)
}

func TestGenerator_TotalChargesNoise(t *testing.T) {
	var residuals []float64
	for seed := uint64(1); seed <= 20; seed++ {
		for _, c := range NewGenerator(WithSeed(seed)).Generate() {
			residuals = append(residuals, c.TotalCharges-float64(c.TenureMonths)*c.MonthlyCharge)
		}
	}
	mean, std := stat.MeanStdDev(residuals, nil)
	assert.InDelta(t, 0, mean, 5)
	assert.InDelta(t, 100, std, 5)
}

func TestGenerator_ChurnRateByContract(t *testing.T) {
	var monthly, monthlyCancelled, other, otherCancelled int
	gen := NewGenerator(WithSize(20000), WithChurnSource(rand.NewPCG(7, 11)))
	for _, c := range gen.Generate() {
		if c.Contract == Monthly {
			monthly++
			if c.Churned == Cancelled {
				monthlyCancelled++
			}
			continue
		}
		other++
		if c.Churned == Cancelled {
			otherCancelled++
		}
	}
	require.NotZero(t, monthly)
	require.NotZero(t, other)
	assert.InDelta(t, 0.5, float64(monthlyCancelled)/float64(monthly), 0.02)
	assert.InDelta(t, 0.1, float64(otherCancelled)/float64(other), 0.02)
}

func TestGenerator_ContractMix(t *testing.T) {
	counts := map[ContractType]int{}
	ds := NewGenerator(WithSize(20000)).Generate()
	for _, c := range ds {
		counts[c.Contract]++
	}
	n := float64(len(ds))
	assert.InDelta(t, 0.6, float64(counts[Monthly])/n, 0.02)
	assert.InDelta(t, 0.2, float64(counts[Yearly])/n, 0.02)
	assert.InDelta(t, 0.2, float64(counts[Weekly])/n, 0.02)
}

// Seeded columns repeat across calls while the churn label is redrawn.
func TestGenerator_SeededColumnsRepeatChurnDoesNot(t *testing.T) {
	gen := NewGenerator()
	first := gen.Generate()
	second := gen.Generate()
	require.Len(t, second, len(first))

	churnDiffers := false
	for i := range first {
		a, b := first[i], second[i]
		assert.Equal(t, a.Gender, b.Gender)
		assert.Equal(t, a.IsSenior, b.IsSenior)
		assert.Equal(t, a.TenureMonths, b.TenureMonths)
		assert.Equal(t, a.MonthlyCharge, b.MonthlyCharge)
		assert.Equal(t, a.Contract, b.Contract)
		assert.Equal(t, a.Payment, b.Payment)
		assert.Equal(t, a.TotalCharges, b.TotalCharges)
		if a.Churned != b.Churned {
			churnDiffers = true
		}
	}
	assert.True(t, churnDiffers, "churn labels should be redrawn on every call")
}

func TestGenerator_FixedChurnSourceIsReproducible(t *testing.T) {
	a := NewGenerator(WithChurnSource(rand.NewPCG(3, 3))).Generate()
	b := NewGenerator(WithChurnSource(rand.NewPCG(3, 3))).Generate()
	assert.Equal(t, a, b)
}

func TestRoundCharge(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{20.004, 20.00},
		{55.555, 55.56},
		{119.994, 119.99},
		{119.996, 119.99},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, roundCharge(test.input), "roundCharge(%v)", test.input)
	}
}
