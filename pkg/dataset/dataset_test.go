package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCancelledToken(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"Cancelado", true},
		{"CANCELADO", true},
		{"sim", true},
		{"Sim", true},
		{"TRUE", true},
		{"1", true},
		{"Ativo", false},
		{"false", false},
		{"0", false},
		{" sim", false},
		{"", false},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, IsCancelledToken(test.input), "IsCancelledToken(%q)", test.input)
	}
}

func TestNormalizeChurn_RoundTripsLabels(t *testing.T) {
	ds := Dataset{
		{Churned: Cancelled},
		{Churned: Active},
		{Churned: Cancelled},
	}
	assert.Equal(t, []ChurnStatus{Cancelled, Active, Cancelled}, NormalizeChurn(ds))
}

func TestDataset_Frame(t *testing.T) {
	ds := NewGenerator(WithSize(50)).Generate()
	df := ds.Frame()
	require.NoError(t, df.Err)

	rows, cols := df.Dims()
	assert.Equal(t, 50, rows)
	assert.Equal(t, 8, cols)
	assert.Equal(t, []string{
		ColGender, ColIsSenior, ColTenureMonths, ColMonthlyCharge,
		ColContractType, ColPaymentMethod, ColTotalCharges, ColChurned,
	}, df.Names())

	charges := df.Col(ColMonthlyCharge).Float()
	for i, c := range ds {
		assert.Equal(t, c.MonthlyCharge, charges[i])
	}
	assert.Equal(t, ds[0].Contract.Label(), df.Col(ColContractType).Records()[0])
}
