package charts

import (
	"bytes"
	"strings"
	"testing"

	"churnlens/pkg/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKinds(t *testing.T) {
	kinds, err := ParseKinds("all")
	require.NoError(t, err)
	assert.Equal(t, AllKinds(), kinds)

	kinds, err = ParseKinds(" Contract, spend ")
	require.NoError(t, err)
	assert.Equal(t, []Kind{KindContract, KindSpend}, kinds)

	_, err = ParseKinds("pie")
	assert.Error(t, err)
}

func TestExport_AllCharts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, dataset.NewGenerator()))
	out := buf.String()

	assert.Equal(t, 1, strings.Count(out, "# TYPE churnlens_customers gauge"))
	assert.Contains(t, out, "# TYPE churnlens_monthly_charge_brl summary")

	// 3 contract types and 4 payment methods, two statuses each.
	assert.Equal(t, 14, strings.Count(out, "churnlens_customers{"))
	assert.Contains(t, out, `category="Mensal"`)
	assert.Contains(t, out, `category="PIX"`)
	assert.Contains(t, out, `status="Cancelado"`)
	assert.Contains(t, out, `churnlens_monthly_charge_brl_count{status="Ativo"}`)
	assert.Contains(t, out, `quantile="0.5"`)
}

func TestExport_SpendOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, dataset.NewGenerator(), KindSpend))
	out := buf.String()

	assert.NotContains(t, out, "churnlens_customers")
	assert.Contains(t, out, "churnlens_monthly_charge_brl_sum")
}

func TestCountFamily_SampleValues(t *testing.T) {
	chart := CountChart{
		Categories: []string{"a", "b"},
		Hues:       []string{"Ativo", "Cancelado"},
		Counts:     [][]int{{1, 2}, {3, 4}},
	}
	mf := CountFamily("x_total", "help", "test", chart)
	require.Len(t, mf.GetMetric(), 4)
	assert.Equal(t, 4.0, mf.GetMetric()[3].GetGauge().GetValue())
	assert.Equal(t, "b", mf.GetMetric()[3].GetLabel()[1].GetValue())
}
