package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_ExportsSelectedChart(t *testing.T) {
	out, err := run(t, "--chart", "payment", "--size", "200")
	require.NoError(t, err)
	assert.Contains(t, out, "# TYPE churnlens_customers gauge")
	assert.Contains(t, out, `chart="payment"`)
	assert.NotContains(t, out, `chart="contract"`)
	assert.NotContains(t, out, "churnlens_monthly_charge_brl")
}

func TestRootCmd_RejectsBadInput(t *testing.T) {
	_, err := run(t, "--chart", "pie")
	assert.Error(t, err)

	_, err = run(t, "--size", "0")
	assert.Error(t, err)
}
