package dataset

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"golang.org/x/text/cases"
)

// Column names of the frame built by Dataset.Frame.
const (
	ColGender        = "gender"
	ColIsSenior      = "is_senior"
	ColTenureMonths  = "tenure_months"
	ColMonthlyCharge = "monthly_charge"
	ColContractType  = "contract_type"
	ColPaymentMethod = "payment_method"
	ColTotalCharges  = "total_charges"
	ColChurned       = "churned"
)

// Dataset is a generated batch of customers. It lives for one chart render.
type Dataset []Customer

// Frame converts the dataset to a gota frame. Enum columns hold their
// display labels.
func (ds Dataset) Frame() dataframe.DataFrame {
	n := len(ds)
	gender := make([]string, n)
	senior := make([]bool, n)
	tenure := make([]int, n)
	charge := make([]float64, n)
	contract := make([]string, n)
	payment := make([]string, n)
	total := make([]float64, n)
	churned := make([]string, n)

	for i, c := range ds {
		gender[i] = c.Gender.Label()
		senior[i] = c.IsSenior
		tenure[i] = c.TenureMonths
		charge[i] = c.MonthlyCharge
		contract[i] = c.Contract.Label()
		payment[i] = c.Payment.Label()
		total[i] = c.TotalCharges
		churned[i] = c.Churned.Label()
	}

	return dataframe.New(
		series.New(gender, series.String, ColGender),
		series.New(senior, series.Bool, ColIsSenior),
		series.New(tenure, series.Int, ColTenureMonths),
		series.New(charge, series.Float, ColMonthlyCharge),
		series.New(contract, series.String, ColContractType),
		series.New(payment, series.String, ColPaymentMethod),
		series.New(total, series.Float, ColTotalCharges),
		series.New(churned, series.String, ColChurned),
	)
}

var cancelledTokens = map[string]struct{}{
	"true":      {},
	"1":         {},
	"sim":       {},
	"cancelado": {},
}

// IsCancelledToken reports whether a raw churn value reads as "cancelled".
// Matching is case-insensitive.
func IsCancelledToken(raw string) bool {
	_, ok := cancelledTokens[cases.Fold().String(raw)]
	return ok
}

// NormalizeChurn maps every raw churn label through the truthy-token check
// and back to a two-valued status.
func NormalizeChurn(ds Dataset) []ChurnStatus {
	out := make([]ChurnStatus, len(ds))
	for i, c := range ds {
		if IsCancelledToken(c.Churned.Label()) {
			out[i] = Cancelled
		} else {
			out[i] = Active
		}
	}
	return out
}
