package charts

import (
	"sort"

	"churnlens/pkg/dataset"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"
)

// colChurnStatus holds the normalized churn label added before grouping.
const colChurnStatus = "churn_status"

const whiskerIQR = 1.5

// ContractChurn counts customers per contract type split by the normalized
// churn status.
func ContractChurn(ds dataset.Dataset) CountChart {
	df := withNormalizedChurn(ds)

	categories := make([]string, 0, 3)
	for _, c := range dataset.ContractTypes() {
		categories = append(categories, c.Label())
	}

	return CountChart{
		Title:       "Cancelamento por Tipo de Contratos",
		XLabel:      "Tipo de Contratos",
		YLabel:      "Número de Clientes",
		LegendTitle: "Situação de Contratos",
		Categories:  categories,
		Hues:        statusLabels(),
		Counts:      countBy(df, dataset.ColContractType, categories, colChurnStatus, statusLabels()),
	}
}

// PaymentChurn counts customers per payment method using the raw churn
// column as hue. Unlike ContractChurn the label is not normalized.
func PaymentChurn(ds dataset.Dataset) CountChart {
	df := ds.Frame()

	categories := make([]string, 0, 4)
	for _, p := range dataset.PaymentMethods() {
		categories = append(categories, p.Label())
	}

	return CountChart{
		Title:        "Cancelamento por Forma de Pagamentos",
		XLabel:       "Formas de Pagamentos",
		YLabel:       "Número de Clientes",
		LegendTitle:  "Situação de Pagamentos",
		Categories:   categories,
		Hues:         statusLabels(),
		Counts:       countBy(df, dataset.ColPaymentMethod, categories, dataset.ColChurned, statusLabels()),
		RotateLabels: true,
	}
}

// MonthlySpend builds a box plot of monthly charge per normalized churn
// status, each box annotated with its mean.
func MonthlySpend(ds dataset.Dataset) BoxChart {
	df := withNormalizedChurn(ds)

	chart := BoxChart{
		Title:  "Distribuição dos Gastos Mensais por Cancelamentos",
		XLabel: "Situação de Gastos Mensais",
		YLabel: "Gastos Mensais (R$)",
	}
	for _, status := range statusLabels() {
		group := filterEq(df, colChurnStatus, status)
		var values []float64
		if group.Nrow() > 0 {
			values = group.Col(dataset.ColMonthlyCharge).Float()
		}
		chart.Boxes = append(chart.Boxes, boxStats(status, values))
	}
	return chart
}

// MeanAnnotation formats a group mean the way it is drawn above each box.
func MeanAnnotation(mean float64) string {
	return "Média: R$ " + decimal.NewFromFloat(mean).StringFixed(2)
}

func statusLabels() []string {
	out := make([]string, 0, 2)
	for _, s := range dataset.ChurnStatuses() {
		out = append(out, s.Label())
	}
	return out
}

func withNormalizedChurn(ds dataset.Dataset) dataframe.DataFrame {
	statuses := dataset.NormalizeChurn(ds)
	labels := make([]string, len(statuses))
	for i, s := range statuses {
		labels[i] = s.Label()
	}
	return ds.Frame().Mutate(series.New(labels, series.String, colChurnStatus))
}

func filterEq(df dataframe.DataFrame, col, value string) dataframe.DataFrame {
	return df.Filter(dataframe.F{Colname: col, Comparator: series.Eq, Comparando: value})
}

func countBy(df dataframe.DataFrame, catCol string, categories []string, hueCol string, hues []string) [][]int {
	counts := make([][]int, len(categories))
	for i, cat := range categories {
		counts[i] = make([]int, len(hues))
		byCat := filterEq(df, catCol, cat)
		if byCat.Nrow() == 0 {
			continue
		}
		for j, hue := range hues {
			counts[i][j] = filterEq(byCat, hueCol, hue).Nrow()
		}
	}
	return counts
}

func boxStats(group string, values []float64) BoxStats {
	box := BoxStats{Group: group, N: len(values)}
	if len(values) == 0 {
		return box
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	box.Q1 = stat.Quantile(0.25, stat.LinInterp, sorted, nil)
	box.Median = stat.Quantile(0.5, stat.LinInterp, sorted, nil)
	box.Q3 = stat.Quantile(0.75, stat.LinInterp, sorted, nil)

	iqr := box.Q3 - box.Q1
	lowFence := box.Q1 - whiskerIQR*iqr
	highFence := box.Q3 + whiskerIQR*iqr

	box.WhiskerLow, box.WhiskerHigh = box.Q1, box.Q3
	for _, v := range sorted {
		if v >= lowFence {
			box.WhiskerLow = v
			break
		}
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i] <= highFence {
			box.WhiskerHigh = sorted[i]
			break
		}
	}
	for _, v := range sorted {
		if v < lowFence || v > highFence {
			box.Outliers = append(box.Outliers, v)
		}
	}

	box.Mean = stat.Mean(sorted, nil)
	box.Annotation = MeanAnnotation(box.Mean)
	return box
}
