package charts

import (
	"fmt"
	"io"
	"strings"

	"churnlens/pkg/dataset"

	dto "github.com/prometheus/client_model/go"
)

// Kind identifies one of the three churn charts.
type Kind string

const (
	KindContract Kind = "contract"
	KindPayment  Kind = "payment"
	KindSpend    Kind = "spend"
)

const (
	customersMetric = "churnlens_customers"
	chargeMetric    = "churnlens_monthly_charge_brl"

	customersHelp = "Customers per chart category and churn status."
	chargeHelp    = "Monthly charge distribution per churn status."
)

func AllKinds() []Kind {
	return []Kind{KindContract, KindPayment, KindSpend}
}

// ParseKinds turns "contract", "payment", "spend" or "all" into kinds.
func ParseKinds(raw string) ([]Kind, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" || raw == "all" {
		return AllKinds(), nil
	}
	var kinds []Kind
	for _, part := range strings.Split(raw, ",") {
		k := Kind(strings.TrimSpace(part))
		switch k {
		case KindContract, KindPayment, KindSpend:
			kinds = append(kinds, k)
		default:
			return nil, fmt.Errorf("unknown chart %q", part)
		}
	}
	return kinds, nil
}

// Export draws a fresh dataset per chart, as the desktop renderers do, and
// writes the aggregates behind each chart as metrics.
func Export(w io.Writer, gen *dataset.Generator, kinds ...Kind) error {
	if len(kinds) == 0 {
		kinds = AllKinds()
	}

	customers := &dto.MetricFamily{}
	var families []*dto.MetricFamily
	for _, k := range kinds {
		switch k {
		case KindContract:
			mergeCounts(customers, CountFamily(customersMetric, customersHelp, string(k), ContractChurn(gen.Generate())))
		case KindPayment:
			mergeCounts(customers, CountFamily(customersMetric, customersHelp, string(k), PaymentChurn(gen.Generate())))
		case KindSpend:
			families = append(families, BoxFamily(chargeMetric, chargeHelp, MonthlySpend(gen.Generate())))
		default:
			return fmt.Errorf("unknown chart %q", k)
		}
	}
	if customers.Name != nil {
		families = append([]*dto.MetricFamily{customers}, families...)
	}

	return WriteText(w, families...)
}

// mergeCounts folds src into dst so both count charts share one family.
func mergeCounts(dst, src *dto.MetricFamily) {
	if dst.Name == nil {
		dst.Name, dst.Help, dst.Type = src.Name, src.Help, src.Type
	}
	dst.Metric = append(dst.Metric, src.Metric...)
}
