package charts

import (
	"fmt"
	"io"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"
)

const (
	labelCategory = "category"
	labelStatus   = "status"
)

// CountFamily exposes a count chart as a gauge family with one sample per
// (category, status) bar.
func CountFamily(name, help, dimension string, c CountChart) *dto.MetricFamily {
	mf := &dto.MetricFamily{
		Name: proto.String(name),
		Help: proto.String(help),
		Type: dto.MetricType_GAUGE.Enum(),
	}
	for i, cat := range c.Categories {
		for j, hue := range c.Hues {
			mf.Metric = append(mf.Metric, &dto.Metric{
				Label: []*dto.LabelPair{
					{Name: proto.String("chart"), Value: proto.String(dimension)},
					{Name: proto.String(labelCategory), Value: proto.String(cat)},
					{Name: proto.String(labelStatus), Value: proto.String(hue)},
				},
				Gauge: &dto.Gauge{Value: proto.Float64(float64(c.Counts[i][j]))},
			})
		}
	}
	return mf
}

// BoxFamily exposes a box chart as a summary family: quartiles as
// quantiles, group size and sum.
func BoxFamily(name, help string, b BoxChart) *dto.MetricFamily {
	mf := &dto.MetricFamily{
		Name: proto.String(name),
		Help: proto.String(help),
		Type: dto.MetricType_SUMMARY.Enum(),
	}
	for _, box := range b.Boxes {
		mf.Metric = append(mf.Metric, &dto.Metric{
			Label: []*dto.LabelPair{
				{Name: proto.String(labelStatus), Value: proto.String(box.Group)},
			},
			Summary: &dto.Summary{
				SampleCount: proto.Uint64(uint64(box.N)),
				SampleSum:   proto.Float64(box.Mean * float64(box.N)),
				Quantile: []*dto.Quantile{
					{Quantile: proto.Float64(0.25), Value: proto.Float64(box.Q1)},
					{Quantile: proto.Float64(0.5), Value: proto.Float64(box.Median)},
					{Quantile: proto.Float64(0.75), Value: proto.Float64(box.Q3)},
				},
			},
		})
	}
	return mf
}

// WriteText renders the families in the Prometheus text exposition format.
func WriteText(w io.Writer, families ...*dto.MetricFamily) error {
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
