package metrics_test

import (
	"testing"

	"github.com/opst/trackboard/pkg/api/types/metrics"
	"github.com/opst/trackboard/pkg/cmp"
	"github.com/opst/trackboard/pkg/utils/rfctime"
	"github.com/opst/trackboard/pkg/utils/try"
)

func TestSeriesOf(t *testing.T) {
	at := func(s string) rfctime.RFC3339 {
		return try.To(rfctime.ParseRFC3339DateTime(s)).OrFatal(t)
	}

	type When struct {
		metrics []metrics.Metric
	}
	type Then struct {
		series []metrics.Series
	}

	theory := func(when When, then Then) func(*testing.T) {
		return func(t *testing.T) {
			actual := metrics.SeriesOf(when.metrics)
			if !cmp.SliceEqWith(actual, then.series, func(a, b metrics.Series) bool {
				return a.Key == b.Key && cmp.SliceEq(a.Values, b.Values)
			}) {
				t.Errorf("unexpected series:\n===actual===\n%+v\n===expected===\n%+v", actual, then.series)
			}
		}
	}

	t.Run("when no metrics are given, it returns empty series", theory(
		When{metrics: nil},
		Then{series: []metrics.Series{}},
	))

	t.Run("when metrics are given, it groups readings per name in reported order", theory(
		When{
			metrics: []metrics.Metric{
				{
					Id:        1,
					CreatedAt: at("2018-01-09T12:31:52.153614Z"),
					Values:    map[string]float64{"loss": 0.9, "accuracy": 0.1},
				},
				{
					Id:        2,
					CreatedAt: at("2018-01-09T12:41:00Z"),
					Values:    map[string]float64{"loss": 0.5},
				},
				{
					Id:        3,
					CreatedAt: at("2018-01-10T08:00:00Z"),
					Values:    map[string]float64{"precision": 0.7, "loss": 0.2, "accuracy": 0.8},
				},
			},
		},
		Then{
			series: []metrics.Series{
				{
					Key: "accuracy",
					Values: []metrics.Point{
						{Index: "09-01 12:31", Value: 0.1},
						{Index: "10-01 08:00", Value: 0.8},
					},
				},
				{
					Key: "loss",
					Values: []metrics.Point{
						{Index: "09-01 12:31", Value: 0.9},
						{Index: "09-01 12:41", Value: 0.5},
						{Index: "10-01 08:00", Value: 0.2},
					},
				},
				{
					Key: "precision",
					Values: []metrics.Point{
						{Index: "10-01 08:00", Value: 0.7},
					},
				},
			},
		},
	))
}
