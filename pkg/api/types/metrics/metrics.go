package metrics

import (
	"github.com/opst/trackboard/pkg/cmp"
	"github.com/opst/trackboard/pkg/utils/rfctime"
)

// Metric is a set of readings reported by an experiment at once.
type Metric struct {
	Id        int                `json:"id"`
	CreatedAt rfctime.RFC3339    `json:"created_at"`
	Values    map[string]float64 `json:"values"`
}

func (m Metric) Equal(o Metric) bool {
	return m.Id == o.Id &&
		m.CreatedAt.Equal(o.CreatedAt) &&
		cmp.MapEq(m.Values, o.Values)
}

// Layout of Point.Index.
const IndexLayout = "02-01 15:04"

// Point is a reading of a metric.
type Point struct {
	// time when the reading is reported, formatted with IndexLayout.
	Index string  `json:"index"`
	Value float64 `json:"value"`
}

// Series is readings of a metric in reported order.
type Series struct {
	Key    string  `json:"key"`
	Values []Point `json:"values"`
}

// SeriesOf groups readings in metrics by their names.
//
// Series are ordered by the first appearance of their names,
// and names in a Metric are visited in lexical order.
func SeriesOf(ms []Metric) []Series {
	index := map[string]int{}
	series := []Series{}

	for _, m := range ms {
		at := m.CreatedAt.Time().Format(IndexLayout)
		for _, name := range sortedKeys(m.Values) {
			p := Point{Index: at, Value: m.Values[name]}
			if nth, ok := index[name]; ok {
				series[nth].Values = append(series[nth].Values, p)
				continue
			}
			index[name] = len(series)
			series = append(series, Series{Key: name, Values: []Point{p}})
		}
	}
	return series
}
