package action

import "github.com/opst/trackboard/pkg/api/types/metrics"

func CreateMetric(m metrics.Metric) Created[metrics.Metric] {
	return Created[metrics.Metric]{Entity: Metric, Item: m}
}

func RequestMetrics() Requested {
	return Requested{Entity: Metric, Many: true}
}

func ReceiveMetrics(ms []metrics.Metric, count int) ReceivedMany[metrics.Metric] {
	return ReceivedMany[metrics.Metric]{Entity: Metric, Items: ms, Count: count}
}
