package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// NewRegistry returns the registry served on the metrics listener. On top of
// the extra collectors (the db pool one in production) it exposes build info
// and Go runtime and process stats.
func NewRegistry(extra ...prometheus.Collector) (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()

	all := append([]prometheus.Collector{
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	}, extra...)
	for i, c := range all {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register collector %d: %w", i, err)
		}
	}

	return reg, nil
}
