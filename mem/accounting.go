package mem

import (
	"io"

	"github.com/VictoriaMetrics/metrics"
)

// Pair accounting lives in a private metrics set, so importing this package
// does not pollute the default set of an application.
var (
	pairMetrics = metrics.NewSet()
	shared      = pairMetrics.NewCounter("bimap_mem_shared_total")
	reunited    = pairMetrics.NewCounter("bimap_mem_reunited_total")
)

// LivePairs returns the number of pairs which have been shared but not yet
// reunited, process-wide. A steadily growing value after a workload has been
// torn down points to halves which have been dropped without reunification.
func LivePairs() int64 {
	return int64(shared.Get()) - int64(reunited.Get())
}

// WriteMetrics writes the pair accounting counters in Prometheus text format.
func WriteMetrics(w io.Writer) {
	pairMetrics.WritePrometheus(w)
}
