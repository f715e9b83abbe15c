package main

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"

	gometrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/npillmayer/bimap/mem"
)

var workloadOps = []string{"insert", "get-left", "get-right", "remove-left", "remove-right"}

func newRunCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a random workload on a forward and a reverse map",
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := readRunConfig(v)
			if err != nil {
				return err
			}
			res, err := runWorkload(conf)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			newReport(out, conf.NoColor).print(conf, res)
			if conf.Metrics {
				mem.WriteMetrics(out)
			}
			return nil
		},
	}
	cmd.Flags().Int("ops", 10000, "number of operations to run")
	cmd.Flags().Int("keys", 1000, "size of the key space")
	cmd.Flags().Int64("seed", 1, "seed of the random workload")
	cmd.Flags().Bool("metrics", false, "dump pair accounting metrics after the run")
	cmd.Flags().Bool("no-color", false, "disable colored output")
	return cmd
}

// workloadResult summarizes a workload run.
type workloadResult struct {
	Registry gometrics.Registry
	Hits     map[string]int
	Peak     int // largest number of associations held
	Drained  int // associations left at the end of the run
	Leaked   int64
}

// runWorkload performs conf.Ops random operations on a pair map, then drains it.
// It fails if any pair has not been reunited after draining.
func runWorkload(conf runConfig) (*workloadResult, error) {
	tracer().Infof("semibench: running workload %s", conf)
	res := &workloadResult{
		Registry: gometrics.NewRegistry(),
		Hits:     make(map[string]int),
	}
	timers := make(map[string]gometrics.Timer, len(workloadOps))
	for _, op := range workloadOps {
		timers[op] = gometrics.GetOrRegisterTimer(op, res.Registry)
	}
	livePairs := mem.LivePairs()
	pm := newPairMap()
	r := rand.New(rand.NewSource(conf.Seed))
	for i := 0; i < conf.Ops; i++ {
		k := r.Intn(conf.Keys)
		v := valueFor(r.Intn(conf.Keys))
		op := workloadOps[r.Intn(len(workloadOps))]
		var hit bool
		timers[op].Time(func() {
			switch op {
			case "insert":
				pm.Insert(k, v)
				hit = true
			case "get-left":
				_, hit = pm.GetLeft(k)
			case "get-right":
				_, hit = pm.GetRight(v)
			case "remove-left":
				_, hit = pm.RemoveLeft(k)
			case "remove-right":
				_, hit = pm.RemoveRight(v)
			}
		})
		if hit {
			res.Hits[op]++
		}
		res.Peak = max(res.Peak, pm.Len())
	}
	if held := mem.LivePairs() - livePairs; held != 2*int64(pm.Len()) {
		return res, fmt.Errorf("semibench: %d associations hold %d pairs", pm.Len(), held)
	}
	res.Drained = pm.Drain()
	res.Leaked = mem.LivePairs() - livePairs
	if res.Leaked != 0 {
		return res, fmt.Errorf("semibench: %d pairs not reunited", res.Leaked)
	}
	return res, nil
}

func valueFor(n int) string {
	return "v" + strconv.Itoa(n)
}

func writeTimers(w io.Writer, reg gometrics.Registry) {
	for _, op := range workloadOps {
		t, ok := reg.Get(op).(gometrics.Timer)
		if !ok {
			continue
		}
		s := t.Snapshot()
		fmt.Fprintf(w, "%-13s %8d  mean %8.0fns  p99 %8.0fns\n", op, s.Count(), s.Mean(), s.Percentile(0.99))
	}
}
