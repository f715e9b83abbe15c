package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// report prints the result of a workload run, colored if the output is a
// terminal.
type report struct {
	w       io.Writer
	heading *color.Color
	ok      *color.Color
	failed  *color.Color
}

func newReport(w io.Writer, noColor bool) *report {
	rep := &report{
		w:       w,
		heading: color.New(color.FgBlue, color.Bold),
		ok:      color.New(color.FgGreen),
		failed:  color.New(color.FgRed, color.Bold),
	}
	if noColor || !isTerminal(w) {
		rep.heading.DisableColor()
		rep.ok.DisableColor()
		rep.failed.DisableColor()
	}
	return rep
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (rep *report) print(conf runConfig, res *workloadResult) {
	rep.heading.Fprintf(rep.w, "semibench run (%s)\n", conf)
	writeTimers(rep.w, res.Registry)
	fmt.Fprintf(rep.w, "hits: ")
	for _, op := range workloadOps {
		fmt.Fprintf(rep.w, "%s=%d ", op, res.Hits[op])
	}
	fmt.Fprintf(rep.w, "\npeak associations: %d, drained: %d\n", res.Peak, res.Drained)
	if res.Leaked == 0 {
		rep.ok.Fprintln(rep.w, "all pairs reunited")
	} else {
		rep.failed.Fprintf(rep.w, "%d pairs not reunited\n", res.Leaked)
	}
}
