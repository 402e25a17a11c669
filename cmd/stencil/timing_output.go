package main

import (
	"fmt"
	"io"
	"time"

	"github.com/ysulyma/stencil/internal/buildpipeline"
)

func printStageTimings(out io.Writer, timings buildpipeline.Timings) {
	if out == nil {
		return
	}
	stages := []struct {
		stage buildpipeline.Stage
		label string
	}{
		{buildpipeline.StageScan, "scanned"},
		{buildpipeline.StageCompile, "compiled"},
		{buildpipeline.StageEmit, "emitted"},
	}
	for _, entry := range stages {
		if !timings.Has(entry.stage) {
			continue
		}
		fmt.Fprintf(out, "%s %.1f ms\n", entry.label, toMillis(timings.Duration(entry.stage)))
	}
	total := timings.Sum(buildpipeline.StageScan, buildpipeline.StageCompile, buildpipeline.StageEmit)
	if total > 0 {
		fmt.Fprintf(out, "total %.1f ms\n", toMillis(total))
	}
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
