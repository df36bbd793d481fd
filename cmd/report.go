package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/KMCooper357/multilingual-pipeline/domain"
)

// renderRunReport prints the per-asset summary. Failed rows carry the failing
// stage and error kind so an operator can re-run only those assets.
func renderRunReport(w io.Writer, runs []domain.PipelineRun) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Asset", "State", "Failed Stage", "Error Kind", "Output Key"})

	done := 0
	for _, run := range runs {
		failedStage, errorKind := "", ""
		if run.Err != nil {
			failedStage = string(run.FailedStage)
			errorKind = domain.ErrorKind(run.Err)
		}
		if run.Succeeded() {
			done++
		}
		t.AppendRow(table.Row{run.Asset.BaseName, string(run.State), failedStage, errorKind, run.OutputKey})
	}

	t.AppendFooter(table.Row{
		fmt.Sprintf("%d assets", len(runs)),
		fmt.Sprintf("%d done / %d failed", done, len(runs)-done),
		"", "", "",
	})
	t.Render()
}
