package cli

import (
	"fmt"
	"io"

	"github.com/pfrederiksen/mlb-gamedata/internal/gameday"
	"github.com/pfrederiksen/mlb-gamedata/internal/logger"
)

// writeSummary reports the result of a run on w
func writeSummary(w io.Writer, day *gameday.GameDay, path string, written bool) {
	if !written {
		return
	}

	label := "games"
	if day.Len() == 1 {
		label = "game"
	}
	fmt.Fprintf(w, "Wrote %d %s for %s to %s\n", day.Len(), label, day.Date.Format(gameday.ISODate), path)
}

// logMetrics writes the run metrics at debug level
func logMetrics() {
	logger.Debug("Run metrics", logger.Fields(logger.GetMetricsSnapshot()))
}
