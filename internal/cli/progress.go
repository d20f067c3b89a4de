package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/hausp/bigcalc/internal/format"
	"github.com/hausp/bigcalc/internal/orchestration"
	"github.com/hausp/bigcalc/internal/progress"
)

// DisplayProgress renders a spinner and an aggregated progress bar while
// evaluations are running. It consumes updates from progressChan until the
// channel is closed, then stops the spinner and signals the WaitGroup.
//
// Parameters:
//   - wg: Signaled via Done when the display loop terminates.
//   - progressChan: Channel receiving progress updates from evaluators.
//   - numEvaluations: The number of concurrent evaluations being tracked.
//   - out: The writer used by the spinner for terminal output.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numEvaluations int, out io.Writer) {
	defer wg.Done()

	aggregator := orchestration.NewProgressAggregator(numEvaluations)
	if aggregator == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(fmt.Sprintf(" %s", format.FormatProgressBarWithETA(0, 0, ProgressBarWidth)))
	s.Start()
	defer s.Stop()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				s.UpdateSuffix(fmt.Sprintf(" %s", format.FormatProgressBarWithETA(1, 0, ProgressBarWidth)))
				return
			}
			aggregated := aggregator.Update(update)
			s.UpdateSuffix(fmt.Sprintf(" %s",
				format.FormatProgressBarWithETA(aggregated.AverageProgress, aggregated.ETA, ProgressBarWidth)))
		case <-ticker.C:
			// Refresh the ETA between updates so it keeps counting down.
			s.UpdateSuffix(fmt.Sprintf(" %s",
				format.FormatProgressBarWithETA(aggregator.CalculateAverage(), aggregator.GetETA(), ProgressBarWidth)))
		}
	}
}
