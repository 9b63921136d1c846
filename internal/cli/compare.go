package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/me/goseek/internal/render"
	"github.com/me/goseek/internal/request"
	"github.com/me/goseek/pkg/model"
	"github.com/me/goseek/pkg/sched"
	"github.com/spf13/cobra"
)

// comparisonResult mirrors the compare API payload for json output.
type comparisonResult struct {
	Schedules []sched.Schedule `json:"schedules"`
	Best      string           `json:"best"`
}

func newCompareCmd() *cobra.Command {
	var flags workloadFlags
	var plot bool
	var output string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every scheduling policy over the same queue",
		Long: `Compare runs all five scheduling policies over the same request queue
and prints their seek sequences side by side, with the lowest total
seek marked as best.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutput(output); err != nil {
				return err
			}
			wl, err := resolveWorkload(cmd, &flags)
			if err != nil {
				return err
			}

			schedules, err := computeComparison(wl)
			if err != nil {
				return err
			}

			if output == "json" {
				result := comparisonResult{Schedules: schedules}
				if best := sched.Best(schedules); best >= 0 {
					result.Best = string(schedules[best].Policy)
				}
				return writeJSON(result)
			}
			render.WriteComparison(os.Stdout, schedules)
			if plot {
				for _, s := range schedules {
					fmt.Println()
					render.WritePlot(os.Stdout, s, wl.diskSize)
				}
			}
			return nil
		},
	}

	addWorkloadFlags(cmd, &flags)
	addOutputFlag(cmd, &output)
	cmd.Flags().BoolVar(&plot, "plot", false, "Draw an ASCII plot for each policy")

	return cmd
}

// computeComparison runs all policies locally, or on the server when one is
// configured.
func computeComparison(wl *workload) ([]sched.Schedule, error) {
	if client == nil {
		return sched.Compare(sched.Cylinder(wl.head), request.Cylinders(wl.queue), wl.diskSize, wl.dir), nil
	}

	resp, err := client.Post("/api/v1/compare", model.CompareRequest{
		Head:      wl.head,
		DiskSize:  wl.diskSize,
		Requests:  wl.queue,
		Direction: wl.dir.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("compare request: %w", err)
	}

	var result struct {
		Schedules []sched.Schedule `json:"schedules"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	return result.Schedules, nil
}
