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

func newRunCmd() *cobra.Command {
	var flags workloadFlags
	var plot bool
	var output string

	cmd := &cobra.Command{
		Use:   "run [policy]",
		Short: "Run one scheduling policy over a request queue",
		Long: `Run computes the seek sequence and total seek distance for a single
scheduling policy. The policy is given as an argument (fcfs, sstf, scan,
cscan, clook) or taken from a scenario file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutput(output); err != nil {
				return err
			}
			wl, err := resolveWorkload(cmd, &flags)
			if err != nil {
				return err
			}

			name := ""
			if len(args) > 0 {
				name = args[0]
			} else if wl.scenario != nil {
				name = wl.scenario.Policy
			}
			if name == "" {
				return fmt.Errorf("run: no policy given (argument or scenario file)")
			}
			policy, err := sched.ParsePolicy(name)
			if err != nil {
				return fmt.Errorf("run: %w", err)
			}

			schedule, err := computeSchedule(policy, wl)
			if err != nil {
				return err
			}

			if output == "json" {
				return writeJSON(schedule)
			}
			render.WriteSchedule(os.Stdout, schedule)
			if plot {
				fmt.Println()
				render.WritePlot(os.Stdout, schedule, wl.diskSize)
			}
			return nil
		},
	}

	addWorkloadFlags(cmd, &flags)
	addOutputFlag(cmd, &output)
	cmd.Flags().BoolVar(&plot, "plot", false, "Draw an ASCII plot of the head movement")

	return cmd
}

// computeSchedule runs the policy locally, or on the server when one is
// configured.
func computeSchedule(policy sched.Policy, wl *workload) (sched.Schedule, error) {
	if client == nil {
		return sched.Run(policy, sched.Cylinder(wl.head), request.Cylinders(wl.queue), wl.diskSize, wl.dir)
	}

	resp, err := client.Post("/api/v1/schedule", model.ScheduleRequest{
		Policy:    policy.String(),
		Head:      wl.head,
		DiskSize:  wl.diskSize,
		Requests:  wl.queue,
		Direction: wl.dir.String(),
	})
	if err != nil {
		return sched.Schedule{}, fmt.Errorf("schedule request: %w", err)
	}

	var schedule sched.Schedule
	if err := json.Unmarshal(resp.Data, &schedule); err != nil {
		return sched.Schedule{}, fmt.Errorf("parse response: %w", err)
	}
	return schedule, nil
}
