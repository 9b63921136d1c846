package cli

import (
	"fmt"
	"os"

	"github.com/me/goseek/internal/render"
	"github.com/me/goseek/internal/scenario"
	"github.com/me/goseek/pkg/sched"
	"github.com/spf13/cobra"
)

// scenarioResult is one suite entry's outcome for json output. Entries
// with a fixed policy carry a single schedule and no best marker.
type scenarioResult struct {
	Name      string           `json:"name,omitempty"`
	Schedules []sched.Schedule `json:"schedules"`
	Best      string           `json:"best,omitempty"`
}

func newScenarioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Work with stored scenario files",
	}
	cmd.AddCommand(newScenarioRunCmd())
	return cmd
}

func newScenarioRunCmd() *cobra.Command {
	var plot bool
	var output string

	cmd := &cobra.Command{
		Use:   "run <suite.yaml>",
		Short: "Run every scenario in a suite file",
		Long: `Run loads a suite file and replays each scenario in order. Entries
with a policy print a single schedule; entries without one compare all
five policies.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutput(output); err != nil {
				return err
			}
			suite, err := scenario.LoadSuite(args[0])
			if err != nil {
				return err
			}

			var results []scenarioResult
			for i, sc := range suite.Scenarios {
				name := sc.Name
				if name == "" {
					name = fmt.Sprintf("scenario %d", i+1)
				}
				result, err := runScenario(sc)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				result.Name = name

				if output == "json" {
					results = append(results, result)
					continue
				}
				if i > 0 {
					fmt.Println()
				}
				fmt.Printf("=== %s ===\n", name)
				if sc.Policy != "" {
					render.WriteSchedule(os.Stdout, result.Schedules[0])
				} else {
					render.WriteComparison(os.Stdout, result.Schedules)
				}
				if plot {
					for _, s := range result.Schedules {
						fmt.Println()
						render.WritePlot(os.Stdout, s, sc.DiskSize)
					}
				}
			}

			if output == "json" {
				return writeJSON(results)
			}
			return nil
		},
	}

	addOutputFlag(cmd, &output)
	cmd.Flags().BoolVar(&plot, "plot", false, "Draw an ASCII plot for each schedule")

	return cmd
}

// runScenario validates and computes one suite entry. Entries follow the
// same local-or-remote path as the run and compare commands.
func runScenario(sc scenario.Scenario) (scenarioResult, error) {
	direction := sc.Direction
	if direction == "" {
		direction = sched.TowardMax.String()
	}
	dir, err := sched.ParseDirection(direction)
	if err != nil {
		return scenarioResult{}, err
	}
	if apiErr := validator.Workload(sc.Head, sc.DiskSize, sc.Requests); apiErr != nil {
		return scenarioResult{}, flattenErr(apiErr)
	}
	wl := &workload{head: sc.Head, diskSize: sc.DiskSize, queue: sc.Requests, dir: dir}

	if sc.Policy == "" {
		schedules, err := computeComparison(wl)
		if err != nil {
			return scenarioResult{}, err
		}
		result := scenarioResult{Schedules: schedules}
		if best := sched.Best(schedules); best >= 0 {
			result.Best = string(schedules[best].Policy)
		}
		return result, nil
	}

	policy, err := sched.ParsePolicy(sc.Policy)
	if err != nil {
		return scenarioResult{}, err
	}
	schedule, err := computeSchedule(policy, wl)
	if err != nil {
		return scenarioResult{}, err
	}
	return scenarioResult{Schedules: []sched.Schedule{schedule}}, nil
}
