package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/me/goseek/internal/config"
	"github.com/me/goseek/internal/logging"
	"github.com/me/goseek/internal/request"
	"github.com/me/goseek/internal/scenario"
	"github.com/me/goseek/pkg/model"
	"github.com/me/goseek/pkg/sched"
	"github.com/spf13/cobra"
)

var (
	flagServer    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	logger    *slog.Logger
	validator *request.Validator
	client    *Client
)

// defaultServer returns the default server URL from the GOSEEK_SERVER env
// var. Empty means all computation happens in process.
func defaultServer() string {
	return os.Getenv("GOSEEK_SERVER")
}

// NewRootCmd creates the root cobra command for the goseek CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "goseek",
		Short: "GoSeek - disk scheduling simulator",
		Long:  "GoSeek runs the classic disk-arm scheduling policies over a request queue and reports seek sequences and total seek distance.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagDebug {
				flagLogLevel = "debug"
			}
			logger = logging.NewLogger(logging.ParseLevel(flagLogLevel), flagLogFormat)
			validator = request.NewValidator(logger)
			if flagServer != "" {
				client = NewClient(flagServer, logger)
			} else {
				client = nil
			}
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagServer, "server", defaultServer(), "GoSeek server URL; when set, run and compare are computed remotely (or GOSEEK_SERVER env)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newRunCmd(),
		newCompareCmd(),
		newScenarioCmd(),
		newPoliciesCmd(),
		newRandomCmd(),
	)

	return root
}

// workloadFlags holds the flags shared by run and compare.
type workloadFlags struct {
	head      int
	diskSize  int
	requests  string
	direction string
	scenario  string
}

func addWorkloadFlags(cmd *cobra.Command, f *workloadFlags) {
	cmd.Flags().IntVar(&f.head, "head", config.DefaultHead, "Initial head position")
	cmd.Flags().IntVar(&f.diskSize, "disk-size", config.DefaultDiskSize, "Number of cylinders on the disk")
	cmd.Flags().StringVar(&f.requests, "requests", config.DefaultQueue, "Comma-separated request queue")
	cmd.Flags().StringVar(&f.direction, "direction", sched.TowardMax.String(), "SCAN sweep direction (toward-max, toward-min)")
	cmd.Flags().StringVar(&f.scenario, "scenario", "", "Load the workload from a YAML scenario file")
}

func addOutputFlag(cmd *cobra.Command, output *string) {
	cmd.Flags().StringVar(output, "output", "text", "Output format (text, json)")
}

// checkOutput rejects unknown --output values before any work happens.
func checkOutput(format string) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown output format %q (want text or json)", format)
	}
	return nil
}

// writeJSON prints v as indented JSON, the same payload shape the API
// returns in its data field.
func writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// workload is a fully resolved and validated simulation input.
type workload struct {
	head     int
	diskSize int
	queue    []int
	dir      sched.Direction
	scenario *scenario.Scenario
}

// resolveWorkload merges scenario file values with flags and validates the
// result. Flags set explicitly on the command line win over the file.
func resolveWorkload(cmd *cobra.Command, f *workloadFlags) (*workload, error) {
	var sc *scenario.Scenario
	if f.scenario != "" {
		loaded, err := scenario.Load(f.scenario)
		if err != nil {
			return nil, err
		}
		sc = loaded
	}

	head, diskSize, direction := f.head, f.diskSize, f.direction
	queue, qerrs := request.ParseQueue(f.requests)
	if len(qerrs) > 0 {
		return nil, flattenErr(model.NewValidationError("invalid request queue", qerrs...))
	}
	if sc != nil {
		if !cmd.Flags().Changed("head") {
			head = sc.Head
		}
		if !cmd.Flags().Changed("disk-size") {
			diskSize = sc.DiskSize
		}
		if !cmd.Flags().Changed("requests") {
			queue = sc.Requests
		}
		if !cmd.Flags().Changed("direction") && sc.Direction != "" {
			direction = sc.Direction
		}
	}

	dir, err := sched.ParseDirection(direction)
	if err != nil {
		return nil, err
	}
	if apiErr := validator.Workload(head, diskSize, queue); apiErr != nil {
		return nil, flattenErr(apiErr)
	}

	return &workload{head: head, diskSize: diskSize, queue: queue, dir: dir, scenario: sc}, nil
}

// flattenErr folds validation details into one line, so CLI users see which
// field was rejected without digging through a JSON envelope.
func flattenErr(apiErr *model.APIError) error {
	if len(apiErr.Details) == 0 {
		return apiErr
	}
	msgs := make([]string, len(apiErr.Details))
	for i, d := range apiErr.Details {
		msgs[i] = d.Message
	}
	return errors.New(strings.Join(msgs, "; "))
}
