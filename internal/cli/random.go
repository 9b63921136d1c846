package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/me/goseek/internal/config"
	"github.com/me/goseek/internal/request"
	"github.com/spf13/cobra"
)

func newRandomCmd() *cobra.Command {
	var diskSize, count int
	var seed int64

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a random request queue",
		Long: `Random prints a comma-separated queue of distinct cylinders, ready to
pass to run or compare via --requests.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiErr := validator.Sample(count, diskSize); apiErr != nil {
				return flattenErr(apiErr)
			}

			queue := request.NewSampler(seed).Draw(count, diskSize)
			parts := make([]string, len(queue))
			for i, c := range queue {
				parts[i] = strconv.Itoa(c)
			}
			fmt.Println(strings.Join(parts, ","))
			return nil
		},
	}

	cmd.Flags().IntVar(&diskSize, "disk-size", config.DefaultDiskSize, "Number of cylinders on the disk")
	cmd.Flags().IntVar(&count, "count", config.DefaultSampleCount, "How many requests to draw")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 seeds from the clock)")

	return cmd
}
