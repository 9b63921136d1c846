package cli

import (
	"encoding/json"
	"fmt"

	"github.com/me/goseek/pkg/model"
	"github.com/me/goseek/pkg/sched"
	"github.com/spf13/cobra"
)

func newPoliciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "policies",
		Short: "List the available scheduling policies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := fetchPolicies()
			if err != nil {
				return err
			}

			fmt.Printf("%-8s  %-8s  %s\n", "NAME", "DISPLAY", "DESCRIPTION")
			fmt.Printf("%-8s  %-8s  %s\n", "----", "-------", "-----------")
			for _, p := range infos {
				fmt.Printf("%-8s  %-8s  %s\n", p.Name, p.DisplayName, p.Description)
			}
			return nil
		},
	}
}

// fetchPolicies lists policies locally, or from the server when one is
// configured.
func fetchPolicies() ([]model.PolicyInfo, error) {
	if client == nil {
		policies := sched.Policies()
		infos := make([]model.PolicyInfo, 0, len(policies))
		for _, p := range policies {
			infos = append(infos, model.PolicyInfo{
				Name:        string(p),
				DisplayName: p.DisplayName(),
				Description: p.Description(),
			})
		}
		return infos, nil
	}

	resp, err := client.Get("/api/v1/policies")
	if err != nil {
		return nil, fmt.Errorf("list policies: %w", err)
	}

	var infos []model.PolicyInfo
	if err := json.Unmarshal(resp.Data, &infos); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	return infos, nil
}
