package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/kondate/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "info",
		Short:   "show where kondate keeps its data",
		Example: "\nkondate info\n",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, nil)
			if err != nil {
				return err
			}
			defer s.Close()
			i := info.Info{Config: s.cfg, Store: s.store, Out: cmd.OutOrStdout()}
			return i.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
