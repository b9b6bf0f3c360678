package options

import (
	"github.com/spf13/cobra"
)

// IDOptions controls whether listings include history and item ids.
type IDOptions struct {
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of saved plans and shopping items.")
}
