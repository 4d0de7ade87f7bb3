package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List available topics and their playable question counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TOPIC\tQUESTIONS\tSTATUS")
		for _, key := range env.Registry.Keys() {
			qs, err := env.Registry.Load(cmd.Context(), key)
			if err != nil {
				fmt.Fprintf(w, "%s\t-\t%v\n", key, err)
				continue
			}
			fmt.Fprintf(w, "%s\t%d\tok\n", key, len(qs))
		}
		return w.Flush()
	},
}
