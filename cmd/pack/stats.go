package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bytepress/pack/internal/refcodec"
)

func (a *app) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <input>",
		Short: "Compare compressed sizes across codecs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrap(err, "stats")
			}

			results, err := refcodec.Measure(cmd.Context(), data, refcodec.All())
			if err != nil {
				return errors.Wrapf(err, "stats %s", args[0])
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintf(tw, "codec\tbytes\tratio\t\n")
			fmt.Fprintf(tw, "original\t%d\t\t\n", len(data))
			for _, r := range results {
				fmt.Fprintf(tw, "%s\t%d\t%.3f\t\n", r.Name, r.Size, r.Ratio)
			}
			return tw.Flush()
		},
	}
}
