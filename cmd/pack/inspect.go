package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bytepress/pack/rle"
	"github.com/bytepress/pack/window"
)

func (a *app) inspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <input>",
		Short: "Print the tokens of a compressed file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.cfg.scheme()
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrap(err, "inspect")
			}

			var tokens []fmt.Stringer
			switch s.name {
			case rleScheme.name:
				runs, err := rle.Runs(data)
				if err != nil {
					return errors.Wrapf(err, "inspect %s", args[0])
				}
				for _, r := range runs {
					tokens = append(tokens, r)
				}
			case windowScheme.name:
				wt, err := window.Tokens(data)
				if err != nil {
					return errors.Wrapf(err, "inspect %s", args[0])
				}
				for _, t := range wt {
					tokens = append(tokens, t)
				}
			}

			out := cmd.OutOrStdout()
			for i, t := range tokens {
				fmt.Fprintf(out, "%6d  %v\n", i, t)
			}
			a.log.WithField("scheme", s.name).Debugf("%d tokens in %d bytes", len(tokens), len(data))
			return nil
		},
	}
	a.addSchemeFlags(cmd, "format")
	return cmd
}
