// Command pack compresses and decompresses files with the rle and window
// (lz) schemes.
//
//	pack compress <input> <output> --rle|--lz [--verify]
//	pack decompress <input> <output> --rle|--lz
//	pack inspect <input> --rle|--lz
//	pack stats <input>
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	cfg config
	log *logrus.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{log: logrus.New()}

	root := &cobra.Command{
		Use:          "pack",
		Short:        "Compression tool supporting RLE and LZ77 algorithms",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log.SetOutput(cmd.ErrOrStderr())
			a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			if a.cfg.Verbose {
				a.log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.cfg.Verbose, "verbose", "v", false, "log sizes and checksums")

	root.AddCommand(
		a.compressCommand(),
		a.decompressCommand(),
		a.inspectCommand(),
		a.statsCommand(),
	)
	return root
}

// addSchemeFlags registers the --rle and --lz selection flags on cmd.
func (a *app) addSchemeFlags(cmd *cobra.Command, verb string) {
	cmd.Flags().BoolVarP(&a.cfg.RLE, "rle", "r", false, "use RLE "+verb)
	cmd.Flags().BoolVarP(&a.cfg.LZ, "lz", "l", false, "use LZ77 "+verb)
	cmd.MarkFlagsMutuallyExclusive("rle", "lz")
}
