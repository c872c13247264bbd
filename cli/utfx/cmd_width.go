package main

import (
	"fmt"

	"github.com/sagernet/sing-utfx/common"
	"github.com/sagernet/sing-utfx/common/utfx"
	"github.com/spf13/cobra"
)

func widthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "width <value>...",
		Short: "Print the number of units the canonical encoding of each value takes",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			values := common.Must1(parseValues(args))
			for _, value := range values {
				common.Must1(fmt.Fprintf(cmd.OutOrStdout(), "%d: %d\n", value, utfx.MinUnitsBig(value, options.Width)))
			}
		},
	}
}
