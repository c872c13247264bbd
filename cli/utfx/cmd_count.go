package main

import (
	"fmt"

	"github.com/sagernet/sing-utfx/common"
	"github.com/sagernet/sing-utfx/common/utfx"
	"github.com/spf13/cobra"
)

func countCommand() *cobra.Command {
	flags := new(inputFlags)
	cmd := &cobra.Command{
		Use:   "count [file]",
		Short: "Count valid sequences and invalid units of a raw unit file",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			flags.cmd = cmd
			if len(args) > 0 {
				flags.input = args[0]
			}
			common.Must(byWidth(flags, count[uint8], count[uint16], count[uint32], count[uint64]))
		},
	}
	flags.bind(cmd)
	return cmd
}

func count[T utfx.Unit](flags *inputFlags) error {
	units, err := readUnits[T](flags)
	if err != nil {
		return err
	}
	stats := utfx.Count(units)
	return common.Error(fmt.Fprintf(flags.cmd.OutOrStdout(),
		"units: %d\nvalid sequences: %d\ninvalid units: %d\n",
		stats.Units, stats.Valid, stats.Invalid))
}
