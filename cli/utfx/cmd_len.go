package main

import (
	"fmt"

	"github.com/sagernet/sing-utfx/common"
	"github.com/sagernet/sing-utfx/common/utfx"
	"github.com/spf13/cobra"
)

func lenCommand() *cobra.Command {
	flags := new(inputFlags)
	cmd := &cobra.Command{
		Use:   "len [unit...]",
		Short: "Print the length of the first sequence, 0 if it is invalid",
		Run: func(cmd *cobra.Command, args []string) {
			flags.cmd, flags.args = cmd, args
			common.Must(byWidth(flags, length[uint8], length[uint16], length[uint32], length[uint64]))
		},
	}
	flags.bind(cmd)
	return cmd
}

func length[T utfx.Unit](flags *inputFlags) error {
	units, err := readUnits[T](flags)
	if err != nil {
		return err
	}
	return common.Error(fmt.Fprintln(flags.cmd.OutOrStdout(), utfx.Len(units, options.Verify)))
}
