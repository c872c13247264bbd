package main

import (
	"bufio"
	"fmt"

	"github.com/sagernet/sing-utfx/common"
	"github.com/sagernet/sing-utfx/common/log"
	"github.com/sagernet/sing-utfx/common/utfx"
	"github.com/spf13/cobra"
)

var decodeLogger = log.NewLogger("decode")

func decodeCommand() *cobra.Command {
	flags := new(inputFlags)
	cmd := &cobra.Command{
		Use:   "decode [unit...]",
		Short: "Decode every sequence of the given units",
		Run: func(cmd *cobra.Command, args []string) {
			flags.cmd, flags.args = cmd, args
			common.Must(byWidth(flags, decode[uint8], decode[uint16], decode[uint32], decode[uint64]))
		},
	}
	flags.bind(cmd)
	return cmd
}

func decode[T utfx.Unit](flags *inputFlags) error {
	units, err := readUnits[T](flags)
	if err != nil {
		return err
	}
	writer := bufio.NewWriter(flags.cmd.OutOrStdout())
	cursor := utfx.NewCursor(units)
	for !cursor.Done() {
		pos := cursor.Pos()
		value, n := cursor.NextBig()
		if n == 0 {
			decodeLogger.Warn(cursor.Check())
			cursor.Skip()
			continue
		}
		_, err = fmt.Fprintf(writer, "%d: %d (%d units)\n", pos, value, n)
		if err != nil {
			return err
		}
	}
	return writer.Flush()
}
