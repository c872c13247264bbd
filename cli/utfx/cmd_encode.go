package main

import (
	"bufio"
	"fmt"
	"io"
	"math/big"

	"github.com/sagernet/sing-utfx/common"
	E "github.com/sagernet/sing-utfx/common/exceptions"
	"github.com/sagernet/sing-utfx/common/log"
	"github.com/sagernet/sing-utfx/common/unitio"
	"github.com/sagernet/sing-utfx/common/utfx"
	"github.com/spf13/cobra"
)

var encodeLogger = log.NewLogger("encode")

type encodeFlags struct {
	cmd    *cobra.Command
	values []*big.Int
	output string
}

func encodeCommand() *cobra.Command {
	flags := new(encodeFlags)
	cmd := &cobra.Command{
		Use:   "encode <value>...",
		Short: "Encode values given in decimal, 0x, 0o or 0b notation",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			flags.cmd = cmd
			flags.values = common.Must1(parseValues(args))
			common.Must(byWidth(flags, encode[uint8], encode[uint16], encode[uint32], encode[uint64]))
		},
	}
	cmd.Flags().StringVar(&flags.output, "output", "-", "Write to a file instead of standard output.")
	return cmd
}

func parseValues(args []string) ([]*big.Int, error) {
	values := make([]*big.Int, 0, len(args))
	for _, arg := range args {
		value, loaded := new(big.Int).SetString(arg, 0)
		if !loaded || value.Sign() < 0 {
			return nil, E.New("invalid value: ", arg)
		}
		values = append(values, value)
	}
	return values, nil
}

func encode[T utfx.Unit](flags *encodeFlags) error {
	output, err := openOutput(flags.cmd, flags.output)
	if err != nil {
		return err
	}
	return E.Errors(writeEncoded[T](flags, output), output.Close())
}

func writeEncoded[T utfx.Unit](flags *encodeFlags, output io.Writer) error {
	var err error
	writer := bufio.NewWriter(output)
	for _, value := range flags.values {
		units := utfx.EncodeBig[T](value)
		encodeLogger.Debug("encoded ", value, " into ", len(units), " units")
		if format == unitio.FormatRaw {
			err = unitio.WriteUnits(writer, order, units)
		} else {
			var text string
			text, err = unitio.FormatUnits(units, format)
			if err == nil {
				_, err = fmt.Fprintln(writer, value.String()+": "+text)
			}
		}
		if err != nil {
			return err
		}
	}
	return writer.Flush()
}
