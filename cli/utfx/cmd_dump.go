package main

import (
	"bufio"
	"encoding/hex"
	"io"
	"strconv"

	"github.com/sagernet/sing-utfx/common"
	E "github.com/sagernet/sing-utfx/common/exceptions"
	"github.com/sagernet/sing-utfx/common/log"
	"github.com/sagernet/sing-utfx/common/unitio"
	"github.com/sagernet/sing-utfx/common/utfx"
	"github.com/spf13/cobra"
	"github.com/ulikunitz/xz"
	"lukechampine.com/blake3"
)

var dumpLogger = log.NewLogger("dump")

type dumpFlags struct {
	cmd      *cobra.Command
	max      uint64
	output   string
	compress bool
}

func dumpCommand() *cobra.Command {
	flags := new(dumpFlags)
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Write the encoding of every value from 0 to --max, one per line",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			flags.cmd = cmd
			common.Must(byWidth(flags, dump[uint8], dump[uint16], dump[uint32], dump[uint64]))
		},
	}
	cmd.Flags().Uint64Var(&flags.max, "max", 0x10FFFF, "Set the last value to write.")
	cmd.Flags().StringVar(&flags.output, "output", "-", "Write to a file instead of standard output.")
	cmd.Flags().BoolVar(&flags.compress, "xz", false, "Compress the output with xz.")
	return cmd
}

func dump[T utfx.Unit](flags *dumpFlags) error {
	output, err := openOutput(flags.cmd, flags.output)
	if err != nil {
		return err
	}
	return E.Errors(writeDump[T](flags, output), output.Close())
}

func writeDump[T utfx.Unit](flags *dumpFlags, output io.Writer) error {
	var err error
	var target io.Writer = output
	var xzWriter *xz.Writer
	if flags.compress {
		xzWriter, err = xz.NewWriter(output)
		if err != nil {
			return E.Cause(err, "create xz writer")
		}
		target = xzWriter
	}
	buffered := bufio.NewWriter(target)
	digest := blake3.New(32, nil)
	writer := io.MultiWriter(buffered, digest)

	var (
		units []T
		line  []byte
	)
	for value := uint64(0); ; value++ {
		units = utfx.Append(units[:0], value)
		line, err = appendDumpLine(line[:0], value, units)
		if err != nil {
			return err
		}
		_, err = writer.Write(line)
		if err != nil {
			return err
		}
		if value == flags.max {
			break
		}
	}
	err = buffered.Flush()
	if err != nil {
		return err
	}
	if xzWriter != nil {
		err = xzWriter.Close()
		if err != nil {
			return E.Cause(err, "close xz writer")
		}
	}
	dumpLogger.Info("wrote values 0 to ", flags.max, ", blake3 ", hex.EncodeToString(digest.Sum(nil)))
	return nil
}

func appendDumpLine[T utfx.Unit](line []byte, value uint64, units []T) ([]byte, error) {
	line = strconv.AppendUint(line, value, 10)
	line = append(line, ": "...)
	if format == unitio.FormatRaw {
		line = append(line, '"')
		line = unitio.AppendBytes(line, order, units)
		line = append(line, '"')
	} else {
		text, err := unitio.FormatUnits(units, format)
		if err != nil {
			return nil, err
		}
		line = append(line, text...)
	}
	return append(line, '\n'), nil
}
