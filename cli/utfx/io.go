package main

import (
	"io"
	"os"

	"github.com/sagernet/sing-utfx/common"
	E "github.com/sagernet/sing-utfx/common/exceptions"
	"github.com/sagernet/sing-utfx/common/unitio"
	"github.com/sagernet/sing-utfx/common/utfx"
	"github.com/spf13/cobra"
)

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

// openOutput treats "-" as the command's standard output.
func openOutput(cmd *cobra.Command, path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{cmd.OutOrStdout()}, nil
	}
	file, err := common.CreateFile(path)
	if err != nil {
		return nil, E.Cause(err, "create output")
	}
	return file, nil
}

type inputFlags struct {
	cmd   *cobra.Command
	args  []string
	input string
}

func (f *inputFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "-", "Read raw units from a file, - for standard input.")
}

// readUnits parses units from the arguments when present, otherwise reads
// raw units in the configured byte order.
func readUnits[T utfx.Unit](f *inputFlags) ([]T, error) {
	if len(f.args) > 0 {
		return unitio.ParseUnits[T](f.args)
	}
	var reader io.Reader = f.cmd.InOrStdin()
	if f.input != "-" {
		file, err := os.Open(f.input)
		if err != nil {
			return nil, E.Cause(err, "open input")
		}
		defer file.Close()
		reader = file
	}
	return unitio.ReadUnits[T](reader, order)
}
