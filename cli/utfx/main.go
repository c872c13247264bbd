package main

import (
	"github.com/sagernet/sing-utfx/common"
	E "github.com/sagernet/sing-utfx/common/exceptions"
	"github.com/sagernet/sing-utfx/common/log"
	"github.com/sagernet/sing-utfx/common/unitio"
	"github.com/sagernet/sing-utfx/conf"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var Version = "unknown"

var (
	configPath  string
	flagOptions conf.Options
	options     conf.Options
	order       unitio.ByteOrder
	format      unitio.Format
)

func main() {
	if err := mainCommand().Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func mainCommand() *cobra.Command {
	command := &cobra.Command{
		Use:              "utfx",
		Short:            "UTF-8 style variable length integers over any code unit width",
		Version:          Version,
		PersistentPreRun: preRun,
	}
	command.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Read options from a JSON file, explicit flags take precedence.")
	command.PersistentFlags().IntVarP(&flagOptions.Width, "width", "w", 8, "Set the code unit width in bits: 8, 16, 32 or 64.")
	command.PersistentFlags().StringVarP(&flagOptions.ByteOrder, "order", "o", "big", "Set the byte order of units wider than 8 bits: big, little or native.")
	command.PersistentFlags().StringVarP(&flagOptions.Format, "format", "f", "bin", "Set the unit format: bin, hex or raw.")
	command.PersistentFlags().BoolVar(&flagOptions.Verify, "verify", false, "Check every continuation unit when scanning lengths.")
	command.PersistentFlags().StringVar(&flagOptions.LogLevel, "log-level", "info", "Set the log level.")
	command.AddCommand(
		encodeCommand(),
		decodeCommand(),
		lenCommand(),
		widthCommand(),
		countCommand(),
		dumpCommand(),
		roundTripCommand(),
	)
	return command
}

func preRun(cmd *cobra.Command, args []string) {
	var err error
	options, err = loadOptions(cmd)
	common.Must(err)
	common.Must(log.SetLevel(options.LogLevel))
	order, err = unitio.ParseByteOrder(options.ByteOrder)
	common.Must(err)
	format, err = unitio.ParseFormat(options.Format)
	common.Must(err)
}

// loadOptions layers explicitly set flags over the config file over the
// flag defaults.
func loadOptions(cmd *cobra.Command) (conf.Options, error) {
	var loaded conf.Options
	if configPath != "" {
		fileOptions, err := conf.Read(configPath)
		if err != nil {
			return loaded, err
		}
		loaded = *fileOptions
	}
	changed := cmd.Flags().Changed
	if changed("width") {
		loaded.Width = flagOptions.Width
	}
	if changed("order") {
		loaded.ByteOrder = flagOptions.ByteOrder
	}
	if changed("format") {
		loaded.Format = flagOptions.Format
	}
	if changed("verify") {
		loaded.Verify = flagOptions.Verify
	}
	if changed("log-level") {
		loaded.LogLevel = flagOptions.LogLevel
	}
	loaded.Merge(&flagOptions)
	return loaded, loaded.Validate()
}

// byWidth runs the instantiation of a command body matching the
// configured code unit width.
func byWidth[A any](arg A, u8 func(A) error, u16 func(A) error, u32 func(A) error, u64 func(A) error) error {
	switch options.Width {
	case 8:
		return u8(arg)
	case 16:
		return u16(arg)
	case 32:
		return u32(arg)
	case 64:
		return u64(arg)
	default:
		return E.New("unsupported code unit width: ", options.Width)
	}
}
