package main

import (
	"fmt"
	"math/big"
	"math/rand"

	"github.com/sagernet/sing-utfx/common"
	E "github.com/sagernet/sing-utfx/common/exceptions"
	"github.com/sagernet/sing-utfx/common/log"
	"github.com/sagernet/sing-utfx/common/random"
	"github.com/sagernet/sing-utfx/common/utfx"
	"github.com/spf13/cobra"
)

var roundTripLogger = log.NewLogger("roundtrip")

type roundTripFlags struct {
	cmd     *cobra.Command
	count   int
	maxBits int
	seed    string
}

func roundTripCommand() *cobra.Command {
	flags := new(roundTripFlags)
	cmd := &cobra.Command{
		Use:   "roundtrip",
		Short: "Encode and decode random and boundary values, reporting any mismatch",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			flags.cmd = cmd
			common.Must(byWidth(flags, roundTrip[uint8], roundTrip[uint16], roundTrip[uint32], roundTrip[uint64]))
		},
	}
	cmd.Flags().IntVarP(&flags.count, "count", "n", 10000, "Set the number of random values.")
	cmd.Flags().IntVar(&flags.maxBits, "max-bits", 256, "Set the bit length limit of generated values.")
	cmd.Flags().StringVar(&flags.seed, "seed", "", "Seed the value generator, empty for a random seed.")
	return cmd
}

func roundTrip[T utfx.Unit](flags *roundTripFlags) error {
	if flags.maxBits < 1 {
		return E.New("max-bits must be positive")
	}
	source := random.Blake3KeyedHash()
	if flags.seed != "" {
		source = random.Seeded(flags.seed)
	}
	generator := rand.New(source)

	var errs []error
	check := func(value *big.Int) {
		if err := utfx.RoundTrip[T](value); err != nil {
			roundTripLogger.Error(err)
			errs = append(errs, err)
		}
	}
	// every all-ones value is the largest of its bit length
	ones := new(big.Int)
	for bitLen := 0; bitLen <= flags.maxBits; bitLen++ {
		check(ones)
		check(new(big.Int).Add(ones, big.NewInt(1)))
		ones = new(big.Int).Lsh(ones, 1)
		ones.SetBit(ones, 0, 1)
	}
	for i := 0; i < flags.count; i++ {
		check(source.Bits(generator.Intn(flags.maxBits) + 1))
	}
	roundTripLogger.Info("checked ", flags.count, " random values up to ", flags.maxBits, " bits, ", len(errs), " failures")
	err := E.Errors(errs...)
	if err != nil {
		return err
	}
	return common.Error(fmt.Fprintln(flags.cmd.OutOrStdout(), "ok"))
}
