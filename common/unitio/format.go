package unitio

import (
	"strconv"
	"strings"

	E "github.com/sagernet/sing-utfx/common/exceptions"
	"github.com/sagernet/sing-utfx/common/utfx"
)

type Format string

const (
	FormatBinary Format = "bin"
	FormatHex    Format = "hex"
	FormatRaw    Format = "raw"
)

func ParseFormat(name string) (Format, error) {
	switch format := Format(name); format {
	case FormatBinary, FormatHex, FormatRaw:
		return format, nil
	case "":
		return FormatBinary, nil
	default:
		return "", E.New("unknown format: ", name)
	}
}

// FormatUnit renders a unit zero padded to its full width.
func FormatUnit[T utfx.Unit](unit T, format Format) (string, error) {
	var (
		prefix string
		base   int
		digits int
	)
	switch format {
	case FormatBinary:
		prefix, base, digits = "0b", 2, utfx.Width[T]()
	case FormatHex:
		prefix, base, digits = "0x", 16, utfx.Width[T]()/4
	default:
		return "", E.New("format ", format, " is not textual")
	}
	text := strconv.FormatUint(uint64(unit), base)
	return prefix + strings.Repeat("0", digits-len(text)) + text, nil
}

func FormatUnits[T utfx.Unit](units []T, format Format) (string, error) {
	fields := make([]string, 0, len(units))
	for _, unit := range units {
		field, err := FormatUnit(unit, format)
		if err != nil {
			return "", err
		}
		fields = append(fields, field)
	}
	return strings.Join(fields, " "), nil
}

// ParseUnits reads units written as decimal, 0x, 0o or 0b literals.
func ParseUnits[T utfx.Unit](fields []string) ([]T, error) {
	units := make([]T, 0, len(fields))
	for index, field := range fields {
		unit, err := strconv.ParseUint(field, 0, utfx.Width[T]())
		if err != nil {
			return nil, E.Cause(err, "unit [", index, "]")
		}
		units = append(units, T(unit))
	}
	return units, nil
}
