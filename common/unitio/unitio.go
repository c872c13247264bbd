// Package unitio moves code units between byte streams and text.
package unitio

import (
	"encoding/binary"
	"io"

	"github.com/sagernet/sing-utfx/common"
	E "github.com/sagernet/sing-utfx/common/exceptions"
	"github.com/sagernet/sing-utfx/common/utfx"
)

type ByteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

func ParseByteOrder(name string) (ByteOrder, error) {
	switch name {
	case "", "big":
		return binary.BigEndian, nil
	case "little":
		return binary.LittleEndian, nil
	case "native":
		return binary.NativeEndian, nil
	default:
		return nil, E.New("unknown byte order: ", name)
	}
}

// Size is the number of bytes of one T.
func Size[T utfx.Unit]() int {
	return utfx.Width[T]() / 8
}

// Units splits data into code units.
func Units[T utfx.Unit](data []byte, order ByteOrder) ([]T, error) {
	size := Size[T]()
	if len(data)%size != 0 {
		return nil, E.New("input of ", len(data), " bytes is not a multiple of the ", size, " byte unit size")
	}
	units := make([]T, len(data)/size)
	for i := range units {
		chunk := data[i*size : (i+1)*size]
		switch size {
		case 1:
			units[i] = T(chunk[0])
		case 2:
			units[i] = T(order.Uint16(chunk))
		case 4:
			units[i] = T(order.Uint32(chunk))
		default:
			units[i] = T(order.Uint64(chunk))
		}
	}
	return units, nil
}

func AppendBytes[T utfx.Unit](dst []byte, order ByteOrder, units []T) []byte {
	for _, unit := range units {
		switch Size[T]() {
		case 1:
			dst = append(dst, byte(unit))
		case 2:
			dst = order.AppendUint16(dst, uint16(unit))
		case 4:
			dst = order.AppendUint32(dst, uint32(unit))
		default:
			dst = order.AppendUint64(dst, uint64(unit))
		}
	}
	return dst
}

func ReadUnits[T utfx.Unit](reader io.Reader, order ByteOrder) ([]T, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, E.Cause(err, "read units")
	}
	return Units[T](data, order)
}

func WriteUnits[T utfx.Unit](writer io.Writer, order ByteOrder, units []T) error {
	return common.Error(writer.Write(AppendBytes(nil, order, units)))
}
