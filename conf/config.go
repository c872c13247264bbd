package conf

import (
	"bytes"
	"encoding/json"
	"os"

	E "github.com/sagernet/sing-utfx/common/exceptions"
)

// Options holds the settings shared by every utfx command. Zero values
// fall back to the defaults of the command line flags.
type Options struct {
	Width     int    `json:"width,omitempty"`
	ByteOrder string `json:"byte_order,omitempty"`
	Format    string `json:"format,omitempty"`
	Verify    bool   `json:"verify,omitempty"`
	LogLevel  string `json:"log_level,omitempty"`
}

func Read(path string) (*Options, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, E.Cause(err, "read config")
	}
	return Parse(content)
}

func Parse(content []byte) (*Options, error) {
	decoder := json.NewDecoder(bytes.NewReader(content))
	decoder.DisallowUnknownFields()
	options := new(Options)
	err := decoder.Decode(options)
	if err != nil {
		return nil, E.Cause(err, "decode config")
	}
	err = options.Validate()
	if err != nil {
		return nil, err
	}
	return options, nil
}

func (o *Options) Validate() error {
	switch o.Width {
	case 0, 8, 16, 32, 64:
	default:
		return E.New("unsupported code unit width: ", o.Width)
	}
	return nil
}

// Merge fills every zero field of o from other.
func (o *Options) Merge(other *Options) {
	if other == nil {
		return
	}
	if o.Width == 0 {
		o.Width = other.Width
	}
	if o.ByteOrder == "" {
		o.ByteOrder = other.ByteOrder
	}
	if o.Format == "" {
		o.Format = other.Format
	}
	if !o.Verify {
		o.Verify = other.Verify
	}
	if o.LogLevel == "" {
		o.LogLevel = other.LogLevel
	}
}
