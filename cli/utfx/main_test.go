package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

func execute(t *testing.T, args ...string) string {
	var output bytes.Buffer
	command := mainCommand()
	command.SetArgs(args)
	command.SetOut(&output)
	require.NoError(t, command.Execute())
	return output.String()
}

func TestEncodeCommand(t *testing.T) {
	require.Equal(t, "128: 0b11000010 0b10000000\n", execute(t, "encode", "0x80"))
	require.Equal(t, "32768: 0xc002 0x8000\n", execute(t, "--width", "16", "--format", "hex", "encode", "0x8000"))
}

func TestLenCommand(t *testing.T) {
	require.Equal(t, "2\n", execute(t, "len", "0b11000010", "0b10000000"))
	require.Equal(t, "0\n", execute(t, "len", "--verify", "0b11000010", "0b01000000"))
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "utfx.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"width":16,"format":"hex"}`), 0o644))
	require.Equal(t, "128: 0x0080\n", execute(t, "--config", path, "encode", "128"))
	require.Equal(t, "128: 0b11000010 0b10000000\n", execute(t, "--config", path, "--width", "8", "--format", "bin", "encode", "128"))
}

func TestRawRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.bin")
	execute(t, "--width", "32", "--order", "little", "--format", "raw", "encode", "--output", path, "1", "0x80000000")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, content, 12)
	require.Contains(t, execute(t, "--width", "32", "--order", "little", "decode", "--input", path), "2147483648")
}

func TestVerifyFlagOverridesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "utfx.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"verify":true}`), 0o644))
	require.Equal(t, "0\n", execute(t, "--config", path, "len", "0b11100000"))
	require.Equal(t, "3\n", execute(t, "--config", path, "--verify=false", "len", "0b11100000"))
}

func TestDecodeSkipsInvalidUnits(t *testing.T) {
	require.Equal(t, "1: 5 (1 units)\n", execute(t, "decode", "0x80", "0x05"))
}

func TestWidthCommand(t *testing.T) {
	require.Equal(t, "127: 1\n128: 2\n", execute(t, "width", "127", "128"))
	require.Equal(t, "128: 1\n", execute(t, "--width", "16", "width", "128"))
}

func TestCountCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.bin")
	content := []byte{0b11100000, 0b10100000, 0b10000000, 0x80, 0x05, 0x80, 0b11000010, 0b10000000}
	require.NoError(t, os.WriteFile(path, content, 0o644))
	require.Equal(t, "units: 8\nvalid sequences: 3\ninvalid units: 2\n", execute(t, "count", path))
}

func TestRoundTripCommand(t *testing.T) {
	require.Equal(t, "ok\n", execute(t, "roundtrip", "--seed", "x", "--count", "50"))
	require.Equal(t, "ok\n", execute(t, "--width", "64", "roundtrip", "--seed", "x", "--count", "50", "--max-bits", "300"))
}

func TestDumpCommand(t *testing.T) {
	text := execute(t, "dump", "--max", "0x80")
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	require.Len(t, lines, 0x81)
	require.Equal(t, "0: 0b00000000", lines[0])
	require.Equal(t, "128: 0b11000010 0b10000000", lines[len(lines)-1])

	path := filepath.Join(t.TempDir(), "dump", "values.xz")
	require.Empty(t, execute(t, "dump", "--max", "0x80", "--xz", "--output", path))
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	reader, err := xz.NewReader(file)
	require.NoError(t, err)
	decompressed, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.Equal(t, text, string(decompressed))
}
