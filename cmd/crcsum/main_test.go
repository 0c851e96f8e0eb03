package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bemasher/crc"
)

func TestSelfTest(t *testing.T) {
	if failures := selfTest(); failures != 0 {
		t.Fatalf("%d algorithms failed self test", failures)
	}
}

func TestChecksumInput(t *testing.T) {
	name := filepath.Join(t.TempDir(), "check.bin")
	if err := os.WriteFile(name, []byte("123456789"), 0644); err != nil {
		t.Fatal(err)
	}

	for _, tc := range []struct {
		algorithm string
		crc       string
	}{
		{"CRC-32", "0xCBF43926"},
		{"CRC-16/XMODEM", "0x31C3"},
		{"CRC-5/USB", "0x19"},
	} {
		preset, ok := crc.LookupPreset(tc.algorithm)
		if !ok {
			t.Fatalf("unknown algorithm %q", tc.algorithm)
		}

		result, err := checksumInput(context.Background(), preset, name)
		if err != nil {
			t.Fatal(err)
		}

		if result.CRC != tc.crc {
			t.Fatalf("%s: expected %s got %s", tc.algorithm, tc.crc, result.CRC)
		}
		if result.Bytes != 9 {
			t.Fatalf("%s: expected 9 bytes got %d", tc.algorithm, result.Bytes)
		}
	}
}

func TestEncoders(t *testing.T) {
	result := Result{Algorithm: "CRC-32", Input: "check.bin", Bytes: 9, CRC: "0xCBF43926"}

	for _, tc := range []struct {
		format   string
		contains string
	}{
		{"plain", "0xCBF43926  CRC-32  check.bin"},
		{"csv", "crc,algorithm,input,bytes\n0xCBF43926,CRC-32,check.bin,9\n"},
		{"json", `"crc":"0xCBF43926"`},
		{"xml", `crc>0xCBF43926</crc`},
	} {
		buf := &bytes.Buffer{}
		enc, err := newEncoder(tc.format, buf)
		if err != nil {
			t.Fatal(err)
		}

		if err := enc.Encode(result); err != nil {
			t.Fatalf("%s: %+v", tc.format, err)
		}
		if !strings.Contains(buf.String(), tc.contains) {
			t.Fatalf("%s: expected output containing %q got %q", tc.format, tc.contains, buf.String())
		}
	}

	if _, err := newEncoder("yaml", os.Stdout); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestListAlgorithms(t *testing.T) {
	buf := &bytes.Buffer{}
	listAlgorithms(buf)

	for _, name := range []string{"CRC-4/ITU", "CRC-32", "CRC-64"} {
		if !strings.Contains(buf.String(), name) {
			t.Fatalf("expected listing to contain %q", name)
		}
	}
}
