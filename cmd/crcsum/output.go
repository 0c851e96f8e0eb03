package main

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/bemasher/crc/csv"
)

// A Result is one computed checksum, ready for any of the output encoders.
type Result struct {
	Algorithm string `json:"algorithm" xml:"algorithm,attr"`
	Input     string `json:"input" xml:"input,attr"`
	Bytes     int64  `json:"bytes" xml:"bytes,attr"`
	CRC       string `json:"crc" xml:"crc"`
}

func (r Result) String() string {
	return fmt.Sprintf("%s  %s  %s", r.CRC, r.Algorithm, r.Input)
}

func (r Result) Header() []string {
	return []string{"crc", "algorithm", "input", "bytes"}
}

func (r Result) Record() []string {
	return []string{r.CRC, r.Algorithm, r.Input, strconv.FormatInt(r.Bytes, 10)}
}

// JSON, XML and CSV encoders all implement this interface so we can
// simplify output formatting.
type Encoder interface {
	Encode(interface{}) error
}

func newEncoder(format string, w io.Writer) (Encoder, error) {
	switch strings.ToLower(format) {
	case "plain":
		return PlainEncoder{w}, nil
	case "csv":
		return csv.NewEncoder(w), nil
	case "json":
		return json.NewEncoder(w), nil
	case "xml":
		return xml.NewEncoder(w), nil
	}
	return nil, errors.Errorf("unknown output format %q", format)
}

type PlainEncoder struct {
	w io.Writer
}

func (pe PlainEncoder) Encode(msg interface{}) (err error) {
	_, err = fmt.Fprintln(pe.w, msg)
	return err
}
