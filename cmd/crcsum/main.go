// crcsum computes cyclic redundancy checks of files, URLs, S3 objects or
// standard input using any algorithm from the built-in catalogue, and can
// verify the whole catalogue against its published check values.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/file/s3file"
	"github.com/grailbio/base/must"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh/terminal"
	"v.io/x/lib/cmd/flagvar"

	"github.com/bemasher/crc"
)

var commandline struct {
	Algorithm string `cmd:"algorithm,CRC-32,named algorithm to compute; see -list"`
	Format    string `cmd:"format,plain,'output format: plain, csv, json, or xml'"`
	List      bool   `cmd:"list,false,list the known algorithms and exit"`
	SelfTest  bool   `cmd:"selftest,false,verify every algorithm against its published check value and exit"`
	Progress  bool   `cmd:"progress,false,display a progress bar while reading named inputs"`
}

var log = logrus.StandardLogger()

func init() {
	must.Nil(flagvar.RegisterFlagsInStruct(flag.CommandLine, "cmd", &commandline, nil, nil))

	file.RegisterImplementation("s3", func() file.Implementation {
		return s3file.NewImplementation(
			s3file.NewDefaultProvider(session.Options{}), s3file.Options{})
	})
}

// envOverride lets CRCSUM_* environment variables stand in for flags that
// were not given on the command line.
func envOverride() {
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	flag.VisitAll(func(f *flag.Flag) {
		envName := "CRCSUM_" + strings.ToUpper(f.Name)
		flagValue := os.Getenv(envName)
		if flagValue == "" || set[f.Name] {
			return
		}
		if err := flag.Set(f.Name, flagValue); err != nil {
			log.Warnf("environment variable %q failed to override flag %q with value %q: %v",
				envName, f.Name, flagValue, err)
		}
	})
}

func main() {
	flag.Parse()
	envOverride()

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	switch {
	case commandline.List:
		listAlgorithms(os.Stdout)
		return nil
	case commandline.SelfTest:
		if failures := selfTest(); failures > 0 {
			return errors.Errorf("%d of %d algorithms failed self test", failures, len(crc.Presets()))
		}
		log.Infof("all %d algorithms passed self test", len(crc.Presets()))
		return nil
	}

	preset, ok := crc.LookupPreset(commandline.Algorithm)
	if !ok {
		return errors.Errorf("unknown algorithm %q, -list prints the catalogue", commandline.Algorithm)
	}

	enc, err := newEncoder(commandline.Format, os.Stdout)
	if err != nil {
		return err
	}

	ctx := context.Background()

	inputs := flag.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	var failed bool
	for _, name := range inputs {
		result, err := checksumInput(ctx, preset, name)
		if err != nil {
			log.WithField("input", name).Error(err)
			failed = true
			continue
		}

		if err := enc.Encode(result); err != nil {
			return errors.Wrap(err, "encoding result")
		}
	}

	if failed {
		return errors.New("one or more inputs failed")
	}
	return nil
}

// checksumInput reads the named input to completion through a digest for
// the given algorithm. The name "-" reads standard input.
func checksumInput(ctx context.Context, preset crc.Preset, name string) (Result, error) {
	rd, size, cleanup, err := openInput(ctx, name)
	if err != nil {
		return Result{}, err
	}
	defer cleanup(ctx)

	var bar *progressbar.ProgressBar
	if commandline.Progress && size > 0 && terminal.IsTerminal(int(os.Stderr.Fd())) {
		bar = progressbar.NewOptions64(size,
			progressbar.OptionSetBytes64(size),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetPredictTime(true))
		bar.RenderBlank()
		defer fmt.Fprintln(os.Stderr)
	}

	h := preset.New()
	buf := make([]byte, 1<<20)

	var total int64
	for {
		n, err := rd.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
			total += int64(n)
			if bar != nil {
				bar.Add(n)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return Result{}, errors.Wrapf(err, "reading %s", name)
		}
	}

	digits := int(preset.Width+3) / 4
	return Result{
		Algorithm: preset.Name,
		Input:     name,
		Bytes:     total,
		CRC:       fmt.Sprintf("0x%0*X", digits, h.Sum64()),
	}, nil
}

// openInput opens a local path, http(s) URL or s3 path for reading. The
// reported size is -1 when unknown.
func openInput(ctx context.Context, name string) (io.Reader, int64, func(context.Context) error, error) {
	if name == "-" {
		return os.Stdin, -1, func(context.Context) error { return nil }, nil
	}

	if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
		resp, err := http.Get(name)
		if err != nil {
			return nil, 0, nil, errors.Wrapf(err, "fetching %s", name)
		}
		return resp.Body,
			resp.ContentLength,
			func(context.Context) error { return resp.Body.Close() },
			nil
	}

	info, err := file.Stat(ctx, name)
	if err != nil {
		return nil, 0, nil, errors.Wrapf(err, "stat %s", name)
	}
	f, err := file.Open(ctx, name)
	if err != nil {
		return nil, 0, nil, errors.Wrapf(err, "open %s", name)
	}
	return f.Reader(ctx), info.Size(), f.Close, nil
}

// selfTest recomputes every catalogued algorithm's check value and reports
// any mismatch with a full parameter dump.
func selfTest() (failures int) {
	check := []byte("123456789")

	for _, preset := range crc.Presets() {
		h := preset.New()
		h.Write(check)

		digits := int(preset.Width+3) / 4
		if computed := h.Sum64(); computed != preset.Check {
			failures++
			log.WithFields(logrus.Fields{
				"algorithm": preset.Name,
				"params":    preset.Params.String(),
				"expected":  fmt.Sprintf("0x%0*X", digits, preset.Check),
				"computed":  fmt.Sprintf("0x%0*X", digits, computed),
			}).Error("check value mismatch")
			continue
		}

		log.WithField("algorithm", preset.Name).Debug("check value ok")
	}

	return failures
}

func listAlgorithms(w io.Writer) {
	for _, preset := range crc.Presets() {
		fmt.Fprintf(w, "%-20s %s\n", preset.Name, preset.Params)
	}
}
