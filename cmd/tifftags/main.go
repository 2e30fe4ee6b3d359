// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

// Command tifftags prints the tag directory of TIFF and BigTIFF files.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/bep/tifftags"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/text/encoding/htmlindex"
)

var (
	followChain = flag.Bool("all", false, "follow the IFD chain and print all directories")
	legacyText  = flag.Bool("legacy-text", false, "reverse ASCII and UNDEFINED values in big-endian files")
	charsetName = flag.String("charset", "", "charset of ASCII values, e.g. iso-8859-1")
	limit       = flag.Uint64("limit", tifftags.DefaultDisplayLimit, "number of elements printed for array values")
	asJSON      = flag.Bool("json", false, "print JSON instead of text")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("tifftags: ")
	flag.Parse()

	opts := tifftags.Options{
		FollowIFDChain:    *followChain,
		ReverseTextBlocks: *legacyText,
		DisplayLimit:      *limit,
	}
	if *charsetName != "" {
		enc, err := htmlindex.Get(*charsetName)
		if err != nil {
			log.Fatalf("unknown charset %q: %v", *charsetName, err)
		}
		opts.Charset = enc
	}

	r := &runner{
		out:  os.Stdout,
		log:  log.Default(),
		opts: opts,
		json: *asJSON,
	}

	if !r.json {
		printBanner(r.out)
	}

	filenames := flag.Args()
	if len(filenames) == 0 {
		filename, err := promptFilename(os.Stdin, r.out)
		if err != nil {
			log.Fatal(err)
		}
		filenames = []string{filename}
	}

	if err := r.run(filenames); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

func promptFilename(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprintln(out, "Insert Path of TIFF File")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	filename := strings.TrimSpace(line)
	if filename == "" {
		return "", errors.New("no file given")
	}
	return filename, nil
}

type runner struct {
	out  io.Writer
	log  *log.Logger
	opts tifftags.Options
	json bool
}

// run decodes and prints each file in turn.
// The errors of all failed files are returned together.
func (r *runner) run(filenames []string) error {
	var result *multierror.Error
	for _, filename := range filenames {
		if err := r.decodeFile(filename); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", filename, err))
		}
	}
	return result.ErrorOrNil()
}

func (r *runner) decodeFile(filename string) error {
	fi, err := os.Stat(filename)
	if err != nil || fi.IsDir() {
		fmt.Fprintf(r.out, "Input File is not Exist: %s\n", filename)
		if err == nil {
			err = errors.New("is a directory")
		}
		return err
	}

	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	opts := r.opts
	opts.R = f
	opts.Warnf = func(format string, args ...any) {
		r.log.Printf("%s: %s", filename, fmt.Sprintf(format, args...))
	}

	result, err := tifftags.Decode(opts)
	if err != nil {
		if tifftags.IsFormatError(err) && !r.json {
			fmt.Fprintln(r.out, "[Error] Input file is not supported")
		}
		return err
	}

	if r.json {
		return printJSON(r.out, filename, result)
	}
	printText(r.out, filename, result)
	return nil
}
