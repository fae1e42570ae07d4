// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Huffpack compresses and uncompresses files with Huffman coding.
// Usage:
//
//	huffpack [flags] [FILE ...]
//
// Each FILE may be a local path or a gs://bucket/object URL. Compressing
// FILE writes FILE.huf and uncompressing FILE writes FILE.orig. Without
// -mode, or without files, huffpack asks for them on standard input.
//
// The flags are:
//
//	-mode=c|u
//	    Compress (c) or uncompress (u).
//	-inspect
//	    With -mode=u, describe each archive instead of uncompressing it.
//	-config=LOCATION
//	    YAML file or gs:// URL overriding configuration.
//	-log_level=LEVEL
//	    Minimum severity to log: debug, info, warning, error or fatal.
//	-j=N
//	    Number of files processed at the same time.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/huffpack/internal/archive"
	"golang.org/x/huffpack/internal/blob"
	"golang.org/x/huffpack/internal/config"
	"golang.org/x/huffpack/internal/derrors"
	"golang.org/x/huffpack/internal/log"
	"golang.org/x/huffpack/internal/log/stackdriverlogger"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	modeFlag   = flag.String("mode", "", "c to compress, u to uncompress; asked on stdin if empty")
	inspect    = flag.Bool("inspect", false, "with -mode=u, print the header of each archive instead of uncompressing")
	configFlag = flag.String("config", "", "YAML config override, a file or gs:// URL")
	logLevel   = flag.String("log_level", "", "minimum log level; overrides the config")
	workers    = flag.Int("j", 0, "number of files processed at once; overrides the config")
)

type mode int

const (
	compressMode mode = iota
	uncompressMode
)

func (m mode) String() string {
	if m == compressMode {
		return "compress"
	}
	return "uncompress"
}

func parseMode(s string) (mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "compress":
		return compressMode, nil
	case "u", "uncompress":
		return uncompressMode, nil
	default:
		return 0, fmt.Errorf("unknown mode %q: %w", s, derrors.InvalidArgument)
	}
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [FILE ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	os.Exit(huffpack(context.Background()))
}

// huffpack runs the command and returns its exit code.
func huffpack(ctx context.Context) int {
	cfg, err := config.Init(ctx, *configFlag)
	if err != nil {
		log.Error(ctx, err)
		return derrors.ToExitCode(err)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	log.SetLevel(cfg.LogLevel)
	if cfg.Stackdriver {
		l, closeLogger, err := stackdriverlogger.New(ctx, cfg.LogName, cfg.ProjectID)
		if err != nil {
			log.Error(ctx, err)
			return derrors.ToExitCode(err)
		}
		log.Use(l)
		defer func() {
			l.Flush()
			if err := closeLogger(); err != nil {
				fmt.Fprintf(os.Stderr, "closing logger: %v\n", err)
			}
		}()
	}

	in := bufio.NewReader(os.Stdin)
	m, paths, err := resolveArgs(in, os.Stdout, *modeFlag, flag.Args())
	if err != nil {
		log.Error(ctx, err)
		return derrors.ToExitCode(err)
	}
	if err := run(ctx, cfg, m, *inspect, paths, os.Stdout); err != nil {
		log.Error(ctx, err)
		return derrors.ToExitCode(err)
	}
	return 0
}

// resolveArgs returns the mode and files to process, asking on in for
// whatever the command line left out.
func resolveArgs(in *bufio.Reader, out io.Writer, modeArg string, args []string) (_ mode, _ []string, err error) {
	defer derrors.Wrap(&err, "resolveArgs")

	if modeArg == "" {
		if modeArg, err = prompt(in, out, "Press c to compress or u to uncompress: "); err != nil {
			return 0, nil, err
		}
	}
	m, err := parseMode(modeArg)
	if err != nil {
		return 0, nil, err
	}
	if len(args) > 0 {
		return m, args, nil
	}
	name, err := prompt(in, out, fmt.Sprintf("File to %s: ", m))
	if err != nil {
		return 0, nil, err
	}
	if name == "" {
		return 0, nil, fmt.Errorf("no file given: %w", derrors.InvalidArgument)
	}
	return m, []string{name}, nil
}

func prompt(in *bufio.Reader, out io.Writer, question string) (string, error) {
	fmt.Fprint(out, question)
	line, err := in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading answer: %v: %w", err, derrors.InvalidArgument)
	}
	return strings.TrimSpace(line), nil
}

// A reporter prints one line per processed file.
type reporter struct {
	mu sync.Mutex
	p  *message.Printer
	w  io.Writer
}

func newReporter(w io.Writer) *reporter {
	return &reporter{p: message.NewPrinter(language.English), w: w}
}

func (r *reporter) printf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p.Fprintf(r.w, format, args...)
}

// run processes every path, at most cfg.Workers at a time. Each file is
// handled by a single sequential pipeline.
func run(ctx context.Context, cfg *config.Config, m mode, inspectOnly bool, paths []string, out io.Writer) error {
	rep := newReporter(out)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for _, path := range paths {
		path := path
		g.Go(func() error {
			ctx := fileContext(ctx, path, m)
			switch {
			case m == compressMode:
				return compressFile(ctx, cfg, path, rep)
			case inspectOnly:
				return inspectFile(ctx, path, rep)
			default:
				return uncompressFile(ctx, cfg, path, rep)
			}
		})
	}
	return g.Wait()
}

// fileContext labels the log entries written while processing path.
func fileContext(ctx context.Context, path string, m mode) context.Context {
	ctx = stackdriverlogger.NewContextWithLabel(ctx, "file", path)
	return stackdriverlogger.NewContextWithLabel(ctx, "mode", m.String())
}

func compressFile(ctx context.Context, cfg *config.Config, path string, rep *reporter) (err error) {
	defer derrors.Wrap(&err, "compressFile(%q)", path)

	start := time.Now()
	raw, err := blob.Read(ctx, path)
	if err != nil {
		return err
	}
	if len(raw) > 0 {
		stats, err := archive.Analyze(raw)
		if err != nil {
			return err
		}
		log.Debugf(ctx, "%s: tree %s", path, stats.Tree)
		log.Debugf(ctx, "%s: bits per symbol: %.4f", path, stats.BitsPerSymbol)
	}
	packed, err := archive.Compress(raw)
	if err != nil {
		return err
	}
	dst := path + cfg.CompressSuffix
	if err := blob.Write(ctx, dst, packed); err != nil {
		return err
	}
	rep.printf("compressed %s in %v (%d bytes to %d bytes).\n", path, time.Since(start).Round(time.Millisecond), len(raw), len(packed))
	return nil
}

func uncompressFile(ctx context.Context, cfg *config.Config, path string, rep *reporter) (err error) {
	defer derrors.Wrap(&err, "uncompressFile(%q)", path)

	start := time.Now()
	packed, err := blob.Read(ctx, path)
	if err != nil {
		return err
	}
	raw, err := archive.Decompress(packed)
	if err != nil {
		return err
	}
	dst := path + cfg.DecompressSuffix
	if err := blob.Write(ctx, dst, raw); err != nil {
		return err
	}
	rep.printf("uncompressed %s in %v (%d bytes to %d bytes).\n", path, time.Since(start).Round(time.Millisecond), len(packed), len(raw))
	return nil
}

func inspectFile(ctx context.Context, path string, rep *reporter) (err error) {
	defer derrors.Wrap(&err, "inspectFile(%q)", path)

	packed, err := blob.Read(ctx, path)
	if err != nil {
		return err
	}
	h, err := archive.ParseHeader(packed)
	if err != nil {
		return err
	}
	if len(h.Records) == 0 {
		rep.printf("%s: empty archive\n", path)
		return nil
	}
	tree, err := h.Tree()
	if err != nil {
		return err
	}
	rep.printf("%s: %d records, %d bytes original, %d bytes payload, tree %s\n",
		path, len(h.Records), h.Size, len(packed)-h.PayloadOffset, tree)
	return nil
}
