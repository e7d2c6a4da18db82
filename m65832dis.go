// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/m65832dis/binaryloader"
	"github.com/jetsetilly/m65832dis/debugger"
	"github.com/jetsetilly/m65832dis/debugger/terminal/easyterm"
	"github.com/jetsetilly/m65832dis/disassembly"
	"github.com/jetsetilly/m65832dis/filter"
	"github.com/jetsetilly/m65832dis/hardware/cpu/registers"
	"github.com/jetsetilly/m65832dis/logger"
	"github.com/jetsetilly/m65832dis/modalflag"
	"github.com/jetsetilly/m65832dis/paths"
	"github.com/jetsetilly/m65832dis/statsview"
	"github.com/jetsetilly/m65832dis/version"
	"golang.org/x/sync/errgroup"
)

// exit values.
const (
	exitSuccess  = 0
	exitArgument = 10
	exitMode     = 20
)

// the number of entries per file included in a memviz graph.
const memvizEntries = 32

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(exitVal)
}

// launch the mode selected by the arguments. returns the value to use with
// os.Exit().
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("DISASM", "STEP", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitSuccess

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArgument
	}

	switch md.Mode() {
	case "DISASM":
		err = disasm(ctx, md)

	case "STEP":
		err = step(ctx, md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitMode
	}

	return exitSuccess
}

// options common to the DISASM and STEP modes.
type options struct {
	origin *uint32
	offset *uint32
	length *uint32

	hex    *bool
	noAddr *bool

	acc       *modalflag.Switch
	idx       *modalflag.Switch
	emulation *bool

	filter *string
	log    *bool
}

func addOptions(md *modalflag.Modes) options {
	return options{
		origin: md.AddAddress("o", 0, "origin address of the first byte disassembled"),
		offset: md.AddAddress("s", 0, "start offset in file"),
		length: md.AddAddress("l", 0, "number of bytes to disassemble (0 for all)"),
		hex:    md.AddBool("x", false, "show hex bytes"),
		noAddr: md.AddBool("n", false, "do not show addresses"),
		acc: md.AddSwitch("m16",
			modalflag.SwitchOption{Name: "m8", Usage: "8bit accumulator"},
			modalflag.SwitchOption{Name: "m16", Usage: "16bit accumulator (default)"},
			modalflag.SwitchOption{Name: "m32", Usage: "32bit accumulator"},
		),
		idx: md.AddSwitch("x16",
			modalflag.SwitchOption{Name: "x8", Usage: "8bit index registers"},
			modalflag.SwitchOption{Name: "x16", Usage: "16bit index registers (default)"},
			modalflag.SwitchOption{Name: "x32", Usage: "32bit index registers"},
		),
		emulation: md.AddBool("e", false, "emulation mode"),
		filter:    md.AddString("filter", "", "Lua script used to filter the disassembly (also looked for in the filters resource directory)"),
		log:       md.AddBool("log", false, "echo debugging log to stdout"),
	}
}

// switchWidth converts the name of a width switch (eg. "m16") to a
// registers.Width.
func switchWidth(sw *modalflag.Switch) (registers.Width, error) {
	bits, err := strconv.Atoi(sw.Selected()[1:])
	if err != nil {
		return registers.Width16, err
	}
	return registers.NewWidth(bits)
}

// state returns a new disassembly.State as specified by the options.
func (opts options) state() (*disassembly.State, error) {
	var err error

	st := disassembly.NewState()
	st.AccumulatorWidth, err = switchWidth(opts.acc)
	if err != nil {
		return nil, err
	}
	st.IndexWidth, err = switchWidth(opts.idx)
	if err != nil {
		return nil, err
	}
	st.Emulation = *opts.emulation

	return st, nil
}

func (opts options) attr() disassembly.WriteAttr {
	return disassembly.WriteAttr{
		Addresses: !*opts.noAddr,
		ByteCode:  *opts.hex,
	}
}

func (opts options) setEcho(output io.Writer) {
	if *opts.log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}
}

// parseGrepScope converts the value of the -grepscope flag to a
// disassembly.GrepScope.
func parseGrepScope(s string) (disassembly.GrepScope, error) {
	switch strings.ToUpper(s) {
	case "MNEMONIC":
		return disassembly.GrepMnemonic, nil
	case "OPERAND":
		return disassembly.GrepOperand, nil
	case "ALL":
		return disassembly.GrepAll, nil
	case "EFFECT":
		return disassembly.GrepEffect, nil
	}
	return disassembly.GrepMnemonic, fmt.Errorf("unknown grep scope: %s", s)
}

// listing is the result of disassembling a single file.
type listing struct {
	output  bytes.Buffer
	entries []*disassembly.Entry
}

func disasm(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	opts := addOptions(md)
	grep := md.AddString("grep", "", "only list instructions containing the search string")
	scope := md.AddString("grepscope", "MNEMONIC", "part of the instruction searched by -grep: MNEMONIC, OPERAND, ALL or EFFECT")
	memvizFile := md.AddString("memviz", "", "write a graph of decoded entries (graphviz format) to file. AUTO chooses a unique filename")
	stats := md.AddBool("statsview", false, "launch the runtime statistics server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	opts.setEcho(md.Output)

	if *stats {
		statsview.Launch(ctx, md.Output)
	}

	files := md.RemainingArgs()
	if len(files) == 0 {
		return fmt.Errorf("binary file required for %s mode", md)
	}

	// make sure the options are valid before starting any work
	if _, err := opts.state(); err != nil {
		return err
	}
	grepScope, err := parseGrepScope(*scope)
	if err != nil {
		return err
	}

	listings := make([]listing, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, fn := range files {
		g.Go(func() error {
			return disasmFile(ctx, opts, fn, *grep, grepScope, *memvizFile != "", &listings[i])
		})
	}

	err = g.Wait()

	// print what output we do have, in the order of the arguments
	for i := range listings {
		md.Output.Write(listings[i].output.Bytes())
	}

	if err != nil {
		return err
	}

	if *memvizFile != "" {
		fn := *memvizFile
		if strings.ToUpper(fn) == "AUTO" {
			fn = paths.UniqueFilename("memviz", filepath.Base(files[0]), "dot")
		}
		return writeMemviz(fn, listings)
	}

	return nil
}

func disasmFile(ctx context.Context, opts options, filename string, grep string, scope disassembly.GrepScope, keep bool, l *listing) error {
	ld := binaryloader.NewLoader(filename, *opts.offset, *opts.length)
	if err := ld.Load(ctx); err != nil {
		return err
	}

	// every file has its own state
	st, err := opts.state()
	if err != nil {
		return err
	}

	attr := opts.attr()

	// a Lua state cannot be shared between goroutines so every file has its
	// own instance of the filter
	if *opts.filter != "" {
		f, err := filter.NewFromFile(paths.Find("filters", *opts.filter))
		if err != nil {
			return err
		}
		defer f.Close()
		attr.Filter = f
	}

	if keep {
		// the listing must start with the unmodified state
		cp := *st
		itr := disassembly.NewIteration(ld.Data, *opts.origin, &cp)
		for _, e := itr.Start(); e != nil && len(l.entries) < memvizEntries; _, e = itr.Next() {
			l.entries = append(l.entries, e)
		}
	}

	if grep != "" {
		err = disassembly.WriteHeader(&l.output, ld.ShortName(), *opts.origin, len(ld.Data))
		if err != nil {
			return err
		}
		itr := disassembly.NewIteration(ld.Data, *opts.origin, st)
		n, err := disassembly.Grep(&l.output, itr, attr, scope, grep, false)
		if err != nil {
			return err
		}
		logger.Logf(logger.Allow, "disasm", "%s: %d matches for %s", ld.ShortName(), n, grep)
		return nil
	}

	err = disassembly.Write(&l.output, ld.ShortName(), ld.Data, *opts.origin, st, attr)
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "disasm", "%s: complete", ld.ShortName())

	return nil
}

func writeMemviz(filename string, listings []listing) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	is := make([]interface{}, 0, len(listings))
	for i := range listings {
		is = append(is, &listings[i].entries)
	}
	memviz.Map(f, is...)

	logger.Logf(logger.Allow, "memviz", "graph written to %s", filename)

	return nil
}

func step(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	opts := addOptions(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	opts.setEcho(md.Output)

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("binary file required for %s mode", md)
	case 1:
		if !easyterm.IsTerminal(os.Stdin) {
			return fmt.Errorf("%s mode requires a terminal", md)
		}

		ld := binaryloader.NewLoader(md.GetArg(0), *opts.offset, *opts.length)
		if err := ld.Load(ctx); err != nil {
			return err
		}

		st, err := opts.state()
		if err != nil {
			return err
		}

		attr := opts.attr()
		if *opts.filter != "" {
			f, err := filter.NewFromFile(paths.Find("filters", *opts.filter))
			if err != nil {
				return err
			}
			defer f.Close()
			attr.Filter = f
		}

		s := debugger.NewStepper(ld.Data, *opts.origin, st, attr)
		return debugger.RunTerminal(ctx, s)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display revision information (if available)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	version.Banner(md.Output)

	if *revision {
		_, rev, _ := version.Version()
		fmt.Fprintf(md.Output, "revision: %s\n", rev)
	}

	return nil
}
