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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/commavid/cartridgeloader"
	"github.com/jetsetilly/commavid/environment"
	"github.com/jetsetilly/commavid/hardware/memory/cartridge"
	"github.com/jetsetilly/commavid/hardware/memory/memorymap"
	"github.com/jetsetilly/commavid/hardware/memory/system"
	"github.com/jetsetilly/commavid/logger"
	"github.com/jetsetilly/commavid/modalflag"
	"github.com/jetsetilly/commavid/paths"
	"github.com/jetsetilly/commavid/prefs"
	"github.com/jetsetilly/commavid/serializer"
	"github.com/jetsetilly/commavid/statsview"
	"github.com/jetsetilly/commavid/version"
)

// exit values
const (
	exitOK        = 0
	exitParse     = 10
	exitOperation = 20
)

func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch parses the arguments and runs the selected mode. Returns the value
// to be used with os.Exit().
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("INFO", "DUMP", "PATCH", "STATE", "VERSION")
	echo := md.AddBool("log", false, "echo log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	prefsGroup := md.AddString("prefs", "", "preferences for this run. eg. 'hardware.randstate::true'")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParse
	}

	if *echo {
		logger.SetEcho(output)
		defer logger.SetEcho(nil)
	}

	if *stats {
		stop := statsview.Launch(output, statsview.Address)
		defer stop()
	}

	prefs.PushCommandLineStack(*prefsGroup)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused preferences (%s)", unused)
		}
	}()

	switch md.Mode() {
	case "INFO":
		err = info(md)
	case "DUMP":
		err = dump(md)
	case "PATCH":
		err = patch(md)
	case "STATE":
		err = state(md)
	case "VERSION":
		fmt.Fprintln(md.Output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitOperation
	}

	return exitOK
}

// the cartridge and the host it has been installed into
type session struct {
	env  *environment.Environment
	cart *cartridge.Cartridge
	sys  *system.System

	// the data the cartridge was created from
	data []byte

	// short name of the cartridge file
	name string
}

// attach the cartridge named in the first remaining argument and install it
// into a new system.
func attach(md *modalflag.Modes, mapping string) (*session, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("cartridge required for %s mode", md)
	case 1:
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	cartload := cartridgeloader.NewLoader(md.GetArg(0), mapping)
	if err := cartload.Load(); err != nil {
		return nil, err
	}

	env, err := environment.NewEnvironment(nil, nil)
	if err != nil {
		return nil, err
	}

	s := &session{
		env:  env,
		cart: cartridge.NewCartridge(env),
		sys:  system.NewSystem(env),
		data: cartload.Data,
		name: cartload.ShortName(),
	}

	if err := s.cart.Attach(cartload); err != nil {
		return nil, err
	}
	if err := s.cart.Install(s.sys); err != nil {
		return nil, err
	}

	return s, nil
}

func info(md *modalflag.Modes) error {
	md.NewMode()
	mapping := md.AddString("mapping", cartridgeloader.AutoMapping, "force use of cartridge mapping")
	dot := md.AddString("memviz", "", "write graphviz rendering of the cartridge to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	s, err := attach(md, *mapping)
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "file: %s\n", s.cart.Filename)
	fmt.Fprintf(md.Output, "hash: %s\n", s.cart.Hash)
	fmt.Fprintf(md.Output, "mapper: %s\n", s.cart.GetMapper())
	fmt.Fprintf(md.Output, "size: %d bytes\n", len(s.data))
	fmt.Fprintf(md.Output, "%s\n", s.env.Prefs)

	if *dot != "" {
		f, err := os.Create(*dot)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, s.cart.GetMapper())
		fmt.Fprintf(md.Output, "memviz: %s\n", *dot)
	}

	return nil
}

// write the address space of the cartridge as seen by the host
func dump(md *modalflag.Modes) error {
	md.NewMode()
	mapping := md.AddString("mapping", cartridgeloader.AutoMapping, "force use of cartridge mapping")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	s, err := attach(md, *mapping)
	if err != nil {
		return err
	}

	const width = 16
	for addr := uint16(memorymap.OriginCart); addr <= memorymap.MemtopCart; addr += width {
		fmt.Fprintf(md.Output, "%04x:", addr)
		for i := uint16(0); i < width; i++ {
			fmt.Fprintf(md.Output, " %02x", s.sys.PeekPassive(addr+i))
		}
		fmt.Fprintf(md.Output, "  %s\n", s.cart.GetBank(addr))
	}

	return nil
}

func parseUint(s string, bitSize int) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, bitSize)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", s, errors.Unwrap(err))
	}
	return v, nil
}

// patch a single byte of the cartridge and write the result to a new file
func patch(md *modalflag.Modes) error {
	md.NewMode()
	mapping := md.AddString("mapping", cartridgeloader.AutoMapping, "force use of cartridge mapping")
	addrArg := md.AddString("addr", "", "address to patch")
	valueArg := md.AddString("value", "", "value to write to address")
	out := md.AddString("o", "", "file to write patched cartridge to. a unique name is used if empty")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *addrArg == "" || *valueArg == "" {
		return fmt.Errorf("-addr and -value are both required")
	}

	addr, err := parseUint(*addrArg, 16)
	if err != nil {
		return err
	}
	if !memorymap.IsCartridge(uint16(addr)) {
		return fmt.Errorf("%#04x is not a cartridge address", addr)
	}

	value, err := parseUint(*valueArg, 8)
	if err != nil {
		return err
	}

	s, err := attach(md, *mapping)
	if err != nil {
		return err
	}

	if !s.sys.Patch(uint16(addr), uint8(value)) {
		return fmt.Errorf("cannot patch %#04x", addr)
	}

	img, err := s.cart.GetImage()
	if err != nil {
		return err
	}

	var b bytes.Buffer

	if len(s.data) == len(img) {
		if s.cart.GetBank(uint16(addr)).IsRAM {
			return fmt.Errorf("cannot save RAM patch for a cartridge with no RAM image")
		}
		b.Write(img)
	} else {
		// the RAM image is the first part of the file followed by the unused
		// kilobyte. the patched RAM replaces the original RAM image
		ram := s.cart.GetRAMbus().GetRAM()[0].Data
		b.Write(ram)
		b.Write(s.data[len(ram) : len(s.data)-len(img)])
		b.Write(img)
	}

	if *out == "" {
		*out = paths.UniqueFilename("patched", s.name) + filepath.Ext(md.GetArg(0))
	}

	if err := os.WriteFile(*out, b.Bytes(), 0644); err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%#04x = %#02x written to %s\n", addr, value, *out)

	return nil
}

// load and save the volatile state of the cartridge
func state(md *modalflag.Modes) error {
	md.NewMode()
	mapping := md.AddString("mapping", cartridgeloader.AutoMapping, "force use of cartridge mapping")
	load := md.AddString("load", "", "state file to load before saving")
	save := md.AddString("save", "", "file to save state to")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *load == "" && *save == "" {
		return fmt.Errorf("at least one of -load or -save is required")
	}

	s, err := attach(md, *mapping)
	if err != nil {
		return err
	}

	if *load != "" {
		f, err := os.Open(*load)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := s.cart.Load(serializer.NewReader(f)); err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "state loaded from %s\n", *load)
	}

	if *save != "" {
		var b bytes.Buffer
		if err := s.cart.Save(serializer.NewWriter(&b)); err != nil {
			return err
		}
		if err := os.WriteFile(*save, b.Bytes(), 0644); err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "state saved to %s\n", *save)
	}

	return nil
}
