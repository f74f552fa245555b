package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BertoldVdb/mcfgpio/bootstrap"
	"github.com/BertoldVdb/mcfgpio/gpio"
	"github.com/BertoldVdb/mcfgpio/gpiochip"
	"github.com/BertoldVdb/mcfgpio/gpiolib"
	"github.com/BertoldVdb/mcfgpio/logrusconfig"
	"github.com/BertoldVdb/mcfgpio/mcfchips"
	"github.com/BertoldVdb/mcfgpio/regio"
	"github.com/BertoldVdb/mcfgpio/regstore"
	"github.com/sirupsen/logrus"
)

type config struct {
	variant    string
	state      string
	devmem     string
	windowBase uint
	windowSize uint
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] command...\n\nCommands:\n", os.Args[0])
	for _, c := range commands {
		fmt.Fprintf(flag.CommandLine.Output(), "  %-20s %s\n", c.name+" "+strings.Join(c.args, " "), c.help)
	}
	fmt.Fprintf(flag.CommandLine.Output(), "\nFlags:\n")
	flag.PrintDefaults()
}

func main() {
	var cfg config

	logrusconfig.InitParam(nil)
	flag.StringVar(&cfg.variant, "variant", "m528x", "Descriptor table to use ("+strings.Join(mcfchips.Names(), ", ")+")")
	flag.StringVar(&cfg.state, "state", "", "File holding the simulated registers between runs")
	flag.StringVar(&cfg.devmem, "devmem", "", "Access the real registers through this memory device instead of simulating")
	flag.UintVar(&cfg.windowBase, "window-base", 0x40000000, "Physical base address of the register window to map")
	flag.UintVar(&cfg.windowSize, "window-size", 0x200000, "Size of the register window to map")
	flag.Usage = usage
	flag.Parse()

	log := logrusconfig.GetLogger(logrus.InfoLevel)

	if err := run(cfg, flag.Args(), os.Stdout, log); err != nil {
		log.WithError(err).Error("Failed")
		os.Exit(1)
	}
}

// checkWindow makes sure every register of the table can be reached through
// the mapped window
func checkWindow(table *gpiochip.Table, base uint32, size uint32) error {
	for _, c := range table.Chips() {
		for _, addr := range c.Registers() {
			if addr < base || uint64(addr)+4 > uint64(base)+uint64(size) || addr%4 != 0 {
				return fmt.Errorf("%s: register 0x%08x: %w", c.Label, addr, regio.ErrorBadWindow)
			}
		}
	}
	return nil
}

func run(cfg config, args []string, out io.Writer, log *logrus.Entry) error {
	table, ok := mcfchips.Lookup(cfg.variant)
	if !ok {
		return fmt.Errorf("Unknown variant %s", cfg.variant)
	}

	var bus regio.Bus
	var store *regstore.File

	if cfg.devmem != "" {
		if err := checkWindow(table, uint32(cfg.windowBase), uint32(cfg.windowSize)); err != nil {
			return err
		}

		mem, err := regio.OpenDevMem(cfg.devmem, uint32(cfg.windowBase), uint32(cfg.windowSize))
		if err != nil {
			return err
		}
		defer mem.Close()
		bus = mem
	} else {
		sim := gpio.NewSim(table)
		bus = sim

		if cfg.state != "" {
			store = &regstore.File{Filename: cfg.state, Sim: sim}
			if err := store.Load(); err != nil && !os.IsNotExist(err) {
				return err
			}
		}
	}

	engine := gpio.New(bus, table, logrusconfig.Component(log, "gpio"))
	subsystem := gpiolib.New(logrusconfig.Component(log, "gpiolib"))

	boot := &bootstrap.Bootstrapper{
		Registrar: subsystem,
		Log:       logrusconfig.Component(log, "bootstrap"),
	}
	if _, err := boot.Run(engine); err != nil {
		return err
	}

	s := newSession(engine, subsystem, out)
	err := s.exec(args)

	if store != nil {
		if err2 := store.Save(); err == nil {
			err = err2
		}
	}
	return err
}
