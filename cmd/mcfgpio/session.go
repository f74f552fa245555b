package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/BertoldVdb/mcfgpio/gpio"
	"github.com/BertoldVdb/mcfgpio/gpiolib"
)

type session struct {
	engine    *gpio.Engine
	subsystem *gpiolib.Subsystem
	out       io.Writer
	lines     map[uint32]*gpiolib.Lines
}

type command struct {
	name string
	args []string
	help string
	fn   func(s *session, args []string) error
}

var commands []command

func init() {
	commands = []command{
		{"chips", nil, "List the registered chips", (*session).chips},
		{"lines", nil, "List every line with its state", (*session).lines},
		{"request", []string{"PIN", "LABEL"}, "Reserve a pin", (*session).request},
		{"drive", []string{"PIN", "LABEL", "0|1"}, "Reserve a pin as output with an initial level", (*session).drive},
		{"free", []string{"PIN"}, "Release a pin reserved with request or drive", (*session).free},
		{"in", []string{"PIN"}, "Switch a pin to input", (*session).in},
		{"out", []string{"PIN"}, "Switch a pin to output", (*session).outDir},
		{"set", []string{"PIN", "0|1"}, "Drive an output level", (*session).set},
		{"get", []string{"PIN"}, "Read a pin level", (*session).get},
	}
}

func newSession(engine *gpio.Engine, subsystem *gpiolib.Subsystem, out io.Writer) *session {
	return &session{
		engine:    engine,
		subsystem: subsystem,
		out:       out,
		lines:     make(map[uint32]*gpiolib.Lines),
	}
}

func findCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

// exec runs the commands in args one after the other
func (s *session) exec(args []string) error {
	for len(args) > 0 {
		c, ok := findCommand(args[0])
		if !ok {
			return fmt.Errorf("Unknown command %s", args[0])
		}
		if len(args) < 1+len(c.args) {
			return fmt.Errorf("%s: expected %d arguments", c.name, len(c.args))
		}

		if err := c.fn(s, args[1:1+len(c.args)]); err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
		args = args[1+len(c.args):]
	}
	return nil
}

func parsePin(arg string) (uint32, error) {
	pin, err := strconv.ParseUint(arg, 0, 32)
	return uint32(pin), err
}

func (s *session) chips(args []string) error {
	for _, c := range s.subsystem.Chips() {
		b, _, err := s.engine.Resolve(c.Base)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "%-8s %3d-%-3d %s\n", c.Label, c.Base, c.Base+c.Lines-1, b.Chip().Topology())
	}
	return nil
}

func (s *session) lines(args []string) error {
	for _, c := range s.subsystem.Chips() {
		for pin := c.Base; pin < c.Base+c.Lines; pin++ {
			info, err := s.subsystem.GetLineInfo(pin)
			if err != nil {
				return err
			}
			level, err := s.engine.Get(pin)
			if err != nil {
				return err
			}

			dir := "in"
			if info.Flags&gpiolib.LineIsOut != 0 {
				dir = "out"
			}
			fmt.Fprintf(s.out, "%3d %-8s %2d %-3s %d %s\n", pin, info.Chip, info.LineOffset, dir, boolToInt(level), info.Consumer)
		}
	}
	return nil
}

func (s *session) open(pin uint32, label string, flags gpiolib.RequestFlag, value bool) error {
	lines, err := s.subsystem.OpenLine(label, flags, gpiolib.LineRequest{Pin: pin, DefaultValue: value})
	if err != nil {
		return err
	}
	s.lines[pin] = lines
	return nil
}

func (s *session) request(args []string) error {
	pin, err := parsePin(args[0])
	if err != nil {
		return err
	}
	return s.open(pin, args[1], 0, false)
}

func (s *session) drive(args []string) error {
	pin, err := parsePin(args[0])
	if err != nil {
		return err
	}
	value, err := strconv.ParseBool(args[2])
	if err != nil {
		return err
	}
	return s.open(pin, args[1], gpiolib.RequestOutput, value)
}

func (s *session) free(args []string) error {
	pin, err := parsePin(args[0])
	if err != nil {
		return err
	}

	lines, found := s.lines[pin]
	if !found {
		return gpio.ErrorNotOwned
	}
	delete(s.lines, pin)
	return lines.Close()
}

func (s *session) in(args []string) error {
	pin, err := parsePin(args[0])
	if err != nil {
		return err
	}
	return s.engine.DirectionInput(pin)
}

func (s *session) outDir(args []string) error {
	pin, err := parsePin(args[0])
	if err != nil {
		return err
	}
	return s.engine.DirectionOutput(pin)
}

func (s *session) set(args []string) error {
	pin, err := parsePin(args[0])
	if err != nil {
		return err
	}
	value, err := strconv.ParseBool(args[1])
	if err != nil {
		return err
	}

	if lines, found := s.lines[pin]; found {
		return lines.SetValue(value)
	}
	return s.engine.Set(pin, value)
}

func (s *session) get(args []string) error {
	pin, err := parsePin(args[0])
	if err != nil {
		return err
	}
	level, err := s.engine.Get(pin)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%d\n", boolToInt(level))
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
