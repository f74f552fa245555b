package mcfchips

import (
	"testing"

	"github.com/BertoldVdb/mcfgpio/gpio"
	"github.com/BertoldVdb/mcfgpio/gpiochip"
)

func TestVariantsValid(t *testing.T) {
	for _, name := range Names() {
		table, ok := Lookup(name)
		if !ok {
			t.Fatal("Lookup failed for", name)
		}
		if table.Name() != name {
			t.Error("Table name does not match variant", name)
		}
		if err := table.Validate(); err != nil {
			t.Error(name, err)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("m68000"); ok {
		t.Error("Unknown variant found")
	}
}

func TestM523xLayout(t *testing.T) {
	index, bit, ok := M523x.Resolve(42)
	if !ok || M523x.Chip(index).Label != "A" || bit != 2 {
		t.Error("Pin 42 is not bit 2 of port A")
	}

	nq := M523x.Chip(0)
	if nq.Label != "NQ" || nq.Base != 1 || nq.Count != 7 || nq.Topology() != gpiochip.TopologyPinState {
		t.Error("NQ descriptor is wrong", nq)
	}

	for i := 1; i < M523x.Len(); i++ {
		c := M523x.Chip(i)
		if c.Topology() != gpiochip.TopologyFast {
			t.Error("Port is not fast", c.Label)
		}
	}

	if _, _, ok := M523x.Resolve(0); ok {
		t.Error("Pin 0 is not wired on the m523x")
	}
	if _, _, ok := M523x.Resolve(48); ok {
		t.Error("Pin 48 is not wired on the m523x")
	}
}

func TestM5272Basic(t *testing.T) {
	for _, c := range M5272.Chips() {
		if c.Topology() != gpiochip.TopologyBasic {
			t.Error("Port has extra registers", c.Label)
		}
	}
}

func TestM528xLayout(t *testing.T) {
	expected := []struct {
		label string
		base  uint32
		count uint32
	}{
		{"NQ", 1, 7}, {"TA", 8, 4}, {"TB", 16, 4}, {"QA", 24, 4}, {"QB", 32, 4},
		{"A", 40, 8}, {"B", 48, 8}, {"C", 56, 8}, {"D", 64, 8}, {"E", 72, 8},
		{"F", 80, 8}, {"G", 88, 8}, {"H", 96, 8}, {"J", 104, 8}, {"DD", 112, 8},
		{"EH", 120, 8}, {"EL", 128, 8}, {"AS", 136, 6}, {"QS", 144, 7}, {"SD", 152, 6},
		{"TC", 160, 4}, {"TD", 168, 4}, {"UA", 176, 4},
	}

	if M528x.Len() != len(expected) {
		t.Fatal("Wrong number of chips", M528x.Len())
	}

	for i, e := range expected {
		c := M528x.Chip(i)
		if c.Label != e.label || c.Base != e.base || c.Count != e.count {
			t.Errorf("Chip %d is %s, expected %s", i, c.String(), e.label)
		}

		topology := gpiochip.TopologyFast
		if i < 5 {
			topology = gpiochip.TopologyPinState
		}
		if c.Topology() != topology {
			t.Errorf("%s has topology %s", c.Label, c.Topology())
		}
	}

	/* TA, TB, QA and QB read the pins back through the data register */
	for i := 1; i < 5; i++ {
		c := M528x.Chip(i)
		if c.PinState != c.Data {
			t.Error("Pin state is not read from the data register", c.Label)
		}
	}
}

func TestSetGetAllVariants(t *testing.T) {
	for _, name := range Names() {
		table, _ := Lookup(name)
		e := gpio.New(gpio.NewSim(table), table, nil)

		for _, c := range table.Chips() {
			for pin := c.Base; pin < c.Base+c.Count; pin++ {
				if e.DirectionOutput(pin) != nil {
					t.Fatalf("%s: pin %d not found", name, pin)
				}

				for _, value := range []bool{true, false, true, true, false} {
					e.Set(pin, value)
					if v, _ := e.Get(pin); v != value {
						t.Errorf("%s: pin %d read %v after writing %v", name, pin, v, value)
					}
				}
			}
		}
	}
}
