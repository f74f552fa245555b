package gpiochip

import (
	"errors"
	"testing"
)

func testTable() *Table {
	return NewTable("test",
		Chip{Label: "NQ", Base: 1, Count: 7, Dir: 0x10, Data: 0x14},
		Chip{Label: "A", Base: 40, Count: 8, Dir: 0x20, Data: 0x24, PinState: 0x28, Set: 0x28, Clear: 0x2c},
		Chip{Label: "B", Base: 48, Count: 32, Dir: 0x30, Data: 0x34, PinState: 0x38},
	)
}

func TestTopology(t *testing.T) {
	table := testTable()

	expected := []Topology{TopologyBasic, TopologyFast, TopologyPinState}
	for i, e := range expected {
		c := table.Chip(i)
		if c.Topology() != e {
			t.Errorf("%s: topology %s, expected %s", c.Label, c.Topology(), e)
		}
	}

	nq := table.Chip(0)
	if nq.Input() != nq.Data {
		t.Error("Basic chip does not read the data register")
	}
	b := table.Chip(2)
	if b.Input() != b.PinState {
		t.Error("Pin state chip does not read the pin state register")
	}
}

func TestResolve(t *testing.T) {
	table := testTable()

	for pin := uint32(0); pin < 100; pin++ {
		index, bit, ok := table.Resolve(pin)

		owners := 0
		for i := 0; i < table.Len(); i++ {
			c := table.Chip(i)
			if c.Owns(pin) {
				owners++
				if !ok || index != i || bit != pin-c.Base || bit >= c.Count {
					t.Errorf("Pin %d resolved to %d/%d", pin, index, bit)
				}
			}
		}

		if owners == 0 && ok {
			t.Errorf("Pin %d resolved without owner", pin)
		}
		if owners > 1 {
			t.Errorf("Pin %d has %d owners", pin, owners)
		}
	}
}

func TestTableIsCopied(t *testing.T) {
	chips := []Chip{{Label: "X", Base: 0, Count: 1, Dir: 4, Data: 8}}
	table := NewTable("copy", chips...)
	chips[0].Base = 100

	if table.Chip(0).Base != 0 {
		t.Error("Table shares the descriptor slice")
	}

	out := table.Chips()
	out[0].Base = 100
	if table.Chip(0).Base != 0 {
		t.Error("Chips returned the internal slice")
	}
}

func TestPins(t *testing.T) {
	if testTable().Pins() != 47 {
		t.Error("Wrong pin count")
	}
}

func TestValidate(t *testing.T) {
	if err := testTable().Validate(); err != nil {
		t.Error("Valid table rejected", err)
	}

	cases := []struct {
		chips []Chip
		err   error
	}{
		{[]Chip{{Label: "X", Base: 0, Count: 0, Dir: 4, Data: 8}}, ErrorBadCount},
		{[]Chip{{Label: "X", Base: 0, Count: 33, Dir: 4, Data: 8}}, ErrorBadCount},
		{[]Chip{{Label: "X", Base: 0xfffffff0, Count: 32, Dir: 4, Data: 8}}, ErrorBadCount},
		{[]Chip{{Label: "X", Base: 0, Count: 8, Data: 8}}, ErrorMissingRegister},
		{[]Chip{{Label: "X", Base: 0, Count: 8, Dir: 4, Data: 8, Set: 12}}, ErrorHalfFast},
		{[]Chip{
			{Label: "X", Base: 0, Count: 8, Dir: 4, Data: 8},
			{Label: "X", Base: 8, Count: 8, Dir: 12, Data: 16},
		}, ErrorDuplicateLabel},
		{[]Chip{
			{Label: "X", Base: 0, Count: 8, Dir: 4, Data: 8},
			{Label: "Y", Base: 7, Count: 8, Dir: 12, Data: 16},
		}, ErrorOverlap},
		{[]Chip{
			{Label: "Y", Base: 7, Count: 8, Dir: 12, Data: 16},
			{Label: "X", Base: 0, Count: 8, Dir: 4, Data: 8},
		}, ErrorOverlap},
	}

	for i, c := range cases {
		err := NewTable("bad", c.chips...).Validate()
		if !errors.Is(err, c.err) {
			t.Errorf("Case %d: got %v, expected %v", i, err, c.err)
		}
	}
}
