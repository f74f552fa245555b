// Package mcfchips holds the GPIO descriptor tables of the supported
// ColdFire variants.
package mcfchips

import (
	"sort"

	"github.com/BertoldVdb/mcfgpio/gpiochip"
)

var variants = map[string]*gpiochip.Table{
	"m523x": M523x,
	"m5272": M5272,
	"m528x": M528x,
}

// Lookup returns the descriptor table of a variant
func Lookup(name string) (*gpiochip.Table, bool) {
	t, ok := variants[name]
	return t, ok
}

func Names() []string {
	var names []string
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
