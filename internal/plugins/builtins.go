// Package plugins catalogs the builtin plugins shipped with extendy.
package plugins

import (
	"github.com/alexisbeaulieu97/extendy/internal/plugin"
	clockplugin "github.com/alexisbeaulieu97/extendy/internal/plugins/clock"
	gitinfoplugin "github.com/alexisbeaulieu97/extendy/internal/plugins/gitinfo"
	sysinfoplugin "github.com/alexisbeaulieu97/extendy/internal/plugins/sysinfo"
)

// All returns every builtin plugin in catalog order.
func All() []plugin.Plugin {
	return []plugin.Plugin{
		clockplugin.New(),
		gitinfoplugin.New(),
		sysinfoplugin.New(),
	}
}

// Lookup finds a builtin plugin by its metadata name.
func Lookup(name string) (plugin.Plugin, bool) {
	for _, p := range All() {
		if p.Metadata().Name == name {
			return p, true
		}
	}
	return nil, false
}
