package main

import (
	"github.com/dop251/goja"

	"github.com/vango-dev/wcbridge/internal/config"
	"github.com/vango-dev/wcbridge/pkg/channel"
	"github.com/vango-dev/wcbridge/pkg/jsscope"
)

// functionScope evaluates the manifest's scripts into one runtime. Names
// registered on channel.Window shadow script globals.
func functionScope(m *config.Manifest) (channel.Scope, error) {
	paths := m.ScriptPaths()
	if len(paths) == 0 {
		return channel.DefaultScope(), nil
	}
	js := jsscope.New(goja.New())
	for _, p := range paths {
		if err := js.RunFile(p); err != nil {
			return nil, err
		}
	}
	return channel.Chain(channel.Window, js, channel.GlobalThis), nil
}
