package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/wcbridge/internal/config"
	"github.com/vango-dev/wcbridge/internal/errors"
	"github.com/vango-dev/wcbridge/pkg/host"
)

func serveCmd() *cobra.Command {
	var (
		manifest string
		addr     string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the development host",
		Long: `Start an HTTP server that defines the manifest's elements in a live
document and lets you drive instances:

  POST   /api/elements                       create {tag, attributes}
  GET    /api/elements/{id}                  inspect
  PUT    /api/elements/{id}/attributes/{n}   set {value}
  DELETE /api/elements/{id}/attributes/{n}   remove
  POST   /api/elements/{id}/detach|attach    move out of / into the page
  POST   /api/elements/{id}/call/{prop}      invoke a handler {args}
  GET    /ws/events                          dispatched events
  GET    /metrics                            Prometheus metrics

Examples:
  wcbridge serve
  wcbridge serve --addr :8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := config.LoadFile(manifest)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = m.Server.Address()
			}
			scope, err := functionScope(m)
			if err != nil {
				return err
			}
			h, err := host.New(host.Options{Manifest: m, Scope: scope})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			success(cmd, "Serving %d element(s) on http://%s", len(m.Elements), addr)
			if err := h.ListenAndServe(ctx, addr); err != nil {
				return errors.New("E104").WithDetail(addr).Wrap(err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifest, "manifest", "m", config.ManifestFileName, "Manifest path")
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from manifest)")
	return cmd
}
