package main

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/wcbridge/internal/config"
	"github.com/vango-dev/wcbridge/internal/demo"
	"github.com/vango-dev/wcbridge/internal/errors"
	"github.com/vango-dev/wcbridge/pkg/dom"
	"github.com/vango-dev/wcbridge/pkg/markup"
	"github.com/vango-dev/wcbridge/pkg/publish"
)

func renderCmd() *cobra.Command {
	var (
		manifest string
		file     string
		out      string
	)

	cmd := &cobra.Command{
		Use:   "render [markup]",
		Short: "Render a host page with its custom elements",
		Long: `Parse a host page, upgrade the custom elements the manifest defines and
write the page with each element's shadow root inlined as a declarative
<template shadowrootmode="open">.

The page is read from the argument, --file, or standard input. The
output goes to --out, the manifest's publish destination, or standard
output. Destinations may be file paths or s3://bucket/key URLs.

Examples:
  wcbridge render '<x-counter count="3"></x-counter>'
  wcbridge render --file index.html --out dist/index.html
  wcbridge render --file index.html --out s3://my-bucket/index.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := config.LoadFile(manifest)
			if err != nil {
				return err
			}
			src, err := readMarkup(cmd, file, args)
			if err != nil {
				return err
			}
			page, err := renderPage(m, src)
			if err != nil {
				return err
			}

			dest := out
			if dest == "" {
				dest = m.Publish.Destination
			}
			if dest == "" || dest == "-" {
				_, err := io.WriteString(cmd.OutOrStdout(), page)
				return err
			}
			p, err := publish.Open(dest)
			if err != nil {
				return err
			}
			location, err := p.Publish(cmd.Context(), []byte(page))
			if err != nil {
				return err
			}
			success(cmd, "Published %s", location)
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifest, "manifest", "m", config.ManifestFileName, "Manifest path")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the page from a file")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Destination: file path, - or s3://bucket/key")
	return cmd
}

func readMarkup(cmd *cobra.Command, file string, args []string) (string, error) {
	switch {
	case len(args) == 1:
		return args[0], nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", errors.New("E160").WithDetail(file).Wrap(err)
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", errors.New("E160").Wrap(err)
		}
		return string(data), nil
	}
}

// renderPage defines the manifest's elements in a fresh document, loads
// src into it and serializes the result.
func renderPage(m *config.Manifest, src string) (string, error) {
	scope, err := functionScope(m)
	if err != nil {
		return "", err
	}
	doc := dom.NewDocument()
	if _, err := demo.Default().Install(doc.Registry(), m, demo.InstallOptions{Scope: scope}); err != nil {
		return "", err
	}
	page, err := markup.Parse(strings.NewReader(src), doc)
	if err != nil {
		return "", errors.New("E160").Wrap(err)
	}
	return page.String()
}
