// Copyright 2022  Il Sub Bang
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command h3cli is a thin driver over the h3 package, one subcommand
// per operation, in the shape of original_source's testapps drivers
// (one binary, one H3 operation, args in, result on stdout) but built
// as idiomatic Go flag subcommands instead of a C argv switch.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/h3-geo/h3"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "geo-to-cell":
		err = runGeoToCell(os.Args[2:])
	case "cell-to-geo":
		err = runCellToGeo(os.Args[2:])
	case "cell-to-boundary":
		err = runCellToBoundary(os.Args[2:])
	case "compact":
		err = runCompact(os.Args[2:])
	case "uncompact":
		err = runUncompact(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		slog.Error("h3cli command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: h3cli <command> [flags]

commands:
  geo-to-cell       -lat <deg> -lon <deg> -res <0-15>
  cell-to-geo       -cell <hex>
  cell-to-boundary  -cell <hex>
  compact           -cells <hex,hex,...>
  uncompact         -cells <hex,hex,...> -res <0-15>`)
}

func runGeoToCell(args []string) error {
	fs := flag.NewFlagSet("geo-to-cell", flag.ExitOnError)
	lat := fs.Float64("lat", 0, "latitude in degrees")
	lon := fs.Float64("lon", 0, "longitude in degrees")
	res := fs.Int("res", 9, "H3 resolution (0-15)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	g := h3.GeoCoord{}
	g.SetGeoDegs(*lat, *lon)
	cell := h3.GeoToH3(&g, *res)
	if cell == h3.H3_NULL {
		return fmt.Errorf("geo-to-cell: invalid resolution %d", *res)
	}
	fmt.Println(h3.H3ToString(cell))
	return nil
}

func runCellToGeo(args []string) error {
	fs := flag.NewFlagSet("cell-to-geo", flag.ExitOnError)
	cellStr := fs.String("cell", "", "H3 cell index in hex")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cell := h3.StringToH3(*cellStr)
	if !h3.H3IsValid(cell) {
		return fmt.Errorf("cell-to-geo: %q is not a valid cell index", *cellStr)
	}

	var g h3.GeoCoord
	h3.H3ToGeo(cell, &g)
	fmt.Printf("%.6f %.6f\n", h3.RadsToDegs(g.Lat()), h3.RadsToDegs(g.Lon()))
	return nil
}

func runCellToBoundary(args []string) error {
	fs := flag.NewFlagSet("cell-to-boundary", flag.ExitOnError)
	cellStr := fs.String("cell", "", "H3 cell index in hex")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cell := h3.StringToH3(*cellStr)
	if !h3.H3IsValid(cell) {
		return fmt.Errorf("cell-to-boundary: %q is not a valid cell index", *cellStr)
	}

	var gb h3.GeoBoundary
	h3.H3ToGeoBoundary(cell, &gb)
	for _, v := range gb.Verts() {
		fmt.Printf("%.6f %.6f\n", h3.RadsToDegs(v.Lat()), h3.RadsToDegs(v.Lon()))
	}
	return nil
}

func runCompact(args []string) error {
	fs := flag.NewFlagSet("compact", flag.ExitOnError)
	cellsStr := fs.String("cells", "", "comma-separated H3 cell indexes in hex")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cells, err := parseCellList(*cellsStr)
	if err != nil {
		return fmt.Errorf("compact: %w", err)
	}

	compacted, err := h3.Compact(cells)
	if err != nil {
		return fmt.Errorf("compact: %w", err)
	}
	printCellList(compacted)
	return nil
}

func runUncompact(args []string) error {
	fs := flag.NewFlagSet("uncompact", flag.ExitOnError)
	cellsStr := fs.String("cells", "", "comma-separated H3 cell indexes in hex")
	res := fs.Int("res", 9, "target resolution (0-15)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cells, err := parseCellList(*cellsStr)
	if err != nil {
		return fmt.Errorf("uncompact: %w", err)
	}

	uncompacted, err := h3.Uncompact(cells, *res)
	if err != nil {
		return fmt.Errorf("uncompact: %w", err)
	}
	printCellList(uncompacted)
	return nil
}

func parseCellList(csv string) ([]h3.H3Index, error) {
	if strings.TrimSpace(csv) == "" {
		return nil, fmt.Errorf("no cells given")
	}
	parts := strings.Split(csv, ",")
	cells := make([]h3.H3Index, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		cell := h3.StringToH3(p)
		if !h3.H3IsValid(cell) {
			return nil, fmt.Errorf("%q is not a valid cell index", p)
		}
		cells = append(cells, cell)
	}
	return cells, nil
}

func printCellList(cells []h3.H3Index) {
	for _, c := range cells {
		fmt.Println(h3.H3ToString(c))
	}
}
