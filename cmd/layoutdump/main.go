// pdflayout - page layout analysis for extracted PDF text
// Copyright (C) 2026 The pdflayout Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command layoutdump runs the layout analyzer over one or more JSON
// scene files and prints the resulting reading-order tree to stdout.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/go-pdflayout/pdflayout/layout"
	"github.com/go-pdflayout/pdflayout/layoutio"
)

func main() {
	recurseFigures := flag.Bool("recurse-figures", false, "also analyze each figure's own children")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Println("usage: layoutdump [-recurse-figures] scene.json ...")
		os.Exit(1)
	}

	results := dumpAll(args, *recurseFigures)

	failed := false
	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.path, r.err)
			failed = true
			continue
		}
		fmt.Printf("=== %s ===\n", r.path)
		fmt.Print(r.dump)
	}
	if failed {
		os.Exit(1)
	}
}

type result struct {
	path string
	dump string
	err  error
}

// dumpAll analyzes each scene path concurrently, using a worker pool
// sized to the host's logical CPU count: every layout.Analyze call is
// page-local and shares no state with any other, so the work fans out
// without coordination. Results are returned in the same order as
// paths regardless of completion order.
func dumpAll(paths []string, recurseFigures bool) []result {
	results := make([]result, len(paths))
	jobs := make(chan int)

	workers := runtime.GOMAXPROCS(0)
	if workers > len(paths) {
		workers = len(paths)
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = dumpOne(paths[i], recurseFigures)
			}
		}()
	}
	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

func dumpOne(path string, recurseFigures bool) result {
	f, err := os.Open(path)
	if err != nil {
		return result{path: path, err: err}
	}
	defer f.Close()

	scene, err := layoutio.Load(f)
	if err != nil {
		return result{path: path, err: err}
	}

	if err := layout.Analyze(scene.Page, scene.Params); err != nil {
		return result{path: path, err: err}
	}

	if recurseFigures {
		for _, child := range scene.Page.Children {
			if fig, ok := child.(*layout.Figure); ok {
				if err := layout.AnalyzeFigure(fig, scene.Params); err != nil {
					return result{path: path, err: err}
				}
			}
		}
	}

	var sb strings.Builder
	layout.Dump(&sb, scene.Page, 0)
	return result{path: path, dump: sb.String()}
}
