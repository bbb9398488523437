package scan

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/Jehops/portfmt/internal/lexer"
	"github.com/Jehops/portfmt/internal/token"
)

// Report is every worker's Result, sorted by Origin for reproducible
// output regardless of worker count or file-system iteration order
// (spec.md §5, property 6).
type Report struct {
	Results []Result
	Errors  map[string]error
}

// WorkerCount returns the number of concurrent workers Run spawns for
// numOrigins origins: min(runtime.NumCPU(), numOrigins), floored at 1.
// Callers that need to size a resource limit around Run's concurrency
// (internal/sandbox's rlimit, in particular, since each worker holds at
// most one input file open at a time) call this instead of
// recomputing runtime.NumCPU() themselves, so the two stay in sync.
func WorkerCount(numOrigins int) int {
	w := runtime.NumCPU()
	if w < 1 {
		w = 1
	}
	if w > numOrigins {
		w = numOrigins
	}
	if w < 1 {
		w = 1
	}
	return w
}

// Run reads and parses the Makefile for each of origins under
// portsdir, with W = WorkerCount(len(origins)) workers each processing
// a disjoint slice of the origin list. Every worker owns an independent
// *ast.Document; nothing is shared but the read-only rules catalogue
// internal/lexer and internal/edit consult.
func Run(portsdir string, origins []string) Report {
	if len(origins) == 0 {
		return Report{Errors: map[string]error{}}
	}
	w := WorkerCount(len(origins))

	jobs := make(chan string)
	results := make(chan Result)
	errs := make(chan struct {
		origin string
		err    error
	})

	var wg sync.WaitGroup
	wg.Add(w)
	for i := 0; i < w; i++ {
		go func() {
			defer wg.Done()
			for origin := range jobs {
				r, err := scanOne(portsdir, origin)
				if err != nil {
					errs <- struct {
						origin string
						err    error
					}{origin, err}
					continue
				}
				results <- r
			}
		}()
	}

	go func() {
		for _, o := range origins {
			jobs <- o
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
		close(errs)
	}()

	report := Report{Errors: make(map[string]error)}
	resultsOpen, errsOpen := true, true
	for resultsOpen || errsOpen {
		select {
		case r, ok := <-results:
			if !ok {
				resultsOpen = false
				continue
			}
			report.Results = append(report.Results, r)
		case e, ok := <-errs:
			if !ok {
				errsOpen = false
				continue
			}
			report.Errors[e.origin] = e.err
		}
	}

	sort.Slice(report.Results, func(i, j int) bool {
		return report.Results[i].Origin < report.Results[j].Origin
	})

	return report
}

func scanOne(portsdir, origin string) (Result, error) {
	path := filepath.Join(portsdir, origin, "Makefile")
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}
	doc, err := lexer.Lex(path, data, token.DefaultSettings())
	if err != nil {
		return Result{}, err
	}
	return Detect(origin, doc)
}
