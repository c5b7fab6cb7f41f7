// Command varcheck runs the variance inference pass over a set of
// built-in fixture programs and prints a summary of the results.
//
// Usage:
//
//	varcheck [--cache path] [--config path]
//
// --cache persists each scenario's solved variances, under the unit name
// "varcheck", to a sqlite-backed unitcache.Cache at the given path.
// varcheck only writes to the cache; it never reads entries back.
//
// --config loads a variance.yaml (internal/passconfig) that overrides the
// solver's iteration cap and toggles the rustc_variance debug hook.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/tamewild/variance/internal/config"
	"github.com/tamewild/variance/internal/fixture"
	"github.com/tamewild/variance/internal/passconfig"
	"github.com/tamewild/variance/internal/typeir"
	"github.com/tamewild/variance/internal/unitcache"
	"github.com/tamewild/variance/internal/variance"
)

func main() {
	cachePath := ""
	configPath := ""
	for i := 1; i < len(os.Args); i++ {
		if os.Args[i] == "--cache" && i+1 < len(os.Args) {
			cachePath = os.Args[i+1]
			i++
			continue
		}
		if os.Args[i] == "--config" && i+1 < len(os.Args) {
			configPath = os.Args[i+1]
			i++
			continue
		}
		if os.Args[i] == "-help" || os.Args[i] == "--help" {
			fmt.Fprintln(os.Stderr, "Usage: varcheck [--cache path] [--config path]")
			return
		}
		if os.Args[i] == "-version" || os.Args[i] == "--version" {
			fmt.Println("varcheck", config.Version)
			return
		}
	}

	opts := variance.Options{}
	if configPath != "" {
		cfg, err := passconfig.Load(configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "varcheck:", err)
			os.Exit(1)
		}
		opts.MaxIterations = cfg.Solver.MaxIterations
		opts.EnableDebugHook = cfg.Diagnostics.EnableDebugHook
	}

	var cache *unitcache.Cache
	if cachePath != "" {
		var err error
		cache, err = unitcache.Open(cachePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "varcheck:", err)
			os.Exit(1)
		}
		defer cache.Close()
	}

	start := time.Now()
	scenarios := fixture.Scenarios()
	items := 0
	for _, s := range scenarios {
		vm := typeir.NewMemoryVarianceMap()
		if err := variance.InferVariance(s.Context, s.Context, vm, opts); err != nil {
			fmt.Fprintf(os.Stderr, "varcheck: %s: %v\n", s.Name, err)
			os.Exit(1)
		}
		iv, ok := vm.Get(s.Item)
		if !ok {
			fmt.Fprintf(os.Stderr, "varcheck: %s: no entry published for %q\n", s.Name, s.Item)
			os.Exit(1)
		}
		items++
		fmt.Printf("%-8s %s\n", s.Name, describe(iv))
		for _, report := range s.Context.Reports() {
			fmt.Printf("%-8s %s\n", s.Name, report.Message)
		}

		if cache != nil {
			if err := cache.Put("varcheck", s.Item, iv); err != nil {
				fmt.Fprintln(os.Stderr, "varcheck:", err)
				os.Exit(1)
			}
		}
	}

	elapsed := time.Since(start)
	fmt.Printf("%s items checked in %s\n", humanize.Comma(int64(items)), elapsed)
}

func describe(iv typeir.ItemVariances) string {
	out := ""
	if iv.SelfParam != nil {
		out += "self=" + iv.SelfParam.String() + " "
	}
	out += "types="
	for i, v := range iv.TypeParams {
		if i > 0 {
			out += ","
		}
		out += v.String()
	}
	out += " regions="
	for i, v := range iv.RegionParams {
		if i > 0 {
			out += ","
		}
		out += v.String()
	}
	return out
}
