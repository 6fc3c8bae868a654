// mkfixture creates a small representative hospital directory fixture from a
// larger one, converting between formats by file extension.
// Rows are sampled round-robin across hospital types so every tier present
// in the input appears in the output, in original file order.
// Usage: go run ./cmd/mkfixture --in hospitals.xlsx --out testdata/hospitals-small.parquet --rows 50
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/gyeh/carecost/internal/directory"
	"github.com/gyeh/carecost/internal/model"
	"github.com/gyeh/carecost/internal/normalize"
)

func main() {
	in := flag.String("in", "hospitals.xlsx", "input directory file (.xlsx, .csv, .parquet)")
	out := flag.String("out", "testdata/hospitals-small.csv", "output directory file (.xlsx, .csv, .parquet)")
	maxRows := flag.Int("rows", 50, "max rows to output")
	checkOnly := flag.Bool("check", false, "only print stats, don't write")
	flag.Parse()

	r, err := directory.Open(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}
	all, err := directory.ReadAll(r)
	r.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "read: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Scanned %d rows\n", len(all))

	if *checkOnly {
		printTiers(all)
		return
	}

	selected := sample(all, *maxRows)
	if err := directory.WriteFile(*out, selected); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d rows to %s\n", len(selected), *out)
	printTiers(selected)
}

// sample picks up to n rows, taking one row per tier in turn, and returns
// them in their original order.
func sample(rows []model.HospitalRecord, n int) []model.HospitalRecord {
	if n >= len(rows) {
		return rows
	}

	buckets := make(map[string][]int)
	var order []string
	for i, r := range rows {
		key := normalize.Key(string(r.Tier))
		if _, ok := buckets[key]; !ok {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], i)
	}

	var picked []int
	for len(picked) < n {
		progressed := false
		for _, key := range order {
			if len(picked) >= n {
				break
			}
			if idx := buckets[key]; len(idx) > 0 {
				picked = append(picked, idx[0])
				buckets[key] = idx[1:]
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}

	sort.Ints(picked)
	out := make([]model.HospitalRecord, len(picked))
	for i, idx := range picked {
		out[i] = rows[idx]
	}
	return out
}

func printTiers(rows []model.HospitalRecord) {
	counts := make(map[string]int)
	for _, r := range rows {
		key := normalize.Key(string(r.Tier))
		if key == "" {
			key = "(none)"
		}
		counts[key]++
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Println("Hospital type distribution:")
	for _, k := range keys {
		fmt.Printf("  %-12s %d\n", k, counts[k])
	}
}
