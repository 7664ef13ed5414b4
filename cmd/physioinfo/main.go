// Command physioinfo documents the physio filter and indicator catalog and
// checks parameter files against it.
//
// Usage:
//
//	physioinfo [flags] [algorithm ...]
//
// Without arguments it documents every algorithm.
//
// Examples:
//
//	physioinfo -list
//	physioinfo IIRFilter PowerInBand
//	physioinfo -params lowpass.yaml IIRFilter
//	physioinfo -params lowpass.yaml -rate 256 IIRFilter
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-physio/physio/filter"
	"github.com/cwbudde/algo-physio/physio/indicator"
	"github.com/cwbudde/algo-physio/physio/param"
)

type algorithm struct {
	name   string
	family string
	params param.Set
}

func catalog() []algorithm {
	var out []algorithm
	for _, n := range filter.Names() {
		set, _ := filter.Descriptors(n)
		out = append(out, algorithm{name: n, family: "filter", params: set})
	}
	for _, n := range indicator.Names() {
		set, _ := indicator.Descriptors(n)
		out = append(out, algorithm{name: n, family: "indicator", params: set})
	}
	return out
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fset := flag.NewFlagSet("physioinfo", flag.ContinueOnError)
	fset.SetOutput(stderr)
	list := fset.Bool("list", false, "list algorithm names")
	paramsFile := fset.String("params", "", "YAML file of parameters to resolve against each named algorithm")
	rate := fset.Float64("rate", 0, "sample rate in Hz; with -params, also designs IIRFilter for this rate")
	fset.Usage = func() {
		fmt.Fprintf(stderr, "Usage: physioinfo [flags] [algorithm ...]\n\n")
		fmt.Fprintf(stderr, "Documents physio filters and indicators and resolves parameter files.\n")
		fmt.Fprintf(stderr, "Without arguments, documents every algorithm.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fset.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  physioinfo -list\n")
		fmt.Fprintf(stderr, "  physioinfo IIRFilter\n")
		fmt.Fprintf(stderr, "  physioinfo -params lowpass.yaml -rate 256 IIRFilter\n")
	}
	if err := fset.Parse(args); err != nil {
		return 2
	}

	all := catalog()
	if *list {
		printList(stdout, all)
		return 0
	}

	selected, ok := selectAlgorithms(stderr, all, fset.Args())
	if !ok {
		return 1
	}

	if *paramsFile == "" {
		printDocs(stdout, stderr, selected)
		return 0
	}

	raw, err := readParams(*paramsFile)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	status := 0
	for _, a := range selected {
		if !printResolved(stdout, a, raw, *rate) {
			status = 1
		}
	}
	return status
}

func printList(w io.Writer, all []algorithm) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, a := range all {
		fmt.Fprintf(tw, "%s\t%s\n", a.name, a.family)
	}
	_ = tw.Flush()
}

func selectAlgorithms(stderr io.Writer, all []algorithm, names []string) ([]algorithm, bool) {
	if len(names) == 0 {
		return all, true
	}

	byName := make(map[string]algorithm, len(all))
	for _, a := range all {
		byName[strings.ToLower(a.name)] = a
	}

	var out []algorithm
	for _, n := range names {
		a, ok := byName[strings.ToLower(strings.TrimSpace(n))]
		if !ok {
			fmt.Fprintf(stderr, "error: unknown algorithm %q (use -list to see available)\n", n)
			return nil, false
		}
		out = append(out, a)
	}
	return out, true
}

func printDocs(w, stderr io.Writer, algos []algorithm) {
	for i, a := range algos {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%s)\n", a.name, a.family)

		docs := param.Describe(a.params)
		if len(docs) == 0 {
			fmt.Fprintln(w, "  no parameters")
			continue
		}

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "  Param\tLevel\tKind\tDefault\tConditional\tDescription\n")
		for _, d := range docs {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%t\t%s\n",
				d.Name, d.Level, kinds(d.Kinds), formatValue(d.Default), d.Conditional, d.Description)
		}
		if err := tw.Flush(); err != nil {
			fmt.Fprintf(stderr, "error: failed to flush output: %v\n", err)
			return
		}
	}
}

func readParams(path string) (param.Values, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	raw := param.Values{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return raw, nil
}

// printResolved resolves raw for a and prints the result. It reports
// whether resolution succeeded.
func printResolved(w io.Writer, a algorithm, raw param.Values, rate float64) bool {
	resolved, err := param.Resolve(a.name, a.params, raw)
	if err != nil {
		fmt.Fprintf(w, "%s: %v\n", a.name, err)
		return false
	}

	fmt.Fprintf(w, "%s: ok\n", a.name)
	names := make([]string, 0, len(resolved))
	for n := range resolved {
		names = append(names, n)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, n := range names {
		fmt.Fprintf(tw, "  %s\t%s\n", n, formatValue(resolved[n]))
	}
	_ = tw.Flush()

	if a.name == filter.NameIIR && rate > 0 {
		printDesign(w, raw, rate)
	}
	return true
}

func printDesign(w io.Writer, raw param.Values, rate float64) {
	f, err := filter.New(filter.NameIIR, raw)
	if err != nil {
		fmt.Fprintf(w, "  design: %v\n", err)
		return
	}

	coeffs, err := f.(*filter.IIR).Coefficients(rate)
	if err != nil {
		fmt.Fprintf(w, "  design at %g Hz: %v\n", rate, err)
		return
	}
	fmt.Fprintf(w, "  design at %g Hz: %d second-order sections\n", rate, len(coeffs))
}

func kinds(ks []param.Kind) string {
	s := make([]string, len(ks))
	for i, k := range ks {
		s[i] = k.String()
	}
	return strings.Join(s, "|")
}

func formatValue(v any) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(v)
}
