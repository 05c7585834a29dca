package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"domainbloom/internal/bitmap"
	"domainbloom/internal/common"
	"domainbloom/internal/filter"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run dedupes the inputs named in args onto stdout. Diagnostics and errors
// go to stderr so stdout holds only keys. Returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("dedupe", flag.ContinueOnError)
	flags.SetOutput(stderr)
	quiet := flags.Bool("q", false, "suppress the fill report")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: dedupe [-q] [file ...]\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}

	common.LoggingEnabled = !*quiet
	common.LogOutput = stderr

	start := time.Now()
	f := filter.NewBloomFilter()
	out := bufio.NewWriter(stdout)

	var total dedupeStats
	inputs := flags.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	for _, path := range inputs {
		stats, err := dedupeFile(path, stdin, out, f)
		total.Read += stats.Read
		total.Printed += stats.Printed
		if err != nil {
			out.Flush()
			fmt.Fprintf(stderr, "failed to dedupe %s: %v\n", path, err)
			return 1
		}
	}

	if err := out.Flush(); err != nil {
		fmt.Fprintf(stderr, "failed to flush output: %v\n", err)
		return 1
	}

	common.LogDuration(start, "read %d keys, printed %d", total.Read, total.Printed)
	common.LogFill("filter", f.TrueBits(), bitmap.NumBits)
	common.Logf("estimated false positive rate: %.6f\n", filter.EstimatedFalsePositiveRate(f))
	return 0
}

// dedupeFile runs dedupe over the named file, or stdin for "-".
func dedupeFile(path string, stdin io.Reader, out io.Writer, f filter.Filter) (dedupeStats, error) {
	if path == "-" {
		return dedupe(stdin, out, f)
	}

	file, err := os.Open(path)
	if err != nil {
		return dedupeStats{}, fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	return dedupe(file, out, f)
}
