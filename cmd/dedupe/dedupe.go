package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"domainbloom/internal/filter"
)

// dedupeStats counts keys consumed and emitted by dedupe.
type dedupeStats struct {
	Read    int
	Printed int
}

// dedupe copies each key from r to w unless f reports it might have been
// seen already. Every key read is added to f.
func dedupe(r io.Reader, w io.Writer, f filter.Filter) (dedupeStats, error) {
	var stats dedupeStats

	scanner := bufio.NewScanner(r)
	// Keys have no length limit; grow past the default 64 KiB token size.
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for scanner.Scan() {
		key := strings.TrimSpace(scanner.Text())
		if key == "" {
			continue
		}
		stats.Read++

		if f.MightContain(key) {
			continue
		}
		f.Add(key)

		if _, err := fmt.Fprintln(w, key); err != nil {
			return stats, fmt.Errorf("write %q: %w", key, err)
		}
		stats.Printed++
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("read input: %w", err)
	}

	return stats, nil
}
