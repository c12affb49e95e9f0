// Command decompose reads a textual interval exchange transformation and
// prints its decomposition into cylinders and Keane components.
//
// Input format (three or more lines):
//
//	<top labels, space separated>
//	<bottom labels, space separated>
//	<label> <positive integer length>
//	...one length line per label...
//
// Example, the rotation by 2/3 on [0,3):
//
//	a b
//	b a
//	a 2
//	b 1
//
// Usage:
//
//	go run ./cmd/decompose < iet.txt
//	go run ./cmd/decompose -steps 100 < iet.txt
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/flatsurfgo/intervalxt/decomposition"
	"github.com/flatsurfgo/intervalxt/label"
	"github.com/flatsurfgo/intervalxt/vectorlengths"
)

func main() {
	steps := flag.Int("steps", 0, "step budget for decompose; 0 means unbounded")
	flag.Parse()

	limit := decomposition.Unbounded
	if *steps > 0 {
		limit = *steps
	}

	if err := run(os.Stdin, os.Stdout, limit); err != nil {
		log.Fatalf("decompose: %v", err)
	}
}

func run(in io.Reader, out io.Writer, limit int) error {
	top, bottom, lengthByName, err := parse(in)
	if err != nil {
		return err
	}

	alloc := label.NewAllocator()
	byName := make(map[string]label.Label, len(lengthByName))
	labelOf := func(name string) label.Label {
		l, ok := byName[name]
		if !ok {
			l = alloc.New()
			byName[name] = l
		}

		return l
	}

	topLabels := make([]label.Label, len(top))
	for i, name := range top {
		topLabels[i] = labelOf(name)
	}
	bottomLabels := make([]label.Label, len(bottom))
	for i, name := range bottom {
		bottomLabels[i] = labelOf(name)
	}

	lengthByLabel := make(map[label.Label]int64, len(lengthByName))
	for name, n := range lengthByName {
		lengthByLabel[labelOf(name)] = n
	}

	d, err := decomposition.New(vectorlengths.NewRational(lengthByLabel), topLabels, bottomLabels)
	if err != nil {
		return err
	}

	nameOf := make(map[label.Label]string, len(byName))
	for name, l := range byName {
		nameOf[l] = name
	}

	complete := d.Decompose(nil, limit)
	for i, c := range d.Components() {
		fmt.Fprintf(out, "component %d: top %s, bottom %s\n", i, render(c.Top(), nameOf), render(c.Bottom(), nameOf))
		fmt.Fprintf(out, "  cylinder=%s withoutPeriodicTrajectory=%s\n", triState(c.Cylinder()), triState(c.WithoutPeriodicTrajectory()))
	}
	if !complete {
		fmt.Fprintln(out, "step budget exhausted before every component reached a classification")
	}

	return nil
}

func render(labels []label.Label, names map[label.Label]string) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = names[l]
	}

	return strings.Join(parts, " ")
}

func triState(v *bool) string {
	if v == nil {
		return "unknown"
	}

	return strconv.FormatBool(*v)
}

func parse(in io.Reader) (top, bottom []string, lengthByName map[string]int64, err error) {
	scanner := bufio.NewScanner(in)

	if !scanner.Scan() {
		return nil, nil, nil, fmt.Errorf("decompose: missing top permutation line")
	}
	top = strings.Fields(scanner.Text())

	if !scanner.Scan() {
		return nil, nil, nil, fmt.Errorf("decompose: missing bottom permutation line")
	}
	bottom = strings.Fields(scanner.Text())

	lengthByName = make(map[string]int64, len(top))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, nil, nil, fmt.Errorf("decompose: malformed length line %q", line)
		}
		n, convErr := strconv.ParseInt(fields[1], 10, 64)
		if convErr != nil {
			return nil, nil, nil, fmt.Errorf("decompose: bad length in %q: %w", line, convErr)
		}
		lengthByName[fields[0]] = n
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, nil, err
	}

	return top, bottom, lengthByName, nil
}
