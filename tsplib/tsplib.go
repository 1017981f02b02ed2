// Package tsplib reads Euclidean TSP instances in the TSPLIB text layout:
//
//	NAME: berlin52
//	TYPE: TSP
//	COMMENT: 52 locations in Berlin (Groetschel)
//	DIMENSION: 52
//	EDGE_WEIGHT_TYPE: EUC_2D
//	NODE_COORD_SECTION
//	1 565.0 575.0
//	2 25.0 185.0
//	...
//	EOF
//
// Header keys are case-insensitive and may be written "KEY: value" or
// "KEY : value". Coordinate rows carry a 1-based id followed by x and y;
// rows are taken in file order and renumbered 0..n-1. Reading stops at "EOF"
// or at the first blank line after the coordinate section.
//
// All errors wrap tsp.ErrData so callers can treat them as input errors.
package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/ilstsp/tsp"
)

// Known header keys.
const (
	KeyName           = "NAME"
	KeyType           = "TYPE"
	KeyComment        = "COMMENT"
	KeyDimension      = "DIMENSION"
	KeyEdgeWeightType = "EDGE_WEIGHT_TYPE"

	sectionCoords = "NODE_COORD_SECTION"
	markerEOF     = "EOF"
)

// Instance is a parsed problem file.
type Instance struct {
	Name           string
	Comment        string
	Dimension      int
	EdgeWeightType string

	// Meta keeps every header entry, keys upper-cased.
	Meta map[string]string

	Cities []tsp.City
}

// Load opens and parses path. An instance without NAME is labelled with the
// file base name without extension.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening problem file: %w", err)
	}
	defer f.Close()

	inst, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if inst.Name == "" {
		inst.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return inst, nil
}

// Parse reads one instance from r.
func Parse(r io.Reader) (*Instance, error) {
	inst := &Instance{Meta: make(map[string]string)}
	sc := bufio.NewScanner(r)

	var (
		line     string
		lineNo   int
		inCoords bool
	)
	for sc.Scan() {
		lineNo++
		line = strings.TrimSpace(sc.Text())

		if inCoords {
			if line == "" || strings.EqualFold(line, markerEOF) {
				break
			}
			c, err := parseCoord(line, len(inst.Cities))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			inst.Cities = append(inst.Cities, c)
			continue
		}

		if line == "" {
			continue
		}
		if strings.EqualFold(line, markerEOF) {
			break
		}
		if strings.EqualFold(line, sectionCoords) {
			inCoords = true
			continue
		}
		if err := inst.setHeader(line); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading problem: %w", err)
	}

	if err := inst.validate(); err != nil {
		return nil, err
	}

	return inst, nil
}

// setHeader stores one "KEY: value" line.
func (inst *Instance) setHeader(line string) error {
	key, value, ok := strings.Cut(line, ":")
	if !ok {
		return fmt.Errorf("%w: expected \"KEY: value\", got %q", tsp.ErrData, line)
	}
	key = strings.ToUpper(strings.TrimSpace(key))
	value = strings.TrimSpace(value)
	inst.Meta[key] = value

	switch key {
	case KeyName:
		inst.Name = value
	case KeyComment:
		inst.Comment = value
	case KeyEdgeWeightType:
		inst.EdgeWeightType = strings.ToUpper(value)
	case KeyDimension:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: bad DIMENSION %q", tsp.ErrData, value)
		}
		inst.Dimension = n
	}

	return nil
}

// parseCoord reads "id x y"; the id is informational only.
func parseCoord(line string, index int) (tsp.City, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return tsp.City{}, fmt.Errorf("%w: expected \"id x y\", got %q", tsp.ErrData, line)
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return tsp.City{}, fmt.Errorf("%w: bad x coordinate %q", tsp.ErrData, fields[1])
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return tsp.City{}, fmt.Errorf("%w: bad y coordinate %q", tsp.ErrData, fields[2])
	}

	return tsp.City{Index: index, X: x, Y: y}, nil
}

func (inst *Instance) validate() error {
	if len(inst.Cities) == 0 {
		return fmt.Errorf("%w: no %s entries", tsp.ErrEmptyProblem, sectionCoords)
	}
	if inst.Dimension > 0 && inst.Dimension != len(inst.Cities) {
		return fmt.Errorf("%w: DIMENSION %d but %d coordinates", tsp.ErrData, inst.Dimension, len(inst.Cities))
	}
	switch inst.EdgeWeightType {
	case "", "EUC_2D":
	default:
		return fmt.Errorf("%w: unsupported EDGE_WEIGHT_TYPE %q", tsp.ErrData, inst.EdgeWeightType)
	}

	return nil
}

// Problem builds the solver input, labelled with the instance name.
func (inst *Instance) Problem() (*tsp.Problem, error) {
	return tsp.NewProblem(inst.Name, inst.Cities)
}
