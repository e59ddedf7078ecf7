package track

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadTable loads a gate table from a file.
// Each line holds "x y rotation" separated by spaces or commas. Blank lines
// and lines starting with '#' are skipped.
func LoadTable(filename string) (Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open gate file: %w", err)
	}
	defer file.Close()

	table, err := ReadTable(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return table, nil
}

// ReadTable parses a gate table in the LoadTable format
func ReadTable(r io.Reader) (Table, error) {
	var table Table

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: want 3 values, got %d in '%s'", lineNo, len(fields), line)
		}

		var values [3]float64
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid value '%s': %w", lineNo, f, err)
			}
			values[i] = v
		}

		table = append(table, Placement{X: values[0], Y: values[1], Rotation: values[2]})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading gate table: %w", err)
	}
	if len(table) == 0 {
		return nil, ErrEmptyTable
	}

	return table, nil
}
