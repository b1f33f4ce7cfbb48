package dataset

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

// Load reads a key file written in the format Write produces: a count
// header line followed by one key per line. Malformed lines are skipped
// with a warning rather than aborting the load, and a final count mismatch
// is reported without discarding the keys that did parse.
func Load(path string) ([]int, error) {
	keys, expected, err := load(path)
	if err != nil {
		return nil, err
	}
	if len(keys) != expected {
		log.Printf("dataset: %s: header says %d keys, parsed %d\n", path, expected, len(keys))
	}
	return keys, nil
}

// Validate checks that path is a well-formed key file without keeping the
// keys around. Unlike Load it treats a count mismatch as an error.
func Validate(path string) error {
	keys, expected, err := load(path)
	if err != nil {
		return err
	}
	if len(keys) != expected {
		return fmt.Errorf("dataset: %s: header says %d keys, parsed %d", path, expected, len(keys))
	}
	return nil
}

// load parses the file and returns the keys alongside the header count so
// the callers can decide how strict to be about a mismatch.
func load(path string) ([]int, int, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer fd.Close()
	sc := bufio.NewScanner(fd)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, 0, err
		}
		return nil, 0, fmt.Errorf("dataset: %s: missing count header", path)
	}
	expected, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return nil, 0, fmt.Errorf("dataset: %s: bad count header: %w", path, err)
	}
	keys := make([]int, 0, expected)
	line := 1
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		key, err := strconv.Atoi(text)
		if err != nil {
			log.Printf("dataset: %s: skipping malformed line %d: %q\n", path, line, text)
			continue
		}
		keys = append(keys, key)
	}
	if err := sc.Err(); err != nil {
		return nil, 0, err
	}
	return keys, expected, nil
}
