package dataset

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
)

// Generate returns n pseudo-random keys in [min, max]. The same seed always
// yields the same sequence, so suite runs are repeatable.
func Generate(n, min, max int, seed int64) []int {
	if n <= 0 || max < min {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))
	keys := make([]int, n)
	span := max - min + 1
	for i := range keys {
		keys[i] = min + rng.Intn(span)
	}
	return keys
}

// Write saves keys to path in the key-file format: the first line holds the
// key count, every following line holds one key.
func Write(path string, keys []int) error {
	fd, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fd.Close()
	w := bufio.NewWriter(fd)
	if _, err := fmt.Fprintln(w, len(keys)); err != nil {
		return err
	}
	for _, key := range keys {
		if _, err := fmt.Fprintln(w, key); err != nil {
			return err
		}
	}
	return w.Flush()
}
