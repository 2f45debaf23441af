package library

import (
	"bufio"
	"os"
	"strings"
	"testing"
	"testing/fstest"
)

// LibraryFSFromFile builds an in-memory library with an empty file for every non-blank line of the file at path
func LibraryFSFromFile(t *testing.T, path string) fstest.MapFS {
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("couldn't open file: %v", err)
	}
	defer f.Close()

	testfs := fstest.MapFS{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		testfs[line] = &fstest.MapFile{}
	}

	if err := scanner.Err(); err != nil {
		t.Fatal(err)
	}

	return testfs
}
