package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/snail/snailfish"
)

// defaultInput is read when no file is named on the command line.
const defaultInput = "inputs/18.txt"

func inputPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultInput
}

func readNumbers(path string) ([]*snailfish.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	trees, err := snailfish.ParseAll(f, path)
	if err != nil {
		return nil, err
	}
	if len(trees) == 0 {
		return nil, fmt.Errorf("%s: %w", path, snailfish.ErrEmptyInput)
	}
	log.Infof("read %d numbers from %s", len(trees), path)
	return trees, nil
}
