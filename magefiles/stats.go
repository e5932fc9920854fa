// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build mage

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// skipDirs are never counted by Stats.
var skipDirs = map[string]bool{
	".git":      true,
	"_examples": true,
	"magefiles": true,
	"vendor":    true,
	binaryDir:   true,
}

// Stats prints one JSON line with Go lines of code per top-level
// directory (production and test) and the word count of the repo's
// markdown files.
func Stats() error {
	prod := map[string]int{}
	test := map[string]int{}
	words := 0

	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		switch {
		case strings.HasSuffix(path, "_test.go"):
			test[topDir(path)] += countLines(data)
		case strings.HasSuffix(path, ".go"):
			prod[topDir(path)] += countLines(data)
		case strings.HasSuffix(path, ".md"):
			words += len(bytes.Fields(data))
		}
		return nil
	})
	if err != nil {
		return err
	}

	line, err := json.Marshal(struct {
		Prod  map[string]int `json:"go_loc_prod"`
		Test  map[string]int `json:"go_loc_test"`
		Total int            `json:"go_loc"`
		Words int            `json:"doc_wc"`
	}{prod, test, sum(prod) + sum(test), words})
	if err != nil {
		return err
	}
	fmt.Println(string(line))
	return nil
}

// topDir returns the first path element, or "." for files at the root.
func topDir(path string) string {
	if i := strings.IndexRune(path, filepath.Separator); i >= 0 {
		return path[:i]
	}
	return "."
}

func countLines(data []byte) int {
	n := bytes.Count(data, []byte{'\n'})
	if len(data) > 0 && data[len(data)-1] != '\n' {
		n++
	}
	return n
}

func sum(m map[string]int) int {
	total := 0
	for _, n := range m {
		total += n
	}
	return total
}
