// Command export writes the test case scenes to testdata/testcases.json,
// and optionally one YAML scene file per test case.
// Run from the pixdraw module root directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/pixdraw/scenefile"
	"seehuhn.de/go/pixdraw/testcases"
)

func main() {
	jsonPath := flag.String("o", "testdata/testcases.json", "JSON output file")
	yamlDir := flag.String("yaml", "", "if set, also write one YAML scene per test case into this directory")
	flag.Parse()

	var out struct {
		TestCases []scenefile.Document `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			doc := tc.Doc
			doc.Name = category + "_" + tc.Name
			out.TestCases = append(out.TestCases, doc)

			if *yamlDir != "" {
				if err := writeYAML(*yamlDir, &doc); err != nil {
					panic(fmt.Errorf("%s: %w", doc.Name, err))
				}
			}
		}
	}

	if err := os.MkdirAll(filepath.Dir(*jsonPath), 0755); err != nil {
		panic(err)
	}
	f, err := os.Create(*jsonPath)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

func writeYAML(dir string, doc *scenefile.Document) (err error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(dir, doc.Name+".yaml"))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return scenefile.Save(f, doc)
}
