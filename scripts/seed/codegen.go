package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
)

type unit struct {
	Name  string
	Worth string
}

type seed struct {
	Code  string
	Name  string
	Units []unit
}

func main() {
	// Open the input file and read its contents
	data, err := readCsvFile(filepath.Join("scripts", "seed", "seed_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %v", err))
	}

	// Group the CSV records into denomination sets
	seeds, err := convertDataToSeeds(data)
	if err != nil {
		panic(fmt.Errorf("error converting CSV records: %v", err))
	}

	// Generate Go code from the sets using a template
	code, err := generateGoCode(filepath.Join("scripts", "seed", "seed_data.tmpl"), seeds)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	// Write the generated Go code to a file
	err = writeToFile("seed_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	// Open the CSV file
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	// Read the CSV records
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = 4
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	recs, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	return recs, nil
}

// convertDataToSeeds groups records by currency code.
// Sets are sorted by code; units keep the order of the file.
func convertDataToSeeds(data [][]string) ([]seed, error) {
	index := map[string]int{}
	seeds := []seed{}
	for _, rec := range data {
		code := rec[0]
		if code == "XXX" {
			return nil, fmt.Errorf("code %q is reserved for the empty set", code)
		}
		i, ok := index[code]
		if !ok {
			i = len(seeds)
			index[code] = i
			seeds = append(seeds, seed{Code: code, Name: rec[1]})
		}
		for _, u := range seeds[i].Units {
			if u.Name == rec[2] {
				return nil, fmt.Errorf("%v: duplicate unit %q", code, rec[2])
			}
		}
		seeds[i].Units = append(seeds[i].Units, unit{Name: rec[2], Worth: rec[3]})
	}
	sort.Slice(seeds, func(i, j int) bool {
		return seeds[i].Code < seeds[j].Code
	})
	return seeds, nil
}

func generateGoCode(filename string, seeds []seed) ([]byte, error) {
	// Create a new template object from the template file
	fmap := template.FuncMap{
		"lower": strings.ToLower,
		"inc":   func(i int) int { return i + 1 },
	}
	tmpl, err := template.New(filepath.Base(filename)).Funcs(fmap).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	// Execute the template
	var output bytes.Buffer
	err = tmpl.Execute(&output, seeds)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	formatted, err := format.Source(output.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}

func writeToFile(filename string, content []byte) error {
	// Write the content to a file
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	err = writer.Flush()
	if err != nil {
		return err
	}
	return nil
}
