// Package seed supplies the student entries a roster starts from, either the
// built-in sample or a YAML file.
package seed

import (
	"errors"
	"fmt"
	"io"
	"lab-funding/internal/models"
	"os"

	"gopkg.in/yaml.v3"
)

type file struct {
	Students []models.Entry `yaml:"students"`
}

// Sample is the lab's 2024 intake.
func Sample() []models.Entry {
	return []models.Entry{
		{Name: "Bing", FundingPerYear: 30, YearsNeeded: 1},
		{Name: "Jesse", FundingPerYear: 30, YearsNeeded: 0},
		{Name: "Jamal", FundingPerYear: 30, YearsNeeded: 3},
	}
}

// Load decodes a single students document. An empty document yields no
// entries; a stream holding more than one document is rejected.
func Load(r io.Reader) ([]models.Entry, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return []models.Entry{}, nil
		}
		return nil, fmt.Errorf("decode students: %w", err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("decode students: %w", err)
		}
		return nil, errors.New("decode students: expected a single YAML document")
	}
	if f.Students == nil {
		return []models.Entry{}, nil
	}
	return f.Students, nil
}

// LoadFile reads entries from path, or returns Sample when path is empty.
func LoadFile(path string) ([]models.Entry, error) {
	if path == "" {
		return Sample(), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open students file: %w", err)
	}
	defer fh.Close()

	entries, err := Load(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}
