// Package masterdata stores the lists that populate the sale entry form:
// card types, payment machines, vendors and phone models. The document is a
// plain JSON file next to the database.
package masterdata

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Document is the master data file.
type Document struct {
	CardTypes []string `json:"card_types"`
	Machines  []string `json:"machines"`
	Vendors   []string `json:"vendors"`
	Models    []string `json:"models"`
}

// Default returns the built-in master data.
func Default() Document {
	return Document{
		CardTypes: []string{"SBI", "ICICI", "HDFC", "KOTAK", "AXIS", "IDFC", "INDUSIND", "RBL", "YES", "BOB"},
		Machines:  []string{"PINELAB", "BENOW", "PAYTM", "RAZORPAY", "INNOVITI"},
		Vendors: []string{
			"LIMPTON", "R G CELLULLARS", "VELOCITY", "LETS CONNECT", "THE PRIME",
			"LOGICA", "BHAJANLAL", "NATIONAL RADIO PRODUCT", "DISHA", "D P ELECTRONICS",
		},
		Models: []string{"NOTHING", "VIVO", "CMF", "MOTOROLA", "OPPO", "REDMI", "APPLE", "SAMSUNG", "ONEPLUS", "REALME"},
	}
}

// Normalize trims entries and drops blanks and repeats, keeping order.
func (d Document) Normalize() Document {
	return Document{
		CardTypes: clean(d.CardTypes),
		Machines:  clean(d.Machines),
		Vendors:   clean(d.Vendors),
		Models:    clean(d.Models),
	}
}

func clean(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

// Version returns a content digest of the document, suitable as an ETag.
func (d Document) Version() string {
	data, _ := json.Marshal(d.Normalize())
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:16])
}

// Load reads the document at path. If the file does not exist, the
// defaults are written there and returned.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		doc := Default()
		if err := Save(path, doc); err != nil {
			return Document{}, err
		}
		return doc, nil
	}
	if err != nil {
		return Document{}, fmt.Errorf("reading master data: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parsing master data %s: %w", path, err)
	}
	return doc.Normalize(), nil
}

// Save writes the document to path atomically.
func Save(path string, doc Document) error {
	data, err := json.MarshalIndent(doc.Normalize(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding master data: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".masterdata-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("writing master data: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing master data: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing master data: %w", err)
	}
	return nil
}
