package series

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
)

// Load reads an asset's day-partitioned sample arrays from a zip archive.
// Each entry is a JSON array of prices for one day; null elements are gap
// markers. Entries are consumed in ascending (lexicographic) name order.
// Any read or parse failure is returned as an error: the simulation cannot
// run on partial price data, so callers treat this as fatal.
func Load(symbol string, kind Kind, path string) (*Asset, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open series archive %q: %w", path, err)
	}
	defer zr.Close()

	files := make([]*zip.File, len(zr.File))
	copy(files, zr.File)
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	days := make([][]float64, 0, len(files))
	for _, f := range files {
		day, err := readDay(f)
		if err != nil {
			return nil, fmt.Errorf("series archive %q entry %q: %w", path, f.Name, err)
		}
		days = append(days, day)
	}

	return &Asset{Symbol: symbol, Kind: kind, Days: days}, nil
}

func readDay(f *zip.File) ([]float64, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}

	var raw []*float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	day := make([]float64, len(raw))
	for i, p := range raw {
		if p == nil {
			day[i] = math.NaN()
		} else {
			day[i] = *p
		}
	}
	return day, nil
}

// WriteArchive writes day arrays in the format Load expects. NaN samples
// are stored as JSON nulls. Used by the series generator and tests.
func WriteArchive(path string, days [][]float64) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create series archive %q: %w", path, err)
	}

	zw := zip.NewWriter(out)
	for i, day := range days {
		w, err := zw.Create(fmt.Sprintf("day-%04d.json", i))
		if err != nil {
			out.Close()
			return err
		}

		enc := make([]*float64, len(day))
		for j := range day {
			if !math.IsNaN(day[j]) {
				v := day[j]
				enc[j] = &v
			}
		}
		data, err := json.Marshal(enc)
		if err != nil {
			out.Close()
			return err
		}
		if _, err := w.Write(data); err != nil {
			out.Close()
			return err
		}
	}

	if err := zw.Close(); err != nil {
		out.Close()
		return fmt.Errorf("finalize series archive %q: %w", path, err)
	}
	return out.Close()
}
