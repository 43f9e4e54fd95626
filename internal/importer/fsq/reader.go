package fsq

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/parquet-go/parquet-go"
)

const readBatch = 1000

// Reader streams places from parquet files in name order.
type Reader struct {
	files []string
}

// NewReader accepts a single parquet file or a directory of *.parquet files.
func NewReader(path string) (*Reader, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return &Reader{files: []string{path}}, nil
	}

	files, err := filepath.Glob(filepath.Join(path, "*.parquet"))
	if err != nil {
		return nil, fmt.Errorf("glob parquet files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no parquet files found in %s", path)
	}
	sort.Strings(files)
	return &Reader{files: files}, nil
}

// Files returns the files the reader will scan.
func (r *Reader) Files() []string { return r.files }

// PlaceFunc receives each row. Returning false stops the scan.
type PlaceFunc func(row *PlaceRow) bool

// ReadPlaces calls fn for every row until fn returns false, the files are
// exhausted or ctx is done.
func (r *Reader) ReadPlaces(ctx context.Context, fn PlaceFunc) error {
	for _, path := range r.files {
		more, err := readFile(ctx, path, fn)
		if err != nil {
			return fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}
		if !more {
			return nil
		}
	}
	return nil
}

// placeColumns holds leaf column indexes; -1 marks a column the file lacks.
type placeColumns struct {
	fsqPlaceID int
	name       int
	address    int
	locality   int
	region     int
	country    int
	website    int
	tel        int
	catLabels  int
	dateClosed int
}

func resolvePlaceColumns(pf *parquet.File) (placeColumns, error) {
	cols := placeColumns{
		fsqPlaceID: -1, name: -1, address: -1, locality: -1, region: -1,
		country: -1, website: -1, tel: -1, catLabels: -1, dateClosed: -1,
	}
	for i, path := range pf.Schema().Columns() {
		if len(path) == 0 {
			continue
		}
		switch path[0] {
		case "fsq_place_id":
			cols.fsqPlaceID = i
		case "name":
			cols.name = i
		case "address":
			cols.address = i
		case "locality":
			cols.locality = i
		case "region":
			cols.region = i
		case "country":
			cols.country = i
		case "website":
			cols.website = i
		case "tel":
			cols.tel = i
		case "fsq_category_labels":
			cols.catLabels = i
		case "date_closed":
			cols.dateClosed = i
		}
	}
	if cols.fsqPlaceID < 0 || cols.name < 0 {
		return cols, errors.New("fsq_place_id and name columns are required")
	}
	return cols, nil
}

func readFile(ctx context.Context, path string, fn PlaceFunc) (bool, error) {
	h, err := openParquet(path)
	if err != nil {
		return false, err
	}
	defer h.Close()

	cols, err := resolvePlaceColumns(h.pf)
	if err != nil {
		return false, err
	}

	for _, rg := range h.pf.RowGroups() {
		more, err := readRowGroup(ctx, rg, cols, fn)
		if err != nil || !more {
			return false, err
		}
	}
	return true, nil
}

func readRowGroup(ctx context.Context, rg parquet.RowGroup, cols placeColumns, fn PlaceFunc) (bool, error) {
	rows := parquet.NewRowGroupReader(rg)
	buf := make([]parquet.Row, readBatch)

	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		n, readErr := rows.ReadRows(buf)
		for i := 0; i < n; i++ {
			place := rowToPlace(buf[i], cols)
			if !fn(&place) {
				return false, nil
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return true, nil
			}
			return false, fmt.Errorf("read rows: %w", readErr)
		}
	}
}

func rowToPlace(row parquet.Row, cols placeColumns) PlaceRow {
	var p PlaceRow
	optional := func(v parquet.Value) *string {
		if v.IsNull() {
			return nil
		}
		s := v.String()
		return &s
	}

	for _, v := range row {
		switch v.Column() {
		case cols.fsqPlaceID:
			p.FSQPlaceID = v.String()
		case cols.name:
			p.Name = v.String()
		case cols.address:
			p.Address = optional(v)
		case cols.locality:
			p.Locality = optional(v)
		case cols.region:
			p.Region = optional(v)
		case cols.country:
			p.Country = optional(v)
		case cols.website:
			p.Website = optional(v)
		case cols.tel:
			p.Tel = optional(v)
		case cols.catLabels:
			if !v.IsNull() {
				p.FSQCategoryLabel = append(p.FSQCategoryLabel, v.String())
			}
		case cols.dateClosed:
			p.DateClosed = optional(v)
		}
	}
	return p
}

type parquetHandle struct {
	pf   *parquet.File
	file *os.File
}

func (h *parquetHandle) Close() {
	_ = h.file.Close()
}

func openParquet(path string) (*parquetHandle, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("stat: %w", err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("open parquet: %w", err)
	}
	return &parquetHandle{pf: pf, file: f}, nil
}
