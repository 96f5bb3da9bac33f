package source

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"albumdupes/internal/catalog"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDetect(t *testing.T) {
	tests := map[string]string{
		"albums.txt":  FormatText,
		"albums":      FormatText,
		"albums.CSV":  FormatCSV,
		"albums.xlsx": FormatXLSX,
		"albums.xlsm": FormatXLSX,
		"albums.list": FormatText,
	}
	for path, want := range tests {
		if got := Detect(path); got != want {
			t.Errorf("Detect(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestReadTextKeepsPhysicalLineNumbers(t *testing.T) {
	records, err := ReadText(strings.NewReader("\ufeffQueen - Jazz\n\n   \r\n  Beatles - Help!  \r\nNoSeparator\n"))
	if err != nil {
		t.Fatalf("ReadText: %v", err)
	}
	want := []catalog.Record{
		{LineNumber: 1, RawText: "Queen - Jazz"},
		{LineNumber: 4, RawText: "Beatles - Help!"},
		{LineNumber: 5, RawText: "NoSeparator"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Fatalf("records = %+v, want %+v", records, want)
	}
}

func TestReadTextEmpty(t *testing.T) {
	records, err := ReadText(strings.NewReader("\n\n"))
	if err != nil {
		t.Fatalf("ReadText: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %+v", records)
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.txt"), Options{})
	if err == nil {
		t.Fatal("expected error for missing input")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected wrapped ErrNotExist, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "open input:") {
		t.Fatalf("unexpected error text %q", err)
	}
}

func TestReadCSVJoinsColumns(t *testing.T) {
	path := writeFile(t, "albums.csv", "\ufeffArtist,Album,Year\n"+
		"Queen,Jazz,1978\n"+
		"\n"+
		"\"Crosby, Stills & Nash\",\"Daylight\nAgain\",1982\n"+
		"Prince,,1999\n"+
		",,\n"+
		"Beatles, Help!,1965\n")

	records, err := Read(path, Options{ArtistColumn: 1, AlbumColumn: 2})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := []catalog.Record{
		{LineNumber: 1, RawText: "Artist - Album"},
		{LineNumber: 2, RawText: "Queen - Jazz"},
		{LineNumber: 4, RawText: "Crosby, Stills & Nash - Daylight\nAgain"},
		{LineNumber: 6, RawText: "Prince"},
		{LineNumber: 8, RawText: "Beatles - Help!"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Fatalf("records = %+v, want %+v", records, want)
	}
	if !catalog.IsHeader(records[0].RawText) {
		t.Fatalf("expected CSV header row to be recognised as a header")
	}
}

func TestReadCSVSingleColumn(t *testing.T) {
	path := writeFile(t, "albums.csv", "Queen - Jazz,ignored\nBeatles - Help!\n")
	records, err := Read(path, Options{ArtistColumn: 1, AlbumColumn: 0})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(records) != 2 || records[0].RawText != "Queen - Jazz" || records[1].RawText != "Beatles - Help!" {
		t.Fatalf("unexpected records %+v", records)
	}
}

func TestReadCSVSwappedColumns(t *testing.T) {
	path := writeFile(t, "albums.csv", "Jazz,Queen\n")
	records, err := Read(path, Options{ArtistColumn: 2, AlbumColumn: 1})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(records) != 1 || records[0].RawText != "Queen - Jazz" {
		t.Fatalf("unexpected records %+v", records)
	}
}

func writeWorkbook(t *testing.T, sheet string, rows [][]string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if sheet != "Sheet1" {
		if _, err := f.NewSheet(sheet); err != nil {
			t.Fatalf("new sheet: %v", err)
		}
	}
	for i, row := range rows {
		for j, value := range row {
			if value == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue(sheet, cellName, value); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "albums.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestReadXLSXFirstSheet(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]string{
		{"Artist", "Album"},
		{"Björk", "Homogenic"},
		{"", ""},
		{"Björk", "Homogénic"},
	})

	records, err := Read(path, Options{ArtistColumn: 1, AlbumColumn: 2})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := []catalog.Record{
		{LineNumber: 1, RawText: "Artist - Album"},
		{LineNumber: 2, RawText: "Björk - Homogenic"},
		{LineNumber: 4, RawText: "Björk - Homogénic"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Fatalf("records = %+v, want %+v", records, want)
	}
}

func TestReadXLSXNamedSheet(t *testing.T) {
	path := writeWorkbook(t, "Library", [][]string{{"Queen", "Jazz"}})

	records, err := Read(path, Options{Sheet: "Library", ArtistColumn: 1, AlbumColumn: 2})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(records) != 1 || records[0].RawText != "Queen - Jazz" {
		t.Fatalf("unexpected records %+v", records)
	}

	if _, err := Read(path, Options{Sheet: "Missing", ArtistColumn: 1, AlbumColumn: 2}); err == nil {
		t.Fatal("expected error for missing sheet")
	}
}
