// Package source reads album lists into ordered catalog records.
//
// Plain text lists yield one record per non-empty line. CSV and XLSX exports
// yield one record per row, joining the configured artist and album columns
// with the catalog separator. Every record carries the 1-based line (or row)
// number it came from so reports can point back at the input file.
package source
