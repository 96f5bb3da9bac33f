// Package main hosts the albumdupes CLI.
//
// The root command reads an album list, scans it for likely duplicates within
// each artist, and prints the report. Configuration resolution and logger
// setup live here; matching and rendering live in the internal packages so
// commands stay thin.
package main
