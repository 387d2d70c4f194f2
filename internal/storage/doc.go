// Package storage manages the output file of a run.
//
// The storage package resolves the user-supplied output path (expanding ~ and
// making it absolute) and writes the file only once its content is ready. Data
// is written to a temporary file in the same directory and renamed into place,
// so a failed run never leaves a truncated or partial output file behind.
package storage
