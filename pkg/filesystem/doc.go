// Package filesystem provides the filesystem used to write generated projects.
//
// Every implementation is backed by afero, so production code writes through
// afero.OsFs while tests use an in-memory afero.MemMapFs with the same API.
package filesystem
