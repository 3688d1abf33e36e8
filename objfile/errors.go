package objfile

import "errors"

// Sentinel errors, the stable failure surface of the OBJ collaborators.
var (
	// ErrOpenFailed indicates the file could not be opened.
	ErrOpenFailed = errors.New("objfile: open failed")

	// ErrReadFailed indicates the underlying stream failed mid-read.
	ErrReadFailed = errors.New("objfile: read failed")

	// ErrParse indicates a malformed record. Fatal for numeric fields;
	// unknown record kinds surface it through Decoder.Warnings instead.
	ErrParse = errors.New("objfile: parse error")

	// ErrVertexIndexNotFound indicates a face referencing a vertex that
	// does not exist.
	ErrVertexIndexNotFound = errors.New("objfile: face vertex index not found")
)
