// Package issue defines the vocabulary of validation failures: structured,
// path-qualified Issue records, the Code taxonomy, and the aggregate Error
// raised by a failed parse.
//
// Issues are plain data. The validation traversal never panics and never
// returns early with an error; it accumulates issues and the caller decides,
// at the outermost entry point, whether to surface them as a value or as an
// error.
package issue
