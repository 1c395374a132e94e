// Package storage delivers rendered reports to their destination.
//
// A report goes either to a file, which is overwritten with exactly the report text,
// or to a stream such as stdout, where it is followed by a newline. Paths starting
// with ~/ are expanded to the user's home directory and missing parent directories
// are created.
package storage
