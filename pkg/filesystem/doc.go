// Package filesystem provides filesystem implementations for gen-remix.
//
// Both the OS filesystem and the in-memory filesystem used by tests are
// afero filesystems behind the types.FS interface. WriteFileAtomic is the
// only way the generator writes its output.
package filesystem
