// Package platform provides the filesystem primitives the hub writes through:
// permission handling that is a no-op on Windows and an atomic
// write-then-rename so a registry or README is never left half written.
package platform
