// Package history persists analysis runs in a local SQLite database.
//
// Every completed run is stored with its counts, ranked words, and report
// location so past analyses can be listed, inspected, and compared without
// re-reading the source text. The store keeps a schema version guard and
// refuses databases written by incompatible versions.
package history
