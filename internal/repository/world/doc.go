// Package world implements persistence for the host glove collection.
//
// The FileRepository stores and loads the collection as YAML on disk and
// exposes a Repository interface that the host world depends on.
package world
