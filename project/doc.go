// Package project locates and reads the package manifest (package.json) of the library being
// worked on, resolves paths relative to it, validates package names and loads the optional
// .librarian.toml configuration.
package project
