// Package scaffold renders templates with answer placeholders and writes them into a project.
//
// Placeholders are written as {{ name }} and are replaced with the string form of the answer
// called name. Each [Template] carries its own write policy: a plain template never replaces
// an existing file, Overwrite always replaces it, and Update merges named blocks delimited by
// "librarian:begin <block>" and "librarian:end <block>" lines into the existing file.
package scaffold
