// Package query parses and evaluates catalog queries.
//
// A query is a whitespace-separated list of clauses of the form field:value, for example
//
//	title:My_Song author:Band duration:2min45s
//
// The recognized fields are path, size, title, author, duration, album, year and genre.
// Values are compared exactly: no case folding, trimming or partial matching. size and year
// values must be unsigned integers; duration values use the forms accepted by ParseDuration.
//
// Malformed clauses and values that do not parse never fail a query. Each one is reported as a
// diagnostic on the engine's logger and contributes no match.
package query
