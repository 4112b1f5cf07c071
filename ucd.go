// Package ucd provides a local mirror of the Unicode Character Database
// (UCD) and parsers for its data files. It downloads the published UCD
// archive into a local data directory, parses files such as UnicodeData.txt
// and Blocks.txt into typed records, and can index the parsed data for
// querying from the command line.
//
// This package contains domain types, interfaces and pure parsing logic
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., http/, zip/,
// sqlite/).
package ucd
