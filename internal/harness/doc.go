// Package harness runs YAML-defined conformance scenarios against the
// timestamp parser.
//
// A scenario is a table of input strings with the canonical form,
// epoch seconds and MJD they must convert to, or the error kind they
// must fail with. Keeping the table in YAML rather than in Go keeps
// the accepted-layout contract reviewable by the acquisition-system
// operators, who do not read Go.
package harness
