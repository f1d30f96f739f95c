// Package timestamp parses the family of ISO-like timestamp layouts the
// pipeline accepts and formats the canonical one it emits.
//
// Dispatch is purely structural: the index of the 'T' (or space)
// separator, the presence of ':' and '-', and the total string length
// select the layout. The accepted layouts are:
//
//	YYYY-MM-DDTHH:MM:SS     2015-12-19T10:29:29
//	YYYY-MM-DDTHH:MM        2015-12-19T10:29
//	YYYY-DDDTHH:MM          2015-353T10:29
//	YYYY-DDDTHH:MM:SS       2015-353T10:29:29
//	YYYYMMDDTHHMMSS         20151219T102929
//	YYYYDDDTHHMM            2015353T1029
//	YYYYDDDTHHMMSS[.fff]    2015353T102929.198
//	YYYY-MM-DD HH:MM:SS[.f] 2015-12-19 10:29:29.198776
//
// A string matching none of these shapes is a ParseError; a string
// matching a shape but carrying an impossible field value (month 13,
// day-of-year 366 in a non-leap year, hour 25) is a RangeError. There
// are no silent no-result paths.
//
// All values are UTC. The canonical output layout is
// YYYY-MM-DDTHH:MM:SS.
package timestamp
