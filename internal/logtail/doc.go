// Package logtail reads the end of the client's log file for display.
//
// Read returns raw trailing lines using a ring buffer, so memory stays
// bounded however large the file grows. Tail decodes those lines as zerolog
// JSON into Entry values, and Entry.Format renders one as a compact line:
//
//	10:04:31 WRN store call failed elapsed=10.0021 id=7 op=get
//
// Lines that are not JSON (a stray panic trace, for example) are passed
// through unchanged.
package logtail
