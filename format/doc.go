// Package format provides the small, pure formatting helpers used by the roster screens:
// phone numbers, calendar dates, times of day and document names.
//
// None of the helpers fail loudly. Invalid input yields a zero result (an empty string, false),
// which callers render as "no value".
package format
