// Package codeformat renders one-time passcodes for human display and
// normalizes user-submitted codes back to their canonical digit form.
//
// A raw code is an integer in [0, 10^digits). Its canonical form is the
// decimal string zero-padded to exactly the configured digit count; the
// display form additionally groups digits for readability:
//
//	codeformat.Format(123456, 6) // "123 456"
//	codeformat.Format(12345, 6)  // "012 345"
//
// The default group size is 3 when the digit count divides evenly by 3 and
// 4 otherwise, so both common code lengths read naturally ("123 456",
// "1234 5678"). FormatGrouped accepts an explicit group size; zero or a
// negative size disables grouping entirely.
//
// Normalize strips all whitespace from a submitted code so that a displayed
// code pasted back with its grouping intact compares equal to the canonical
// form. The validation engines normalize both sides before comparing.
package codeformat
