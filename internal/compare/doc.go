// Package compare walks two CPU trace logs in lockstep and reports where
// their decoded state diverges.
//
// File 1 is decoded with the reference dialect and File 2 with the
// candidate dialect. Lines are paired by position: line n of one file is
// only ever compared with line n of the other, and the walk stops as soon
// as either file runs out. Any read or decode failure ends the walk, since
// a skipped line would put every later pair out of step.
//
// Divergences yields every mismatching pair lazily; First stops at the
// first one, which is what the command line tool reports.
package compare
