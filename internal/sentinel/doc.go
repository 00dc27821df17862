// Package sentinel observes which macros are defined in a translation unit
// and maps them to the probes guard resolution runs on. The observation side
// is deliberately dumb: a macro set, a reader for compiler macro dumps
// (cc -dM -E output), and a lookup against the known sentinel macros.
package sentinel
