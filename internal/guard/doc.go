// Package guard implements the UAPI/libc coordination decision table: given
// which libc headers have already been seen in a translation unit (observed
// through their sentinel macros), it decides for every conflicting definition
// group whether the kernel-side header must emit its definition or suppress
// it in favor of the libc one.
//
// Resolution is a pure function of the probe set. The package never performs
// I/O and never fails: every probe combination maps to a fully determined
// flag set, and an unrecognized environment falls through to "emit
// everything", which is the safe default.
package guard
