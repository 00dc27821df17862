// Package diag collects the tool-level diagnostics hdrguard produces while
// reading macro dumps and libc profiles. Guard resolution itself never
// diagnoses anything: the decision table has no failure path, so everything
// here is about the inputs around it.
package diag
