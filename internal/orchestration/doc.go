// Package orchestration runs the linter over a directory tree while a
// decorative animation plays, and aggregates per-file feedback. It decouples
// the check loop from presentation via the Animator and ProgressReporter
// interfaces.
package orchestration
