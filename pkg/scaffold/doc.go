// Package scaffold generates a project directory from a template set.
//
// Create validates the project name and target directory, layers the
// variables (template defaults, config variables, built-ins, explicit
// values), renders or copies every file of the set, writes the project
// record and then runs the post-generation steps one after another.
//
// Unresolved placeholders never fail a run. They are logged by the
// renderer and collected per file in Result.Warnings. A failing step does
// not fail Create either: its exit code is recorded and Result.Failed
// reports it, leaving the decision to the caller.
package scaffold
