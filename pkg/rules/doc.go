// Package rules defines the renaming rules applied by the duplicator.
//
// A Rule maps a name to an optional new name. Rules hold no mutable state,
// so one rule value can be applied to every input of a batch and always
// gives the same answer for the same input.
//
// Available rules:
//   - DateRule: replaces an embedded pattern with a date formatted from a
//     reference time fixed at construction
//   - IncrementRule: replaces the last digit run with its value plus one
//   - NameOnlyRule: applies another rule to the last path component only
package rules
