// Package duplicator copies files under new names chosen by an ordered
// chain of renaming rules.
//
// For each input the rules are asked in order for a candidate name. The
// first candidate that does not exist yet is used as the copy destination
// and the scan stops there. When a candidate already exists the policy
// depends on fallthrough mode:
//
//   - off: the input fails immediately, later rules are not consulted
//   - on: the scan resumes at the next rule, which is applied to the
//     colliding candidate instead of the original name
//
// Each Duplicate call performs at most one copy. Inputs are processed one
// at a time so every input sees the copies made for earlier ones.
package duplicator
