// Package quest provides the types and functions to track personal goals and
// the points they earn. It is designed to be local-first: the whole progress
// is a small human-readable text file.
//
// The core functionalities include:
//   - Goals: a closed set of goal kinds. A SimpleGoal is done once, an
//     EternalGoal is never done and pays every time, a ChecklistGoal must be
//     done a number of times and pays a bonus the last time.
//   - Registry: the ordered list of goals, and the total of points earned by
//     recording events on them.
//   - Data Persistence: encoding and decoding a registry to and from a line
//     oriented, pipe delimited text format.
//   - Tracker: the operations a user interface calls, saving and loading
//     through a pluggable Store.
//
// This package serves as the foundational logic for the `quest` command-line
// tool.
package quest
