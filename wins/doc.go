// Package wins counts contest outcomes where any subset of participants can
// share first place, and turns them into win and tie percentages.
//
// A single outcome is a Flag with one bit per participant. Outcomes are
// appended to a Log, and a Log is summarised either as Results (any number
// of participants) or as a HeadsUp (exactly two).
package wins
