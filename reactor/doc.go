// Package reactor
// Author: momentics <momentics@gmail.com>
//
// Package reactor resolves time-based suspensions: it tracks pending timer
// registrations in a deadline-ordered heap and wakes every expired sleeper
// on each advance step.
package reactor
