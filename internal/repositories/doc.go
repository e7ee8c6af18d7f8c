// Package repositories implements SQLite persistence for the schedule.
//
// [ScheduleRepository] is the store behind the reconciliation engine. It
// round-trips every field of a schedule entry exactly; identity is a stored
// column, never re-derived from display text at load time. Appends run in a
// single transaction so an interrupted run leaves prior state untouched.
//
// Sequence numbers provide stable, human-readable insertion ordering
// (entry #42) independent of UUIDs and timestamps, incremented atomically via
// [NextSequence] inside the append transaction.
package repositories
