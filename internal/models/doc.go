// Package models defines domain entities for the songday scheduler.
//
// The package contains two categories of types:
//
// 1. Data Transfer Objects (DTOs): Lightweight structs representing external service data
//   - [Track] : Candidate song pulled from the source playlist
//
// 2. Persistent Entities: Database-backed records
//   - [Entry] : One scheduled song occupying a single calendar day
//   - [Schedule] : The full append-only, date-ordered collection of entries
//
// Calendar days are whole-day values; [Day] and [FormatDay] normalize them to
// midnight UTC so that map lookups and SQL round-trips agree.
package models
