// Package models defines the domain values shared between the form
// controller, the RPC services and the CLI.
//
// # Models
//
//   - Summary: the inputs of one bill form (bill text, split count, tip
//     fraction) together with the values derived from them (tip, total per
//     person, validity).
//
// A Summary is a snapshot. It is never stored independently of the form it
// was taken from; derived fields are recomputed by the form on every input
// change.
package models
