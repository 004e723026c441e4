// Package decodeerr defines the closed set of error kinds the beam and
// duplex decoders can return.
//
// Every failure is one of a small number of sentinels: no bespoke error
// types, no dynamic messages baked into the sentinel itself. Callers branch
// on behavior with errors.Is; the decoders attach call-site context with
// fmt.Errorf's %w verb.
package decodeerr
