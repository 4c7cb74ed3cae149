// Package validate re-derives feasibility of a solution directly from a raw
// problem instance, without going through matroid or aggregate. It exists to
// catch an engine bug that produces an internally-consistent but externally-
// wrong selection: the engine and the validator must agree independently.
package validate
