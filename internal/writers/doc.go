// Package writers serializes validated configurations for the stages that
// consume them.
//
// Design:
//   • Records go through pkg/api (v1) for a stable wire format.
//   • A consumer that closes the pipe early is not an error.
package writers
