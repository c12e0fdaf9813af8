// Package functional_test wires Klaus Dormann's 6502/65C02 functional
// test suite (https://github.com/Klaus2m5/6502_65C02_functional_tests)
// against this core's CPU engine. It is adapted from the teacher's
// hardware/cpu/functional_test package, which runs the same suite
// against the VCS's 6507 core; the harness shape (flat 64KiB test
// memory, reset-vector patch, success-address loop) carries over
// unchanged, only the CPU constructor and bus interface differ.
//
// The assembled test binaries are not checked into this repository; a
// conformant CI pipeline fetches and assembles them (as65 -pmnu, per the
// Klaus2m5 project's README) and places the output where the go:embed
// directives below expect it, then builds with -tags apple2_functional_test.
package functional_test
