// Package klaus2m5 documents the provenance of the conformance test
// binaries hardware/cpu/functional_test expects to find alongside it.
//
// https://github.com/Klaus2m5/6502_65C02_functional_tests
//
// Both 6502_functional_test.a65 and 65C02_extended_opcodes_test.a65 are
// assembled with the as65 assembler distributed from the above
// repository:
//
//	as65 -pmnu 6502_functional_test.a65
//	as65 -pmnu 65C02_extended_opcodes_test.a65
//
// The resulting .bin files are placed next to functional_test.go under
// their upstream names and the package built with
// -tags apple2_functional_test. Neither binary is redistributed here.
package klaus2m5
