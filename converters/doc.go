// SPDX-License-Identifier: MIT

// Package converters provides two-way adapters between *matrix.Matrix and
// gonum's dense matrices (gonum.org/v1/gonum/mat).
//
// Both directions deep-copy: the returned value never shares storage with
// its source, which keeps matrix.Matrix's exclusive-ownership contract intact.
//
// Use converters to hand a matrix to gonum's decompositions or to check
// results against gonum in tests.
package converters
