// Package imtime is the imaginary-time side of the DLR: given the basis
// frequencies (package basis), it selects r interpolation nodes on the fine
// time grid and converts between values on those nodes and DLR coefficients.
//
// 🚀 What you get
//
//   - New: node selection (pivoted Gram-Schmidt on the time rows of the
//     kernel matrix at effectively zero tolerance) plus a prefactorized r×r
//     values↔coefficients system.
//   - Vals2Coefs / Coefs2Vals and the vector variants: exact linear maps
//     between node values and coefficients.
//   - Eval / EvalVec: evaluate a coefficient expansion at any time point.
//   - FromParts: rebuild a representation from persisted artifacts without
//     redoing node selection.
//
// ✨ Time format
//
// All time points use the relative format: τ ∈ [0,1/2] is stored as is,
// τ ∈ (1/2,1) is stored as τ-1 ∈ (-1/2,0). The format keeps points near
// τ=1 at full relative precision; Absolute and Relative convert. Every
// function in this package expects relative-format input.
package imtime
