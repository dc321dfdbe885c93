// Package basis selects the DLR basis frequencies: the root artifact every
// representation shares.
//
// Frequencies discretizes the Lehmann kernel on the fine composite grids
// (package grid), weights the time rows by square-rooted quadrature weights
// so that row dot products approximate L² inner products, and runs pivoted
// re-orthogonalized Gram-Schmidt (package pivgs) on the frequency rows. The
// pivot columns that survive the tolerance cut, mapped back to fine-grid
// values and sorted, are the r DLR frequencies ω_1 < … < ω_r.
//
// A tolerance at or below ~1e-14 does not fail — the basis is usually still
// usable — but the discovered rank becomes unreliable, so a warning is
// logged (zerolog; redirect with SetLogger).
package basis
