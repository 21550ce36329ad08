// Package matrix is the numeric engine of numproc: an immutable dense
// float64 matrix and the classic textbook operations on it.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix over a flat buffer. Linear index i addresses
//     row i/Cols() and column i%Cols().
//   - Constructors New (copy of a buffer), NewFunc (generator over linear
//     indices) and Identity.
//   - Add, Scale and Mul with strict shape validation.
//   - Transpose with four reflection modes (main/side diagonal,
//     vertical/horizontal axis).
//   - Determinant by cofactor expansion, with Minor, Cofactor,
//     CofactorMatrix and Adjugate.
//   - Inverse by the adjugate method; a singular matrix is reported as
//     ok == false rather than as an error.
//   - Format/String with fixed "%9.2f" cells, and gonum interop.
//
// Every operation returns a new *Dense and leaves its operands untouched.
// Failures are sentinel errors (ErrDimensionMismatch, ErrNonSquare,
// ErrOutOfRange, ...) wrapped with the operation name; match them with
// errors.Is.
//
// Determinant and Inverse cost O(n!) and are meant for small matrices.
package matrix
