// Package matrix provides the small dense-matrix substrate the
// partitioner's eigenvector split needs: a row-major Dense matrix type and
// (in the ops subpackage) Jacobi eigendecomposition for symmetric
// matrices. It is a trimmed adaptation of a general-purpose linear-algebra
// package down to exactly what principal-axis splitting requires.
package matrix
