// Package ops provides eigendecomposition for the matrix package's Dense
// type, used by the partitioner to find a point set's principal axis.
package ops

import (
	"errors"
	"fmt"
	"math"

	"github.com/skeletron-go/centerline/matrix"
)

// ErrNotSymmetric is returned when the input matrix is not symmetric.
var ErrNotSymmetric = errors.New("ops: matrix is not symmetric")

// ErrEigenFailed is returned if the algorithm does not converge within max iterations.
var ErrEigenFailed = errors.New("ops: eigen decomposition did not converge")

// Eigen performs Jacobi eigenvalue decomposition on a symmetric matrix m,
// returning its eigenvalues and a matrix Q whose columns are the
// corresponding eigenvectors. tol is the off-diagonal convergence
// threshold; maxIter caps the number of Jacobi rotations, each of which
// zeroes the current largest off-diagonal element.
//
// Complexity: O(n^2) per rotation, O(maxIter*n^2) worst case.
func Eigen(m *matrix.Dense, tol float64, maxIter int) ([]float64, *matrix.Dense, error) {
	n, cols := m.Rows(), m.Cols()
	if n != cols {
		return nil, nil, fmt.Errorf("ops.Eigen: non-square %dx%d: %w", n, cols, matrix.ErrDimensionMismatch)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			aij, _ := m.At(i, j)
			aji, _ := m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return nil, nil, ErrNotSymmetric
			}
		}
	}

	a := m.Clone()
	q, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("ops.Eigen: %w", err)
	}
	for i := 0; i < n; i++ {
		_ = q.Set(i, i, 1.0)
	}

	iter := 0
	for ; iter < maxIter; iter++ {
		p, qi, maxOff := largestOffDiagonal(a, n)
		if maxOff < tol {
			break
		}
		rotate(a, q, n, p, qi)
	}
	if iter == maxIter {
		return nil, nil, ErrEigenFailed
	}

	eigs := make([]float64, n)
	for i := 0; i < n; i++ {
		eigs[i], _ = a.At(i, i)
	}
	return eigs, q, nil
}

func largestOffDiagonal(a *matrix.Dense, n int) (p, q int, maxOff float64) {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			off, _ := a.At(i, j)
			if math.Abs(off) > maxOff {
				maxOff = math.Abs(off)
				p, q = i, j
			}
		}
	}
	return p, q, maxOff
}

func rotate(a, q *matrix.Dense, n, p, qi int) {
	app, _ := a.At(p, p)
	aqq, _ := a.At(qi, qi)
	apq, _ := a.At(p, qi)

	theta := (aqq - app) / (2 * apq)
	t := math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
	c := 1.0 / math.Sqrt(t*t+1)
	s := t * c

	for i := 0; i < n; i++ {
		if i == p || i == qi {
			continue
		}
		aip, _ := a.At(i, p)
		aiq, _ := a.At(i, qi)
		_ = a.Set(i, p, c*aip-s*aiq)
		_ = a.Set(p, i, c*aip-s*aiq)
		_ = a.Set(i, qi, s*aip+c*aiq)
		_ = a.Set(qi, i, s*aip+c*aiq)
	}
	_ = a.Set(p, p, c*c*app-2*c*s*apq+s*s*aqq)
	_ = a.Set(qi, qi, s*s*app+2*c*s*apq+c*c*aqq)
	_ = a.Set(p, qi, 0.0)
	_ = a.Set(qi, p, 0.0)

	for i := 0; i < n; i++ {
		qip, _ := q.At(i, p)
		qiq, _ := q.At(i, qi)
		_ = q.Set(i, p, c*qip-s*qiq)
		_ = q.Set(i, qi, s*qip+c*qiq)
	}
}
