package quant

import "math"

// SolveLinear solves the real system A x = b by LU decomposition with
// partial pivoting. A and b are left untouched. A pivot below pivotTol
// reports ErrSingular.
func SolveLinear(a [][]float64, b []float64) ([]float64, error) {
	n := len(b)
	if n == 0 || len(a) != n {
		return nil, ErrDimension
	}

	lu := make([][]float64, n)
	for i := range lu {
		if len(a[i]) != n {
			return nil, ErrDimension
		}
		lu[i] = append([]float64(nil), a[i]...)
	}
	x := append([]float64(nil), b...)

	const pivotTol = 1e-14

	for col := 0; col < n; col++ {
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(lu[row][col]) > math.Abs(lu[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(lu[pivot][col]) < pivotTol {
			return nil, ErrSingular
		}
		if pivot != col {
			lu[pivot], lu[col] = lu[col], lu[pivot]
			x[pivot], x[col] = x[col], x[pivot]
		}
		for row := col + 1; row < n; row++ {
			f := lu[row][col] / lu[col][col]
			lu[row][col] = f
			for k := col + 1; k < n; k++ {
				lu[row][k] -= f * lu[col][k]
			}
			x[row] -= f * x[col]
		}
	}

	for row := n - 1; row >= 0; row-- {
		for k := row + 1; k < n; k++ {
			x[row] -= lu[row][k] * x[k]
		}
		x[row] /= lu[row][row]
	}
	return x, nil
}
