package maths

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// TestLuFactorSolve 验证已知 3x3 线性方程组的分解与求解。
func TestLuFactorSolve(t *testing.T) {
	// A = [[2, 3, 1],
	//      [1, 2, 3],
	//      [3, 1, 2]]
	// b = [9, 6, 8]
	// 预期解 x = [35/18, 29/18, 5/18]
	a := NewMatrix(3, 3)
	a.Set(0, 0, 2)
	a.Set(0, 1, 3)
	a.Set(0, 2, 1)
	a.Set(1, 0, 1)
	a.Set(1, 1, 2)
	a.Set(1, 2, 3)
	a.Set(2, 0, 3)
	a.Set(2, 1, 1)
	a.Set(2, 2, 2)

	b := []float64{9, 6, 8}
	ipvt := make([]int, 3)
	if !LuFactor(a, 3, ipvt) {
		t.Fatal("LuFactor reported singular for a regular matrix")
	}
	LuSolve(a, 3, ipvt, b)

	expected := []float64{35.0 / 18.0, 29.0 / 18.0, 5.0 / 18.0}
	for i := range expected {
		if math.Abs(b[i]-expected[i]) > 1e-9 {
			t.Errorf("x[%d] = %v, expected %v", i, b[i], expected[i])
		}
	}
}

// TestLuRoundTrip 随机良态矩阵（对角占优）上验证 A*x 还原 b，
// n=50，相对误差 1e-9 以内。参考乘法使用 gonum
func TestLuRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	const n = 50
	a := NewMatrix(n, n)
	ref := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		rowsum := 0.0
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v := rnd.Float64()*2 - 1
			a.Set(i, j, v)
			ref.Set(i, j, v)
			rowsum += math.Abs(v)
		}
		// 对角占优保证良态
		d := rowsum + 1 + rnd.Float64()
		a.Set(i, i, d)
		ref.Set(i, i, d)
	}
	b := make([]float64, n)
	orig := make([]float64, n)
	for i := range b {
		b[i] = rnd.Float64()*10 - 5
		orig[i] = b[i]
	}

	ipvt := make([]int, n)
	if !LuFactor(a, n, ipvt) {
		t.Fatal("LuFactor reported singular for a diagonally dominant matrix")
	}
	LuSolve(a, n, ipvt, b)

	// 验证 ref*x ≈ orig
	x := mat.NewVecDense(n, b)
	var prod mat.VecDense
	prod.MulVec(ref, x)
	scale := 0.0
	for i := range orig {
		if v := math.Abs(orig[i]); v > scale {
			scale = v
		}
	}
	for i := range orig {
		if math.Abs(prod.AtVec(i)-orig[i]) > 1e-9*scale {
			t.Fatalf("residual too large at %d: %v vs %v", i, prod.AtVec(i), orig[i])
		}
	}
}

// TestLuFactorSingular 全零行应判定为奇异矩阵。
func TestLuFactorSingular(t *testing.T) {
	a := NewMatrix(3, 3)
	a.Set(0, 0, 1)
	a.Set(0, 1, 2)
	a.Set(0, 2, 3)
	a.Set(2, 0, 4)
	a.Set(2, 1, 5)
	a.Set(2, 2, 6)
	ipvt := make([]int, 3)
	if LuFactor(a, 3, ipvt) {
		t.Fatal("LuFactor accepted a matrix with an all-zero row")
	}
}
