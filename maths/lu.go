package maths

import "math"

// LuFactor 对 n 阶方阵执行带部分主元的 Crout 法 LU 分解，原位覆盖 a。
// 采用隐式行缩放：先求每行最大绝对值的倒数作为比例因子，
// 选主元时比较 |a[i][j]|*scale[i]。
// 参数:
//
//	a    - 待分解矩阵（分解结果原位存储，下三角存消元因子）
//	n    - 有效维度
//	ipvt - 输出置换向量，ipvt[j] 为第 j 列选中的主元行
//
// 返回:
//
//	false 表示矩阵奇异（存在全零行），true 表示分解完成
func LuFactor(a *Matrix, n int, ipvt []int) bool {
	// 每行求最大绝对值，全零行说明矩阵奇异
	scaleFactors := make([]float64, n)
	for i := 0; i < n; i++ {
		largest := 0.0
		row := a.Row(i)
		for j := 0; j < n; j++ {
			if x := math.Abs(row[j]); x > largest {
				largest = x
			}
		}
		if largest == 0 {
			return false
		}
		scaleFactors[i] = 1.0 / largest
	}

	// Crout 法逐列消元
	for j := 0; j < n; j++ {
		// 上三角部分 (i < j)
		for i := 0; i < j; i++ {
			row := a.Row(i)
			q := row[j]
			for k := 0; k < i; k++ {
				q -= row[k] * a.Row(k)[j]
			}
			row[j] = q
		}

		// 下三角部分 (i >= j)，同时按缩放后的绝对值选主元
		largest := 0.0
		largestRow := -1
		for i := j; i < n; i++ {
			row := a.Row(i)
			q := row[j]
			for k := 0; k < j; k++ {
				q -= row[k] * a.Row(k)[j]
			}
			row[j] = q
			if x := math.Abs(q) * scaleFactors[i]; x >= largest {
				largest = x
				largestRow = i
			}
		}

		// 主元行交换
		if j != largestRow {
			rj, rl := a.Row(j), a.Row(largestRow)
			for k := 0; k < n; k++ {
				rj[k], rl[k] = rl[k], rj[k]
			}
			scaleFactors[j], scaleFactors[largestRow] = scaleFactors[largestRow], scaleFactors[j]
		}
		ipvt[j] = largestRow

		// 主元为零时以极小量替代，避免除零
		if a.Get(j, j) == 0 {
			a.Set(j, j, 1e-18)
		}

		if j != n-1 {
			mult := 1.0 / a.Get(j, j)
			for i := j + 1; i < n; i++ {
				a.Row(i)[j] *= mult
			}
		}
	}
	return true
}

// LuSolve 利用 LuFactor 的结果求解 Ax=b，解原位覆盖 b。
// 先按置换向量重排右侧并寻找第一个非零元素（提前跳过零前缀），
// 再经单位下三角前向替换、上三角后向替换得到解
func LuSolve(a *Matrix, n int, ipvt []int, b []float64) {
	// 应用置换，找到第一个非零右侧元素
	i := 0
	for ; i < n; i++ {
		row := ipvt[i]
		swap := b[row]
		b[row] = b[i]
		b[i] = swap
		if swap != 0 {
			break
		}
	}

	bi := i
	i++
	for ; i < n; i++ {
		row := ipvt[i]
		tot := b[row]
		b[row] = b[i]
		// 单位下三角前向替换
		ar := a.Row(i)
		for j := bi; j < i; j++ {
			tot -= ar[j] * b[j]
		}
		b[i] = tot
	}

	// 上三角后向替换
	for i = n - 1; i >= 0; i-- {
		tot := b[i]
		ar := a.Row(i)
		for j := i + 1; j < n; j++ {
			tot -= ar[j] * b[j]
		}
		b[i] = tot / ar[i]
	}
}
