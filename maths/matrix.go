package maths

import (
	"fmt"
	"math"
	"strings"
)

// Matrix 稠密方阵/矩形矩阵，行优先二维存储。
// 引擎的加盖与LU分解都在本结构上原位进行
type Matrix struct {
	rows, cols int
	data       [][]float64
}

// NewMatrix 创建指定维度的零矩阵
func NewMatrix(rows, cols int) *Matrix {
	data := make([][]float64, rows)
	for i := range data {
		data[i] = make([]float64, cols)
	}
	return &Matrix{rows: rows, cols: cols, data: data}
}

// Rows 行数
func (m *Matrix) Rows() int { return m.rows }

// Cols 列数
func (m *Matrix) Cols() int { return m.cols }

// Get 获取(i,j)元素
func (m *Matrix) Get(i, j int) float64 { return m.data[i][j] }

// Set 设置(i,j)元素
func (m *Matrix) Set(i, j int, v float64) { m.data[i][j] = v }

// Increment 在(i,j)元素上叠加值
func (m *Matrix) Increment(i, j int, v float64) { m.data[i][j] += v }

// Row 返回第 i 行的底层切片（直接操作底层数据）
func (m *Matrix) Row(i int) []float64 { return m.data[i] }

// Zero 清空矩阵
func (m *Matrix) Zero() {
	for i := range m.data {
		for j := range m.data[i] {
			m.data[i][j] = 0
		}
	}
}

// CopyTo 复制数据到目标矩阵，维度必须一致
func (m *Matrix) CopyTo(dst *Matrix) {
	if dst.rows != m.rows || dst.cols != m.cols {
		panic(fmt.Sprintf("matrix copy dimension mismatch: source %dx%d, target %dx%d",
			m.rows, m.cols, dst.rows, dst.cols))
	}
	for i := range m.data {
		copy(dst.data[i], m.data[i])
	}
}

// Clone 复制出同维度的新矩阵
func (m *Matrix) Clone() *Matrix {
	out := NewMatrix(m.rows, m.cols)
	m.CopyTo(out)
	return out
}

// HasBadEntry 检查是否存在 NaN 或无穷大元素
func (m *Matrix) HasBadEntry() bool {
	for i := range m.data {
		for _, v := range m.data[i] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return true
			}
		}
	}
	return false
}

// String 格式化输出
func (m *Matrix) String() string {
	var b strings.Builder
	for i := range m.data {
		for j, v := range m.data[i] {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%10.4g", v)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
