package mna

import (
	"cirsim/maths"
	"cirsim/types"
)

// simplify 识别并消去两类平凡行以压缩矩阵：
//
//  1. 常量行：除常量列外只有一个非零元素，对应节点电压为常量；
//  2. 相等行：恰好两个互为相反数的非零元素且右侧为零，两节点电压相等。
//
// 左侧或右侧逐次迭代变化的行以及已被丢弃的行不参与化简。
// 理想导线、轨间电压源等结构会产生大量此类行，
// 消去它们显著缩小LU分解的立方代价。
// 返回 false 表示发生致命错误
func (cir *Circuit) simplify() bool {
	matrixSize := cir.circuitMatrixFullSize

	for i := 0; i < matrixSize; i++ {
		qp, qm := -1, -1
		qv := 0.0
		re := cir.circuitRowInfo[i]
		if re.LsChanges || re.DropRow || re.RsChanges {
			continue
		}
		rsadd := 0.0

		// 统计本行非零元素；常量列的贡献累计到 rsadd
		j := 0
		for ; j < matrixSize; j++ {
			q := cir.circuitMatrix.Get(i, j)
			if cir.circuitRowInfo[j].Type == RowConst {
				rsadd -= cir.circuitRowInfo[j].Value * q
				continue
			}
			if q == 0 {
				continue
			}
			if qp == -1 {
				qp = j
				qv = q
				continue
			}
			if qm == -1 && q == -qv {
				qm = j
				continue
			}
			break
		}
		if j == matrixSize {
			if qp == -1 {
				// 全零行，系统无解
				cir.stop("Matrix error", nil)
				return false
			}
			elt := cir.circuitRowInfo[qp]
			if qm == -1 {
				// 单非零元素行：该节点电压为常量
				for k := 0; elt.Type == RowEqual && k < types.EqualChainLimit; k++ {
					// 沿相等链找到最终行
					qp = elt.NodeEq
					elt = cir.circuitRowInfo[qp]
				}
				if elt.Type == RowEqual {
					// 链中存在环：打断为普通行，本行不做化简
					elt.Type = RowNormal
					continue
				}
				if elt.Type != RowNormal {
					continue
				}
				elt.Type = RowConst
				elt.Value = (cir.circuitRightSide[i] + rsadd) / qv
				cir.circuitRowInfo[i].DropRow = true
				// 常量传播可能使更早的行可化简，从头重扫
				i = -1
			} else if cir.circuitRightSide[i]+rsadd == 0 {
				// 两个相反数元素且右侧为零：两节点电压相等
				if elt.Type != RowNormal {
					qp, qm = qm, qp
					elt = cir.circuitRowInfo[qp]
					if elt.Type != RowNormal {
						// 两端都已定型，极少出现，放弃本行
						continue
					}
				}
				elt.Type = RowEqual
				elt.NodeEq = qm
				cir.circuitRowInfo[i].DropRow = true
			}
		}
	}

	// 为存活的普通行分配压缩列索引
	nn := 0
	for i := 0; i < matrixSize; i++ {
		elt := cir.circuitRowInfo[i]
		if elt.Type == RowNormal {
			elt.MapCol = nn
			nn++
			continue
		}
		if elt.Type == RowEqual {
			// 解析相等链，限制跳数防环
			for j := 0; j < types.EqualChainLimit; j++ {
				e2 := cir.circuitRowInfo[elt.NodeEq]
				if e2.Type != RowEqual {
					break
				}
				if i == e2.NodeEq {
					break
				}
				elt.NodeEq = e2.NodeEq
			}
		}
		if elt.Type == RowConst {
			elt.MapCol = -1
		}
	}
	for i := 0; i < matrixSize; i++ {
		elt := cir.circuitRowInfo[i]
		if elt.Type == RowEqual {
			e2 := cir.circuitRowInfo[elt.NodeEq]
			if e2.Type == RowConst {
				// 与常量相等即为常量
				elt.Type = e2.Type
				elt.Value = e2.Value
				elt.MapCol = -1
			} else {
				elt.MapCol = e2.MapCol
			}
		}
	}

	// 构建压缩矩阵：行按 MapRow 合并，常量列折叠进右侧
	newsize := nn
	newmatx := maths.NewMatrix(newsize, newsize)
	newrs := make([]float64, newsize)
	ii := 0
	for i := 0; i < matrixSize; i++ {
		rri := cir.circuitRowInfo[i]
		if rri.DropRow {
			rri.MapRow = -1
			continue
		}
		newrs[ii] = cir.circuitRightSide[i]
		rri.MapRow = ii
		for j := 0; j < matrixSize; j++ {
			ri := cir.circuitRowInfo[j]
			if ri.Type == RowConst {
				newrs[ii] -= ri.Value * cir.circuitMatrix.Get(i, j)
			} else {
				newmatx.Increment(ii, ri.MapCol, cir.circuitMatrix.Get(i, j))
			}
		}
		ii++
	}

	cir.circuitMatrix = newmatx
	cir.circuitRightSide = newrs
	cir.circuitMatrixSize = newsize
	cir.circuitPermute = make([]int, newsize)
	return true
}
