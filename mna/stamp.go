package mna

import "cirsim/types"

// 加盖内核：行列参数为 1 起始的节点编号（0 为地，忽略）。
// circuitNeedsMap 置位后（化简完成），内核通过 RowInfo 的
// MapRow/MapCol 换算到压缩矩阵；常量列折叠进右侧。

// StampMatrix 在矩阵的(i,j)位置叠加值
func (cir *Circuit) StampMatrix(i, j types.NodeID, x float64) {
	if i > 0 && j > 0 {
		if cir.circuitNeedsMap {
			i = cir.circuitRowInfo[i-1].MapRow
			ri := cir.circuitRowInfo[j-1]
			if ri.Type == RowConst {
				cir.circuitRightSide[i] -= x * ri.Value
				return
			}
			j = ri.MapCol
		} else {
			i--
			j--
		}
		cir.circuitMatrix.Increment(i, j, x)
	}
}

// StampRightSide 在右侧向量的i位置叠加值
func (cir *Circuit) StampRightSide(i types.NodeID, x float64) {
	if i > 0 {
		if cir.circuitNeedsMap {
			i = cir.circuitRowInfo[i-1].MapRow
		} else {
			i--
		}
		cir.circuitRightSide[i] += x
	}
}

// MarkRightSideChanging 标记行右侧逐次迭代变化，化简时保留
func (cir *Circuit) MarkRightSideChanging(i types.NodeID) {
	if i > 0 {
		cir.circuitRowInfo[i-1].RsChanges = true
	}
}

// StampNonLinear 标记行左侧逐次迭代变化（非线性行）
func (cir *Circuit) StampNonLinear(i types.NodeID) {
	if i > 0 {
		cir.circuitRowInfo[i-1].LsChanges = true
	}
}

// StampResistor 加盖电阻，g=1/r 的对称四元贡献
func (cir *Circuit) StampResistor(n1, n2 types.NodeID, r float64) {
	cir.StampConductance(n1, n2, 1/r)
}

// StampConductance 加盖电导
func (cir *Circuit) StampConductance(n1, n2 types.NodeID, g float64) {
	cir.StampMatrix(n1, n1, g)
	cir.StampMatrix(n2, n2, g)
	cir.StampMatrix(n1, n2, -g)
	cir.StampMatrix(n2, n1, -g)
}

// StampCurrentSource 加盖独立电流源，电流从 n1 流向 n2
func (cir *Circuit) StampCurrentSource(n1, n2 types.NodeID, i float64) {
	cir.StampRightSide(n1, -i)
	cir.StampRightSide(n2, i)
}

// StampVoltageSource 加盖直流电压源：约束 V(n2)-V(n1)=v，
// 扩展行 vn = 节点数 + vs
func (cir *Circuit) StampVoltageSource(n1, n2 types.NodeID, vs types.VoltageID, v float64) {
	vn := len(cir.nodeList) + vs
	cir.StampMatrix(vn, n1, -1)
	cir.StampMatrix(vn, n2, 1)
	cir.StampRightSide(vn, v)
	cir.StampMatrix(n1, vn, 1)
	cir.StampMatrix(n2, vn, -1)
}

// StampVoltageSourceVariable 加盖时变电压源：±1耦合不变，
// 右侧标记为可变，由 DoStep 中的 UpdateVoltageSource 更新
func (cir *Circuit) StampVoltageSourceVariable(n1, n2 types.NodeID, vs types.VoltageID) {
	vn := len(cir.nodeList) + vs
	cir.StampMatrix(vn, n1, -1)
	cir.StampMatrix(vn, n2, 1)
	cir.MarkRightSideChanging(vn)
	cir.StampMatrix(n1, vn, 1)
	cir.StampMatrix(n2, vn, -1)
}

// UpdateVoltageSource 子迭代中更新电压源右侧值
func (cir *Circuit) UpdateVoltageSource(n1, n2 types.NodeID, vs types.VoltageID, v float64) {
	vn := len(cir.nodeList) + vs
	cir.StampRightSide(vn, v)
}

// StampVCVS 加盖电压控制电压源的控制项
func (cir *Circuit) StampVCVS(n1, n2 types.NodeID, vs types.VoltageID, gain float64) {
	vn := len(cir.nodeList) + vs
	cir.StampMatrix(vn, n1, gain)
	cir.StampMatrix(vn, n2, -gain)
}

// StampVCCurrentSource 加盖电压控制电流源
func (cir *Circuit) StampVCCurrentSource(cn1, cn2, vn1, vn2 types.NodeID, gain float64) {
	cir.StampMatrix(cn1, vn1, gain)
	cir.StampMatrix(cn2, vn2, gain)
	cir.StampMatrix(cn1, vn2, -gain)
	cir.StampMatrix(cn2, vn1, -gain)
}

// StampCCCS 加盖电流控制电流源，控制电流取自电压源 vs 的扩展未知量
func (cir *Circuit) StampCCCS(n1, n2 types.NodeID, vs types.VoltageID, gain float64) {
	vn := len(cir.nodeList) + vs
	cir.StampMatrix(n1, vn, gain)
	cir.StampMatrix(n2, vn, -gain)
}
