package types

// Stamp 矩阵加盖接口：元件在 Stamp/StartIteration/DoStep 回调中通过本接口
// 向共享的 MNA 系统贡献数值。行列参数为 1 起始的节点编号（0 为地，忽略），
// 化简之后内核自动通过 RowInfo 的映射换算到压缩矩阵
type Stamp interface {
	// Time 当前仿真时间(秒)
	Time() float64

	// TimeStep 当前时间步长(秒)
	TimeStep() float64

	// SubIter 当前牛顿子迭代序号（从0开始）
	SubIter() int

	// SetConverged 元件残差超出容差时调用，迫使再进行一轮子迭代
	SetConverged()

	// StampMatrix 在矩阵的(i,j)位置叠加值 x。地节点相关的操作将被忽略。
	// 化简后若列 j 为常量列，则改为从 i 行右侧减去 x*value（常量折叠）
	StampMatrix(i, j NodeID, x float64)

	// StampRightSide 在右侧向量的 i 位置叠加值 x
	StampRightSide(i NodeID, x float64)

	// MarkRightSideChanging 标记 i 行的右侧值每次迭代都会变化，
	// 化简时保留该行（对应原始实现的无值 stampRightSide 重载）
	MarkRightSideChanging(i NodeID)

	// StampNonLinear 标记 i 行的左侧值每次迭代都会变化（非线性行）
	StampNonLinear(i NodeID)

	// StampResistor 加盖电阻元件，g=1/r 的对称四元贡献
	StampResistor(n1, n2 NodeID, r float64)

	// StampConductance 加盖电导元件
	StampConductance(n1, n2 NodeID, g float64)

	// StampCurrentSource 加盖独立电流源，电流从 n1 流向 n2
	StampCurrentSource(n1, n2 NodeID, i float64)

	// StampVoltageSource 加盖直流电压源：约束 V(n2)-V(n1)=v，
	// 电压源 vs 的扩展行为 nodeCount+vs
	StampVoltageSource(n1, n2 NodeID, vs VoltageID, v float64)

	// StampVoltageSourceVariable 加盖时变电压源：写入±1耦合并把右侧标记为
	// 可变，由 DoStep 期间的 UpdateVoltageSource 逐次更新
	StampVoltageSourceVariable(n1, n2 NodeID, vs VoltageID)

	// UpdateVoltageSource 在子迭代中更新电压源 vs 的右侧值
	UpdateVoltageSource(n1, n2 NodeID, vs VoltageID, v float64)

	// StampVCVS 加盖电压控制电压源的控制项
	StampVCVS(n1, n2 NodeID, vs VoltageID, gain float64)

	// StampVCCurrentSource 加盖电压控制电流源
	StampVCCurrentSource(cn1, cn2, vn1, vn2 NodeID, gain float64)

	// StampCCCS 加盖电流控制电流源，控制电流取自电压源 vs 的扩展未知量
	StampCCCS(n1, n2 NodeID, vs VoltageID, gain float64)
}
