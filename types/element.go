package types

import "gonum.org/v1/gonum/mat"

// ElementFace 元件接口：引擎对元件的全部依赖。
// Stamp 在每次电路解析后调用一次，StartIteration 在每个时间步开始时调用一次，
// DoStep 在每次牛顿子迭代中调用，StepFinished 在时间步成功结束后调用
type ElementFace interface {
	Base() *ElementBase

	LeadCount() int          // 外部引脚数量
	InternalLeadCount() int  // 内部节点数量
	VoltageSourceCount() int // 电压源数量

	NonLinear() bool                // 元件是否非线性
	IsWire() bool                   // 元件是否为理想导线
	LeadIsGround(i int) bool        // 引脚 i 是否隐含接地
	LeadsAreConnected(i, j int) bool // 引脚 i 与 j 之间是否存在传导路径

	Stamp(s Stamp)            // 加盖线性贡献
	StartIteration(s Stamp)   // 时间步开始（伴随模型预计算）
	DoStep(s Stamp)           // 牛顿子迭代（非线性元件重新加盖）
	StepFinished(s Stamp)     // 时间步结束
	CalculateCurrent()        // 由引脚电压计算支路电流
	Reset()                   // 状态复位

	SetLeadNode(i int, n NodeID)        // 绑定引脚到节点索引
	SetLeadVoltage(i int, v float64)    // 分发求解得到的节点电压
	SetVoltageSource(j int, k VoltageID) // 绑定元件内第 j 个电压源到全局编号 k
	SetCurrent(vs VoltageID, i float64)  // 分发电压源电流
	GetCurrent() float64                 // 元件支路电流
}

// ElementBase 元件底层数据：节点绑定、网格ID、引脚电压与电流。
// 元件结构体嵌入本类型并按需覆盖默认行为
type ElementBase struct {
	Leads      int           // 外部引脚数量
	LeadNode   []NodeID      // 解析后的节点索引（含内部节点）
	Mesh       []MeshID      // 网格节点ID，-1 表示未连接
	Volts      *mat.VecDense // 引脚电压
	VoltSource []VoltageID   // 电压源全局编号
	Current    float64       // 支路电流
}

// NewElementBase 按引脚数量初始化底层数据
func NewElementBase(leads int) ElementBase {
	base := ElementBase{
		Leads:    leads,
		LeadNode: make([]NodeID, leads),
		Mesh:     make([]MeshID, leads),
		Volts:    mat.NewVecDense(max(leads, 1), nil),
	}
	for i := range base.Mesh {
		base.Mesh[i] = MeshUnassigned
	}
	return base
}

// Base 得到底层
func (base *ElementBase) Base() *ElementBase { return base }

// EnsureLeads 解析时扩展底层数组到 n 个引脚（含内部节点）
func (base *ElementBase) EnsureLeads(n int) {
	for len(base.LeadNode) < n {
		base.LeadNode = append(base.LeadNode, 0)
		base.Mesh = append(base.Mesh, MeshUnassigned)
	}
	if base.Volts.Len() < n {
		volts := mat.NewVecDense(n, nil)
		for i := 0; i < base.Volts.Len(); i++ {
			volts.SetVec(i, base.Volts.AtVec(i))
		}
		base.Volts = volts
	}
}

// AllocVoltSources 解析时分配电压源编号数组
func (base *ElementBase) AllocVoltSources(n int) {
	if len(base.VoltSource) != n {
		base.VoltSource = make([]VoltageID, n)
	}
}

// LeadCount 外部引脚数量
func (base *ElementBase) LeadCount() int { return base.Leads }

// InternalLeadCount 内部节点数量
func (base *ElementBase) InternalLeadCount() int { return 0 }

// VoltageSourceCount 电压源数量
func (base *ElementBase) VoltageSourceCount() int { return 0 }

// NonLinear 元件是否非线性
func (base *ElementBase) NonLinear() bool { return false }

// IsWire 元件是否为理想导线
func (base *ElementBase) IsWire() bool { return false }

// LeadIsGround 引脚是否隐含接地
func (base *ElementBase) LeadIsGround(i int) bool { return false }

// LeadsAreConnected 引脚之间是否存在传导路径
func (base *ElementBase) LeadsAreConnected(i, j int) bool { return true }

// StartIteration 时间步开始回调
func (base *ElementBase) StartIteration(s Stamp) {}

// DoStep 牛顿子迭代回调
func (base *ElementBase) DoStep(s Stamp) {}

// StepFinished 时间步结束回调
func (base *ElementBase) StepFinished(s Stamp) {}

// CalculateCurrent 电流计算
func (base *ElementBase) CalculateCurrent() {}

// Reset 状态复位
func (base *ElementBase) Reset() {
	for i := 0; i < base.Volts.Len(); i++ {
		base.Volts.SetVec(i, 0)
	}
	base.Current = 0
}

// SetLeadNode 绑定引脚到节点索引
func (base *ElementBase) SetLeadNode(i int, n NodeID) {
	if i >= 0 && i < len(base.LeadNode) {
		base.LeadNode[i] = n
	}
}

// GetLeadNode 引脚对应的节点索引
func (base *ElementBase) GetLeadNode(i int) NodeID {
	if i >= 0 && i < len(base.LeadNode) {
		return base.LeadNode[i]
	}
	return 0
}

// SetLeadVoltage 分发节点电压
func (base *ElementBase) SetLeadVoltage(i int, v float64) {
	if i >= 0 && i < base.Volts.Len() {
		base.Volts.SetVec(i, v)
	}
}

// LeadVoltage 引脚电压
func (base *ElementBase) LeadVoltage(i int) float64 {
	if i >= 0 && i < base.Volts.Len() {
		return base.Volts.AtVec(i)
	}
	return 0
}

// SetVoltageSource 绑定电压源全局编号
func (base *ElementBase) SetVoltageSource(j int, k VoltageID) {
	if j >= 0 && j < len(base.VoltSource) {
		base.VoltSource[j] = k
	}
}

// SetCurrent 分发电压源电流
func (base *ElementBase) SetCurrent(vs VoltageID, i float64) { base.Current = i }

// GetCurrent 元件支路电流
func (base *ElementBase) GetCurrent() float64 { return base.Current }
