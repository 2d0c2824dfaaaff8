// Package mna 实现改进节点分析(MNA)瞬态引擎：
// 由引脚连接关系解析节点拓扑，汇集元件加盖构建线性系统，
// 结构化简后做稠密LU分解，并以牛顿迭代逐步推进时间。
package mna

import (
	"github.com/bwmarrin/snowflake"

	"cirsim/maths"
	"cirsim/types"
)

var _ types.Stamp = (*Circuit)(nil)

// Lead 引脚引用：元件与其端子序号的组合
type Lead struct {
	Elm types.ElementFace // 元件
	Pin int               // 端子序号
}

// nodeLink 节点到元件引脚的反向引用，用于结果分发
type nodeLink struct {
	elm types.ElementFace
	pin int
}

// circuitNode 解析后的电路节点
type circuitNode struct {
	id       types.MeshID // 网格节点ID
	internal bool         // 是否为元件注入的内部节点（不参与悬空修补）
	links    []nodeLink   // 连接到本节点的元件引脚
}

// Circuit 电路引擎。元件与连接修改会惰性标记脏位，
// Update 在需要时重新解析电路后推进一个时间步
type Circuit struct {
	elements       []types.ElementFace
	nodeList       []*circuitNode
	voltageSources []types.ElementFace

	circuitMatrix    *maths.Matrix // 工作矩阵（非线性加盖与LU原位修改）
	origMatrix       *maths.Matrix // 线性贡献备份
	circuitRightSide []float64
	origRightSide    []float64
	circuitRowInfo   []*RowInfo
	circuitPermute   []int

	circuitMatrixSize     int // 化简后的矩阵维度
	circuitMatrixFullSize int // 化简前的完整维度，分发时按列重映射
	circuitNeedsMap       bool
	circuitNonLinear      bool

	converged bool
	subIter   int

	time     float64
	timeStep float64

	analyzeFlag bool
	stopMessage string
	stopElm     types.ElementFace

	idGen  *snowflake.Node
	scopes []*ScopeBuffer
}

// NewCircuit 创建空电路
func NewCircuit() *Circuit {
	idGen, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return &Circuit{
		timeStep:    types.DefaultTimeStep,
		analyzeFlag: true,
		idGen:       idGen,
	}
}

// nextMeshID 分配新的网格节点ID
func (cir *Circuit) nextMeshID() types.MeshID {
	return cir.idGen.Generate().Int64()
}

// AddElement 注册元件，重复注册为幂等操作。返回元件本身便于链式构建
func (cir *Circuit) AddElement(e types.ElementFace) types.ElementFace {
	for _, ce := range cir.elements {
		if ce == e {
			return e
		}
	}
	cir.elements = append(cir.elements, e)
	cir.NeedAnalyze()
	return e
}

// Connect 连接两个引脚。
// 双方都未连接时分配新网格ID；一方未连接时采用另一方的ID；
// 双方都已连接时右侧采用左侧的ID——此时不改写右侧ID先前的其他采用者，
// 调用方需按一致的顺序连接（保留原始单写行为，见 DESIGN.md）
func (cir *Circuit) Connect(left, right Lead) {
	lb, rb := left.Elm.Base(), right.Elm.Base()
	lid, rid := lb.Mesh[left.Pin], rb.Mesh[right.Pin]
	switch {
	case lid == types.MeshUnassigned && rid == types.MeshUnassigned:
		id := cir.nextMeshID()
		lb.Mesh[left.Pin] = id
		rb.Mesh[right.Pin] = id
	case lid == types.MeshUnassigned:
		lb.Mesh[left.Pin] = rid
	case rid == types.MeshUnassigned:
		rb.Mesh[right.Pin] = lid
	default:
		rb.Mesh[right.Pin] = lid
	}
	cir.NeedAnalyze()
}

// NeedAnalyze 标记电路结构已变化，下次 Update 时重新解析
func (cir *Circuit) NeedAnalyze() { cir.analyzeFlag = true }

// ResetTime 仿真时间归零
func (cir *Circuit) ResetTime() { cir.time = 0 }

// Update 推进一个时间步。脏位置位时先重新解析；
// 解析错误未清除时立即返回。dt 参数保留接口形态，
// 每次调用恰好执行一步 timeStep，不做步长自适应
func (cir *Circuit) Update(dt float64) {
	if len(cir.elements) == 0 {
		return
	}
	if cir.analyzeFlag {
		cir.analyze()
	}
	if cir.circuitMatrix == nil {
		return
	}
	cir.runStep()
}

// stop 记录致命错误：清空矩阵并置脏，后续 Update 空转直至用户修改电路
func (cir *Circuit) stop(msg string, ce types.ElementFace) {
	cir.stopMessage = msg
	cir.stopElm = ce
	cir.circuitMatrix = nil
	cir.analyzeFlag = true
}

// GetElm 按注册顺序取元件
func (cir *Circuit) GetElm(i int) types.ElementFace {
	if i >= 0 && i < len(cir.elements) {
		return cir.elements[i]
	}
	return nil
}

// ElementCount 元件数量
func (cir *Circuit) ElementCount() int { return len(cir.elements) }

// GetNodeID 节点索引对应的网格ID
func (cir *Circuit) GetNodeID(i int) types.MeshID {
	if i >= 0 && i < len(cir.nodeList) {
		return cir.nodeList[i].id
	}
	return types.MeshUnassigned
}

// NodeCount 解析后的节点数量（含地节点）
func (cir *Circuit) NodeCount() int { return len(cir.nodeList) }

// Time 当前仿真时间(秒)
func (cir *Circuit) Time() float64 { return cir.time }

// TimeStep 当前时间步长(秒)
func (cir *Circuit) TimeStep() float64 { return cir.timeStep }

// SetTimeStep 修改时间步长。伴随模型依赖步长，需要重新解析
func (cir *Circuit) SetTimeStep(dt float64) {
	cir.timeStep = dt
	cir.NeedAnalyze()
}

// SubIter 当前牛顿子迭代序号
func (cir *Circuit) SubIter() int { return cir.subIter }

// SetConverged 元件残差超限，本轮子迭代不收敛
func (cir *Circuit) SetConverged() { cir.converged = false }

// ErrorMessage 最近一次解析/求解的错误信息，空串表示正常
func (cir *Circuit) ErrorMessage() string { return cir.stopMessage }

// ErrorElement 触发错误的元件，可能为空
func (cir *Circuit) ErrorElement() types.ElementFace { return cir.stopElm }

// MatrixSize 化简后的矩阵维度
func (cir *Circuit) MatrixSize() int { return cir.circuitMatrixSize }

// NonLinear 电路是否包含非线性元件
func (cir *Circuit) NonLinear() bool { return cir.circuitNonLinear }
