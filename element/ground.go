package element

import "cirsim/types"

// Ground 接地元件：通过 0V 电压源把所连节点钉在地电位。
// 引脚带隐含接地标记，路径搜索可借道地总线
type Ground struct {
	types.ElementBase
}

// NewGround 创建接地元件
func NewGround() *Ground {
	return &Ground{ElementBase: types.NewElementBase(1)}
}

// VoltageSourceCount 电压源数量
func (g *Ground) VoltageSourceCount() int { return 1 }

// LeadIsGround 引脚隐含接地
func (g *Ground) LeadIsGround(i int) bool { return true }

// Stamp 加盖地节点与所连节点之间的 0V 约束
func (g *Ground) Stamp(s types.Stamp) {
	s.StampVoltageSource(0, g.GetLeadNode(0), g.VoltSource[0], 0)
}

// SetCurrent 分发电流，方向取流入地的符号
func (g *Ground) SetCurrent(vs types.VoltageID, i float64) {
	g.ElementBase.Current = -i
}
