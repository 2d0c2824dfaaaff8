package element

import "cirsim/types"

// Switch 理想开关：闭合时等价于导线，断开时完全开路。
// 切换状态改变拓扑，调用方需随后触发 NeedAnalyze
type Switch struct {
	types.ElementBase
	Closed bool // 开关状态
}

// NewSwitch 创建开关
func NewSwitch(closed bool) *Switch {
	return &Switch{ElementBase: types.NewElementBase(2), Closed: closed}
}

// IsWire 闭合时为理想导线
func (sw *Switch) IsWire() bool { return sw.Closed }

// VoltageSourceCount 闭合时占用一个电压源
func (sw *Switch) VoltageSourceCount() int {
	if sw.Closed {
		return 1
	}
	return 0
}

// LeadsAreConnected 断开时两端无传导路径
func (sw *Switch) LeadsAreConnected(i, j int) bool { return sw.Closed }

// Stamp 闭合时加盖 0V 约束
func (sw *Switch) Stamp(s types.Stamp) {
	if sw.Closed {
		s.StampVoltageSource(sw.GetLeadNode(0), sw.GetLeadNode(1), sw.VoltSource[0], 0)
	}
}
