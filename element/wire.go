package element

import "cirsim/types"

// Wire 理想导线：零电压约束的电压源，电流由求解器分发
type Wire struct {
	types.ElementBase
}

// NewWire 创建导线
func NewWire() *Wire {
	return &Wire{ElementBase: types.NewElementBase(2)}
}

// IsWire 理想导线
func (w *Wire) IsWire() bool { return true }

// VoltageSourceCount 电压源数量
func (w *Wire) VoltageSourceCount() int { return 1 }

// Stamp 加盖 0V 电压约束
func (w *Wire) Stamp(s types.Stamp) {
	s.StampVoltageSource(w.GetLeadNode(0), w.GetLeadNode(1), w.VoltSource[0], 0)
}
