package element

import "cirsim/types"

// Inductor 电感，梯形法伴随模型：等效电阻 2L/dt 并联历史电流源
type Inductor struct {
	types.ElementBase
	Inductance     float64 // 感值(H)
	compResistance float64 // 伴随模型等效电阻
	curSourceValue float64 // 本步历史电流源值
}

// NewInductor 创建电感
func NewInductor(l float64) *Inductor {
	return &Inductor{ElementBase: types.NewElementBase(2), Inductance: l}
}

// Stamp 加盖等效电阻，历史电流源的右侧值每步变化
func (l *Inductor) Stamp(s types.Stamp) {
	l.compResistance = 2 * l.Inductance / s.TimeStep()
	s.StampResistor(l.GetLeadNode(0), l.GetLeadNode(1), l.compResistance)
	s.MarkRightSideChanging(l.GetLeadNode(0))
	s.MarkRightSideChanging(l.GetLeadNode(1))
}

// StartIteration 由上一步端电压与电流预计算历史电流源
func (l *Inductor) StartIteration(s types.Stamp) {
	voltdiff := l.LeadVoltage(0) - l.LeadVoltage(1)
	l.curSourceValue = voltdiff/l.compResistance + l.Current
}

// DoStep 注入历史电流
func (l *Inductor) DoStep(s types.Stamp) {
	s.StampCurrentSource(l.GetLeadNode(0), l.GetLeadNode(1), l.curSourceValue)
}

// CalculateCurrent 伴随模型电流
func (l *Inductor) CalculateCurrent() {
	if l.compResistance > 0 {
		voltdiff := l.LeadVoltage(0) - l.LeadVoltage(1)
		l.Current = voltdiff/l.compResistance + l.curSourceValue
	}
}

// Reset 电流清零（无电流回路时由校验器调用）
func (l *Inductor) Reset() {
	l.ElementBase.Reset()
	l.curSourceValue = 0
}
