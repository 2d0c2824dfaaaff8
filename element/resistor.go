package element

import "cirsim/types"

// Resistor 线性电阻
type Resistor struct {
	types.ElementBase
	Resistance float64 // 阻值(Ω)
}

// NewResistor 创建电阻
func NewResistor(r float64) *Resistor {
	return &Resistor{ElementBase: types.NewElementBase(2), Resistance: r}
}

// Stamp 加盖电导贡献
func (r *Resistor) Stamp(s types.Stamp) {
	s.StampResistor(r.GetLeadNode(0), r.GetLeadNode(1), r.Resistance)
}

// CalculateCurrent 欧姆定律
func (r *Resistor) CalculateCurrent() {
	r.Current = (r.LeadVoltage(0) - r.LeadVoltage(1)) / r.Resistance
}
