package element

import "cirsim/types"

// Capacitor 电容，梯形法伴随模型：等效电阻 dt/(2C) 并联历史电流源。
// 梯形法比后向欧拉更精确，但 RC 远小于步长时可能振铃
type Capacitor struct {
	types.ElementBase
	Capacitance    float64 // 容值(F)
	compResistance float64 // 伴随模型等效电阻
	voltDiff       float64 // 上一步端电压差
	curSourceValue float64 // 本步历史电流源值
}

// NewCapacitor 创建电容
func NewCapacitor(c float64) *Capacitor {
	return &Capacitor{ElementBase: types.NewElementBase(2), Capacitance: c}
}

// Stamp 加盖等效电阻，历史电流源的右侧值每步变化
func (c *Capacitor) Stamp(s types.Stamp) {
	c.compResistance = s.TimeStep() / (2 * c.Capacitance)
	s.StampResistor(c.GetLeadNode(0), c.GetLeadNode(1), c.compResistance)
	s.MarkRightSideChanging(c.GetLeadNode(0))
	s.MarkRightSideChanging(c.GetLeadNode(1))
}

// StartIteration 由上一步端电压与电流预计算历史电流源
func (c *Capacitor) StartIteration(s types.Stamp) {
	c.curSourceValue = -c.voltDiff/c.compResistance - c.Current
}

// DoStep 注入历史电流
func (c *Capacitor) DoStep(s types.Stamp) {
	s.StampCurrentSource(c.GetLeadNode(0), c.GetLeadNode(1), c.curSourceValue)
}

// CalculateCurrent 伴随模型电流
func (c *Capacitor) CalculateCurrent() {
	if c.compResistance > 0 {
		voltdiff := c.LeadVoltage(0) - c.LeadVoltage(1)
		c.Current = voltdiff/c.compResistance + c.curSourceValue
	}
}

// StepFinished 记录端电压差供下一步使用
func (c *Capacitor) StepFinished(s types.Stamp) {
	c.voltDiff = c.LeadVoltage(0) - c.LeadVoltage(1)
}

// Reset 放电复位
func (c *Capacitor) Reset() {
	c.ElementBase.Reset()
	c.voltDiff = 0
	c.curSourceValue = 0
}
