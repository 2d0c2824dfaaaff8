package element

import "cirsim/types"

// ChipPin 芯片引脚描述
type ChipPin struct {
	Name      string // 引脚名称
	Output    bool   // 是否为输出引脚
	Value     bool   // 当前逻辑值
	lastValue bool   // 上次驱动的逻辑值，用于收敛判定
	ordinal   int    // 输出引脚对应的元件内电压源序号
}

// Chip 数字芯片基座：输入引脚按阈值读取电压，
// 输出引脚由内部对地电压源驱动。具体芯片嵌入本结构并实现
// Stamp/DoStep（通常为 StampOutputs 加自身逻辑）
type Chip struct {
	types.ElementBase
	Pins        []ChipPin // 引脚表
	HighVoltage float64   // 高电平电压(V)
}

// NewChip 按引脚表创建芯片基座
func NewChip(pins []ChipPin) Chip {
	return Chip{
		ElementBase: types.NewElementBase(len(pins)),
		Pins:        pins,
		HighVoltage: 5,
	}
}

// NonLinear 芯片参与牛顿迭代：输出在同一时间步内随输入稳定
func (c *Chip) NonLinear() bool { return true }

// VoltageSourceCount 每个输出引脚占用一个电压源
func (c *Chip) VoltageSourceCount() int {
	n := 0
	for i := range c.Pins {
		if c.Pins[i].Output {
			n++
		}
	}
	return n
}

// LeadsAreConnected 芯片引脚之间无传导路径
func (c *Chip) LeadsAreConnected(i, j int) bool { return false }

// LeadIsGround 输出引脚经内部电压源接地
func (c *Chip) LeadIsGround(i int) bool {
	return i >= 0 && i < len(c.Pins) && c.Pins[i].Output
}

// StampOutputs 为每个输出引脚加盖可变电压源
func (c *Chip) StampOutputs(s types.Stamp) {
	ordinal := 0
	for i := range c.Pins {
		if !c.Pins[i].Output {
			continue
		}
		c.Pins[i].ordinal = ordinal
		s.StampVoltageSourceVariable(0, c.GetLeadNode(i), c.VoltSource[ordinal])
		ordinal++
	}
}

// ReadInputs 按半高阈值读取输入引脚逻辑值
func (c *Chip) ReadInputs() {
	for i := range c.Pins {
		if !c.Pins[i].Output {
			c.Pins[i].Value = c.LeadVoltage(i) > c.HighVoltage/2
		}
	}
}

// DriveOutputs 按输出逻辑值更新电压源右侧。
// 输出翻转说明解尚未稳定，标记不收敛再迭代一轮
func (c *Chip) DriveOutputs(s types.Stamp) {
	for i := range c.Pins {
		if !c.Pins[i].Output {
			continue
		}
		if c.Pins[i].Value != c.Pins[i].lastValue {
			c.Pins[i].lastValue = c.Pins[i].Value
			s.SetConverged()
		}
		v := 0.0
		if c.Pins[i].Value {
			v = c.HighVoltage
		}
		s.UpdateVoltageSource(0, c.GetLeadNode(i), c.VoltSource[c.Pins[i].ordinal], v)
	}
}

// HalfAdder 半加器芯片。引脚: 0=A, 1=B, 2=Sum, 3=Carry
type HalfAdder struct {
	Chip
}

// NewHalfAdder 创建半加器
func NewHalfAdder() *HalfAdder {
	return &HalfAdder{Chip: NewChip([]ChipPin{
		{Name: "A"},
		{Name: "B"},
		{Name: "S", Output: true},
		{Name: "C", Output: true},
	})}
}

// Stamp 加盖输出电压源
func (h *HalfAdder) Stamp(s types.Stamp) { h.StampOutputs(s) }

// DoStep 半加器逻辑: S = A xor B, C = A and B
func (h *HalfAdder) DoStep(s types.Stamp) {
	h.ReadInputs()
	a, b := h.Pins[0].Value, h.Pins[1].Value
	h.Pins[2].Value = a != b
	h.Pins[3].Value = a && b
	h.DriveOutputs(s)
}

// LogicOutput 逻辑电平探针
type LogicOutput struct {
	types.ElementBase
	Threshold float64 // 判定阈值(V)
}

// NewLogicOutput 创建探针，默认阈值 2.5V
func NewLogicOutput() *LogicOutput {
	return &LogicOutput{ElementBase: types.NewElementBase(1), Threshold: 2.5}
}

// Stamp 探针不贡献矩阵
func (l *LogicOutput) Stamp(s types.Stamp) {}

// High 当前是否为高电平
func (l *LogicOutput) High() bool { return l.LeadVoltage(0) > l.Threshold }
