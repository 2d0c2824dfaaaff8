package element

import "cirsim/types"

// Rail 单端对地电压源：隐含第二端接地
type Rail struct {
	Voltage
}

// NewRail 创建轨元件
func NewRail(waveform int, maxVoltage float64) *Rail {
	r := &Rail{}
	r.ElementBase = types.NewElementBase(1)
	r.Waveform = waveform
	r.MaxVoltage = maxVoltage
	return r
}

// LeadIsGround 轨的隐含端接地
func (r *Rail) LeadIsGround(i int) bool { return true }

// Stamp 在地与所连节点之间加盖电压源
func (r *Rail) Stamp(s types.Stamp) {
	if r.Waveform == WfDC {
		s.StampVoltageSource(0, r.GetLeadNode(0), r.VoltSource[0], r.GetVoltage(0))
	} else {
		s.StampVoltageSourceVariable(0, r.GetLeadNode(0), r.VoltSource[0])
	}
}

// DoStep 时变轨更新右侧值
func (r *Rail) DoStep(s types.Stamp) {
	if r.Waveform != WfDC {
		s.UpdateVoltageSource(0, r.GetLeadNode(0), r.VoltSource[0], r.GetVoltage(s.Time()))
	}
}

// LogicInput 逻辑输入：可在仿真中切换高低电平的单端电压源
type LogicInput struct {
	types.ElementBase
	High     bool    // 当前逻辑电平
	VoltHigh float64 // 高电平电压(V)
	VoltLow  float64 // 低电平电压(V)
}

// NewLogicInput 创建逻辑输入，默认 0/5V
func NewLogicInput(high bool) *LogicInput {
	return &LogicInput{
		ElementBase: types.NewElementBase(1),
		High:        high,
		VoltHigh:    5,
	}
}

// VoltageSourceCount 电压源数量
func (l *LogicInput) VoltageSourceCount() int { return 1 }

// LeadIsGround 隐含端接地
func (l *LogicInput) LeadIsGround(i int) bool { return true }

// Stamp 电平可切换，右侧标记为可变
func (l *LogicInput) Stamp(s types.Stamp) {
	s.StampVoltageSourceVariable(0, l.GetLeadNode(0), l.VoltSource[0])
}

// DoStep 按当前电平更新右侧值
func (l *LogicInput) DoStep(s types.Stamp) {
	v := l.VoltLow
	if l.High {
		v = l.VoltHigh
	}
	s.UpdateVoltageSource(0, l.GetLeadNode(0), l.VoltSource[0], v)
}
