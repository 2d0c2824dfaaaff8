package element

import (
	"math"

	"cirsim/types"
)

// Voltage 两端独立电压源，支持直流与正弦波形。
// 正弦波形在每次子迭代中通过 UpdateVoltageSource 更新右侧值
type Voltage struct {
	types.ElementBase
	Waveform     int     // 波形类型 WfDC/WfAC
	MaxVoltage   float64 // 幅值(V)
	Bias         float64 // 偏置电压(V)
	Frequency    float64 // 频率(Hz)
	PhaseShift   float64 // 相位偏移(rad)
	FreqTimeZero float64 // 频率时间零点(s)
}

// NewVoltage 创建电压源。引脚0为负端，引脚1为正端
func NewVoltage(waveform int, maxVoltage float64) *Voltage {
	return &Voltage{
		ElementBase: types.NewElementBase(2),
		Waveform:    waveform,
		MaxVoltage:  maxVoltage,
	}
}

// VoltageSourceCount 电压源数量
func (v *Voltage) VoltageSourceCount() int { return 1 }

// GetVoltage 指定时刻的源电压
func (v *Voltage) GetVoltage(t float64) float64 {
	if v.Waveform == WfDC {
		return v.MaxVoltage + v.Bias
	}
	w := 2*math.Pi*(t-v.FreqTimeZero)*v.Frequency + v.PhaseShift
	return math.Sin(w)*v.MaxVoltage + v.Bias
}

// Stamp 直流源直接写入电压值，时变源标记右侧可变
func (v *Voltage) Stamp(s types.Stamp) {
	if v.Waveform == WfDC {
		s.StampVoltageSource(v.GetLeadNode(0), v.GetLeadNode(1), v.VoltSource[0], v.GetVoltage(0))
	} else {
		s.StampVoltageSourceVariable(v.GetLeadNode(0), v.GetLeadNode(1), v.VoltSource[0])
	}
}

// DoStep 时变源更新右侧值
func (v *Voltage) DoStep(s types.Stamp) {
	if v.Waveform != WfDC {
		s.UpdateVoltageSource(v.GetLeadNode(0), v.GetLeadNode(1), v.VoltSource[0], v.GetVoltage(s.Time()))
	}
}
