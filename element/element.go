// Package element 提供标准元件库：导线、接地、电源、阻容感、二极管、
// 开关与数字芯片。元件只通过 types.Stamp 内核与引擎交互，
// 自身状态（电压、电流、伴随模型历史）由元件持有
package element

import "cirsim/types"

// 电源波形类型
const (
	WfDC = iota // 直流波形
	WfAC        // 交流波形
)

// VT 室温热电压 kT/q (V)
const VT = 0.025865

// 接口完整性检查
var (
	_ types.ElementFace = (*Wire)(nil)
	_ types.ElementFace = (*Ground)(nil)
	_ types.ElementFace = (*Rail)(nil)
	_ types.ElementFace = (*LogicInput)(nil)
	_ types.ElementFace = (*Voltage)(nil)
	_ types.ElementFace = (*CurrentSource)(nil)
	_ types.ElementFace = (*Resistor)(nil)
	_ types.ElementFace = (*Capacitor)(nil)
	_ types.ElementFace = (*Inductor)(nil)
	_ types.ElementFace = (*Diode)(nil)
	_ types.ElementFace = (*Switch)(nil)
	_ types.ElementFace = (*HalfAdder)(nil)
	_ types.ElementFace = (*LogicOutput)(nil)
)

// IsVoltageElm 是否属于电压源族（独立电压源及其单端变体）。
// 电压源/导线回路与电容回路检查以此判断可穿越元件
func IsVoltageElm(e types.ElementFace) bool {
	switch e.(type) {
	case *Voltage, *Rail, *LogicInput:
		return true
	}
	return false
}

// IsRailElm 是否为单端对地电压源（轨元件）
func IsRailElm(e types.ElementFace) bool {
	switch e.(type) {
	case *Rail, *LogicInput:
		return true
	}
	return false
}
