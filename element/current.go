package element

import "cirsim/types"

// CurrentSource 独立电流源，电流从引脚0流向引脚1。
// 路径搜索不允许穿越电流源，无回路时为致命错误
type CurrentSource struct {
	types.ElementBase
	Value float64 // 电流值(A)
}

// NewCurrentSource 创建电流源
func NewCurrentSource(i float64) *CurrentSource {
	return &CurrentSource{ElementBase: types.NewElementBase(2), Value: i}
}

// Stamp 右侧电流贡献
func (c *CurrentSource) Stamp(s types.Stamp) {
	s.StampCurrentSource(c.GetLeadNode(0), c.GetLeadNode(1), c.Value)
}

// CalculateCurrent 支路电流即源值
func (c *CurrentSource) CalculateCurrent() {
	c.Current = c.Value
}
