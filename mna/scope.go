package mna

import "cirsim/types"

// ScopeFrame 单个时间步的元件采样：时刻、各引脚电压与支路电流
type ScopeFrame struct {
	Time    float64
	Volts   []float64
	Current float64
}

// ScopeBuffer 只增采样缓冲。引擎在每个成功的时间步后追加一帧，
// 缓冲按引用返回给调用方，追加只发生在引擎所在的单线程上
type ScopeBuffer struct {
	Elm    types.ElementFace
	Frames []ScopeFrame
}

// Watch 返回元件的采样缓冲，不存在时创建
func (cir *Circuit) Watch(e types.ElementFace) *ScopeBuffer {
	for _, sc := range cir.scopes {
		if sc.Elm == e {
			return sc
		}
	}
	sc := &ScopeBuffer{Elm: e}
	cir.scopes = append(cir.scopes, sc)
	return sc
}

// GetScopeFrame 当前时刻的元件采样帧
func (cir *Circuit) GetScopeFrame(e types.ElementFace) ScopeFrame {
	base := e.Base()
	volts := make([]float64, base.Volts.Len())
	for i := range volts {
		volts[i] = base.Volts.AtVec(i)
	}
	return ScopeFrame{Time: cir.time, Volts: volts, Current: e.GetCurrent()}
}
