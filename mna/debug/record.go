// Package debug 观察数据的离线渲染：把采样缓冲整理为按名称的时间序列，
// 输出 echarts 交互曲线或 gonum/plot 波形图。渲染在引擎主循环之外进行
package debug

import (
	"fmt"

	"cirsim/mna"
)

// Record 按名称组织的时间序列
type Record struct {
	Time   []float64
	Names  []string
	Series map[string][]float64
}

// NewRecord 创建空记录
func NewRecord() *Record {
	return &Record{Series: map[string][]float64{}}
}

// AddSeries 追加一条序列
func (r *Record) AddSeries(name string, values []float64) {
	if _, ok := r.Series[name]; !ok {
		r.Names = append(r.Names, name)
	}
	r.Series[name] = values
}

// FromScopes 把采样缓冲整理为记录。label 与缓冲一一对应，
// 每个缓冲产生电压序列（引脚0）与电流序列。时间轴取首个缓冲
func FromScopes(bufs []*mna.ScopeBuffer, labels []string) *Record {
	r := NewRecord()
	for i, sb := range bufs {
		label := fmt.Sprintf("elm%d", i)
		if i < len(labels) {
			label = labels[i]
		}
		volts := make([]float64, len(sb.Frames))
		currents := make([]float64, len(sb.Frames))
		for j, f := range sb.Frames {
			if len(f.Volts) > 0 {
				volts[j] = f.Volts[0]
			}
			currents[j] = f.Current
		}
		if i == 0 {
			r.Time = make([]float64, len(sb.Frames))
			for j, f := range sb.Frames {
				r.Time[j] = f.Time
			}
		}
		r.AddSeries(label+".V", volts)
		r.AddSeries(label+".I", currents)
	}
	return r
}
