package debug

import (
	"bytes"
	"path/filepath"
	"testing"

	"cirsim/mna"
)

// buildScopes 构造两个简单的采样缓冲
func buildScopes() []*mna.ScopeBuffer {
	b1 := &mna.ScopeBuffer{}
	b2 := &mna.ScopeBuffer{}
	for i := 0; i < 4; i++ {
		t := float64(i) * 5e-6
		b1.Frames = append(b1.Frames, mna.ScopeFrame{Time: t, Volts: []float64{float64(i)}, Current: float64(i) * 1e-3})
		b2.Frames = append(b2.Frames, mna.ScopeFrame{Time: t, Volts: []float64{-float64(i)}, Current: 0})
	}
	return []*mna.ScopeBuffer{b1, b2}
}

// TestFromScopes 缓冲整理: 序列名称、长度与时间轴
func TestFromScopes(t *testing.T) {
	r := FromScopes(buildScopes(), []string{"cap", "load"})
	if len(r.Time) != 4 {
		t.Fatalf("时间轴长度不正确: %d", len(r.Time))
	}
	for _, name := range []string{"cap.V", "cap.I", "load.V", "load.I"} {
		if len(r.Series[name]) != 4 {
			t.Errorf("序列 %s 长度不正确: %d", name, len(r.Series[name]))
		}
	}
	if r.Series["cap.V"][3] != 3 {
		t.Errorf("cap.V[3] = %v, 期望 3", r.Series["cap.V"][3])
	}
	if r.Series["load.V"][2] != -2 {
		t.Errorf("load.V[2] = %v, 期望 -2", r.Series["load.V"][2])
	}
}

// TestChartsRender echarts 渲染输出非空HTML
func TestChartsRender(t *testing.T) {
	r := FromScopes(buildScopes(), []string{"cap", "load"})
	ch := &Charts{Record: *r}
	var buf bytes.Buffer
	if err := ch.Render(&buf); err != nil {
		t.Fatalf("渲染失败: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("渲染输出为空")
	}
}

// TestSavePlot gonum/plot 波形图输出
func TestSavePlot(t *testing.T) {
	r := FromScopes(buildScopes(), []string{"cap", "load"})
	path := filepath.Join(t.TempDir(), "scope.png")
	if err := r.SavePlot(path); err != nil {
		t.Fatalf("保存波形图失败: %v", err)
	}
}
