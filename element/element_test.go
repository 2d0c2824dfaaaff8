package element_test

import (
	"math"
	"testing"

	"cirsim/element"
	"cirsim/mna"
	"cirsim/types"
)

// connect 测试辅助：按引脚连接两个元件
func connect(cir *mna.Circuit, a types.ElementFace, apin int, b types.ElementFace, bpin int) {
	cir.Connect(mna.Lead{Elm: a, Pin: apin}, mna.Lead{Elm: b, Pin: bpin})
}

// TestHalfAdder 半加器真值表: 一个时间步内输出稳定
func TestHalfAdder(t *testing.T) {
	cases := []struct {
		a, b       bool
		sum, carry bool
	}{
		{false, false, false, false},
		{true, false, true, false},
		{false, true, true, false},
		{true, true, false, true},
	}
	for _, tc := range cases {
		cir := mna.NewCircuit()
		inA := element.NewLogicInput(tc.a)
		inB := element.NewLogicInput(tc.b)
		ha := element.NewHalfAdder()
		outS := element.NewLogicOutput()
		outC := element.NewLogicOutput()
		cir.AddElement(inA)
		cir.AddElement(inB)
		cir.AddElement(ha)
		cir.AddElement(outS)
		cir.AddElement(outC)
		connect(cir, inA, 0, ha, 0)
		connect(cir, inB, 0, ha, 1)
		connect(cir, ha, 2, outS, 0)
		connect(cir, ha, 3, outC, 0)

		cir.Update(cir.TimeStep())
		if cir.ErrorMessage() != "" {
			t.Fatalf("A=%v B=%v 仿真失败: %s", tc.a, tc.b, cir.ErrorMessage())
		}
		if outS.High() != tc.sum {
			t.Errorf("A=%v B=%v 和输出不正确: 期望 %v, 实际电压 %v", tc.a, tc.b, tc.sum, outS.LeadVoltage(0))
		}
		if outC.High() != tc.carry {
			t.Errorf("A=%v B=%v 进位输出不正确: 期望 %v, 实际电压 %v", tc.a, tc.b, tc.carry, outC.LeadVoltage(0))
		}
	}
}

// refLoadVoltage 参考值: 用牛顿法逐点求解 Is(e^(vd/vscale)-1) = (vin-vd)/R，
// 返回负载电压 vin-vd
func refLoadVoltage(vin, satCurrent, vdcoef, r float64) float64 {
	vd := vin
	if vin > 0.3 {
		vd = 0.5
	}
	for i := 0; i < 60; i++ {
		ex := math.Exp(vd * vdcoef)
		f := satCurrent*(ex-1) - (vin-vd)/r
		fp := satCurrent*vdcoef*ex + 1/r
		step := f / fp
		vd -= step
		if math.Abs(step) < 1e-15 {
			break
		}
	}
	return vin - vd
}

// TestDiodeRectifier 半波整流: 5V/1kHz正弦经二极管与1kΩ，
// 一个周期的负载电压积分与逐点牛顿参考解吻合到2%
func TestDiodeRectifier(t *testing.T) {
	cir := mna.NewCircuit()
	src := element.NewRail(element.WfAC, 5)
	src.Frequency = 1000
	d := element.NewDiode()
	r := element.NewResistor(1000)
	gnd := element.NewGround()
	cir.AddElement(src)
	cir.AddElement(d)
	cir.AddElement(r)
	cir.AddElement(gnd)
	connect(cir, src, 0, d, 0)
	connect(cir, d, 1, r, 0)
	connect(cir, r, 1, gnd, 0)

	vdcoef := 1 / (d.EmissionCoef * element.VT)
	dt := cir.TimeStep()
	ticks := int(math.Round(1 / (1000 * dt))) // 一个周期
	integ, refInteg := 0.0, 0.0
	for i := 0; i < ticks; i++ {
		tPrev := cir.Time() // 源在本步按推进前的时刻取值
		cir.Update(dt)
		if cir.ErrorMessage() != "" {
			t.Fatalf("第%d步仿真失败: %s", i, cir.ErrorMessage())
		}
		v := r.LeadVoltage(0)
		vin := 5 * math.Sin(2*math.Pi*1000*tPrev)
		ref := refLoadVoltage(vin, d.SatCurrent, vdcoef, 1000)
		if v > 0 {
			integ += v * dt
		}
		if ref > 0 {
			refInteg += ref * dt
		}
	}
	if refInteg <= 0 {
		t.Fatal("参考积分异常")
	}
	if math.Abs(integ-refInteg) > 0.02*refInteg {
		t.Errorf("整流积分不匹配: 期望 %v (±2%%), 实际 %v", refInteg, integ)
	}
}

// TestDiodeForward 正向导通工作点与肖克利方程一致
func TestDiodeForward(t *testing.T) {
	cir := mna.NewCircuit()
	bat := element.NewVoltage(element.WfDC, 5)
	d := element.NewDiode()
	r := element.NewResistor(1000)
	gnd := element.NewGround()
	cir.AddElement(bat)
	cir.AddElement(d)
	cir.AddElement(r)
	cir.AddElement(gnd)
	connect(cir, bat, 1, d, 0)
	connect(cir, d, 1, r, 0)
	connect(cir, r, 1, bat, 0)
	connect(cir, bat, 0, gnd, 0)

	cir.Update(cir.TimeStep())
	if cir.ErrorMessage() != "" {
		t.Fatalf("仿真失败: %s", cir.ErrorMessage())
	}
	vd := d.LeadVoltage(0) - d.LeadVoltage(1)
	vr := r.LeadVoltage(0)
	if math.Abs(vd+vr-5) > 1e-6 {
		t.Errorf("电压和不守恒: vd=%v vr=%v", vd, vr)
	}
	vdcoef := 1 / (d.EmissionCoef * element.VT)
	want := d.SatCurrent * (math.Exp(vd*vdcoef) - 1)
	got := vr / 1000
	// 收敛判定允许 0.01V 的残差，工作点按 2% 校验
	if math.Abs(got-want) > 0.02*math.Abs(want) {
		t.Errorf("工作点电流与肖克利方程不一致: 期望 %v, 实际 %v", want, got)
	}
}

// TestRLRise RL充磁: 5V/1kΩ/1H，τ=1ms，200步后电流 ≈ (V/R)(1-1/e)
func TestRLRise(t *testing.T) {
	cir := mna.NewCircuit()
	bat := element.NewVoltage(element.WfDC, 5)
	r := element.NewResistor(1000)
	l := element.NewInductor(1)
	gnd := element.NewGround()
	cir.AddElement(bat)
	cir.AddElement(r)
	cir.AddElement(l)
	cir.AddElement(gnd)
	connect(cir, bat, 1, r, 0)
	connect(cir, r, 1, l, 0)
	connect(cir, l, 1, bat, 0)
	connect(cir, bat, 0, gnd, 0)

	for i := 0; i < 200; i++ {
		cir.Update(cir.TimeStep())
		if cir.ErrorMessage() != "" {
			t.Fatalf("第%d步仿真失败: %s", i, cir.ErrorMessage())
		}
	}
	want := 5.0 / 1000 * (1 - math.Exp(-1))
	got := l.GetCurrent()
	if math.Abs(got-want) > want*0.01 {
		t.Errorf("电感电流不正确: 期望 %v (±1%%), 实际 %v", want, got)
	}
}

// TestSwitch 开关: 闭合时传导，断开后负载侧仅经电阻接地，电压接近0
func TestSwitch(t *testing.T) {
	cir := mna.NewCircuit()
	rail := element.NewRail(element.WfDC, 5)
	sw := element.NewSwitch(true)
	r := element.NewResistor(1000)
	gnd := element.NewGround()
	cir.AddElement(rail)
	cir.AddElement(sw)
	cir.AddElement(r)
	cir.AddElement(gnd)
	connect(cir, rail, 0, sw, 0)
	connect(cir, sw, 1, r, 0)
	connect(cir, r, 1, gnd, 0)

	cir.Update(cir.TimeStep())
	if cir.ErrorMessage() != "" {
		t.Fatalf("仿真失败: %s", cir.ErrorMessage())
	}
	if v := r.LeadVoltage(0); math.Abs(v-5) > 1e-9 {
		t.Errorf("闭合开关应传导: 期望 5, 实际 %v", v)
	}

	sw.Closed = false
	cir.NeedAnalyze()
	cir.Update(cir.TimeStep())
	if cir.ErrorMessage() != "" {
		t.Fatalf("断开后仿真失败: %s", cir.ErrorMessage())
	}
	if v := r.LeadVoltage(0); math.Abs(v) > 1e-3 {
		t.Errorf("断开开关后负载侧应接近0, 实际 %v", v)
	}
}

// TestACWaveform 交流轨: 节点电压跟随正弦源（源按推进前时刻取值）
func TestACWaveform(t *testing.T) {
	cir := mna.NewCircuit()
	src := element.NewRail(element.WfAC, 5)
	src.Frequency = 1000
	r := element.NewResistor(1000)
	gnd := element.NewGround()
	cir.AddElement(src)
	cir.AddElement(r)
	cir.AddElement(gnd)
	connect(cir, src, 0, r, 0)
	connect(cir, r, 1, gnd, 0)

	for i := 0; i < 50; i++ {
		tPrev := cir.Time()
		cir.Update(cir.TimeStep())
		if cir.ErrorMessage() != "" {
			t.Fatalf("第%d步仿真失败: %s", i, cir.ErrorMessage())
		}
		want := 5 * math.Sin(2*math.Pi*1000*tPrev)
		if got := r.LeadVoltage(0); math.Abs(got-want) > 1e-9 {
			t.Fatalf("第%d步电压不正确: 期望 %v, 实际 %v", i, want, got)
		}
	}
}
