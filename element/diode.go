package element

import (
	"math"

	"cirsim/types"
)

// Diode PN结二极管，肖克利方程的牛顿线性化模型。
// 每次子迭代围绕当前解重新加盖雅可比贡献，
// 电压步长限制防止指数溢出导致的发散
type Diode struct {
	types.ElementBase
	SatCurrent   float64 // 反向饱和电流 Is (A)
	EmissionCoef float64 // 发射系数 N

	vscale       float64 // 尺度电压 N*Vt
	vdcoef       float64 // 1/(N*Vt)
	vcrit        float64 // 临界电压，超过则限制步长
	lastVoltDiff float64 // 上次迭代端电压差
}

// NewDiode 创建二极管（默认模型）
func NewDiode() *Diode {
	d := &Diode{
		ElementBase:  types.NewElementBase(2),
		SatCurrent:   1.7e-7,
		EmissionCoef: 2,
	}
	d.setup()
	return d
}

// setup 由模型参数推导迭代用系数
func (d *Diode) setup() {
	d.vscale = d.EmissionCoef * VT
	d.vdcoef = 1 / d.vscale
	// 临界电压：电流达到 vscale/(sqrt(2)*Is) 倍饱和电流处
	d.vcrit = d.vscale * math.Log(d.vscale/(math.Sqrt2*d.SatCurrent))
}

// NonLinear 非线性元件
func (d *Diode) NonLinear() bool { return true }

// Stamp 标记两端节点行为非线性行
func (d *Diode) Stamp(s types.Stamp) {
	s.StampNonLinear(d.GetLeadNode(0))
	s.StampNonLinear(d.GetLeadNode(1))
}

// DoStep 围绕当前解线性化并加盖等效电导与电流源
func (d *Diode) DoStep(s types.Stamp) {
	voltdiff := d.LeadVoltage(0) - d.LeadVoltage(1)
	if math.Abs(voltdiff-d.lastVoltDiff) > 0.01 {
		s.SetConverged()
	}
	voltdiff = d.limitStep(s, voltdiff, d.lastVoltDiff)
	d.lastVoltDiff = voltdiff

	// 并联微小电导防止奇异矩阵，收敛困难时逐渐增大
	gmin := d.SatCurrent * 0.01
	if gmin < 1e-12 {
		gmin = 1e-12
	}
	if s.SubIter() > 100 {
		gmin = math.Exp(-9 * math.Ln10 * (1 - float64(s.SubIter())/3000.0))
	}

	eval := math.Exp(voltdiff * d.vdcoef)
	geq := d.vdcoef*d.SatCurrent*eval + gmin
	nc := (eval-1)*d.SatCurrent - geq*voltdiff
	s.StampConductance(d.GetLeadNode(0), d.GetLeadNode(1), geq)
	s.StampCurrentSource(d.GetLeadNode(0), d.GetLeadNode(1), nc)
}

// limitStep 限制电压步长：电流变化超过 e^2 倍时按上次线性化模型回推
func (d *Diode) limitStep(s types.Stamp, vnew, vold float64) float64 {
	if vnew > d.vcrit && math.Abs(vnew-vold) > d.vscale+d.vscale {
		if vold > 0 {
			arg := 1 + (vnew-vold)/d.vscale
			if arg > 0 {
				vnew = vold + d.vscale*math.Log(arg)
			} else {
				vnew = d.vcrit
			}
		} else {
			vnew = d.vscale * math.Log(vnew/d.vscale)
		}
		s.SetConverged()
	}
	return vnew
}

// CalculateCurrent 肖克利方程电流
func (d *Diode) CalculateCurrent() {
	voltdiff := d.LeadVoltage(0) - d.LeadVoltage(1)
	d.Current = d.SatCurrent * (math.Exp(voltdiff*d.vdcoef) - 1)
}

// Reset 复位迭代状态
func (d *Diode) Reset() {
	d.ElementBase.Reset()
	d.lastVoltDiff = 0
}
