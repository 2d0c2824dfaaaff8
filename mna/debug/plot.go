package debug

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// SavePlot 把记录渲染为波形图文件（按扩展名输出 png/svg/pdf）
func (r *Record) SavePlot(path string) error {
	p := plot.New()
	p.Title.Text = "仿真波形"
	p.X.Label.Text = "t (s)"
	p.Y.Label.Text = "V / A"
	p.Add(plotter.NewGrid())

	for i, name := range r.Names {
		values := r.Series[name]
		xys := make(plotter.XYs, len(values))
		for j, v := range values {
			if j < len(r.Time) {
				xys[j].X = r.Time[j]
			}
			xys[j].Y = v
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(name, line)
	}
	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
