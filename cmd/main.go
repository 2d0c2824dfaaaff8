package main

import (
	"fmt"
	"os"

	"cirsim/element"
	"cirsim/mna"
	"cirsim/mna/debug"
)

func main() {
	// RC充电电路: 5V电池 → 1kΩ → 1µF → 地
	cir := mna.NewCircuit()
	bat := element.NewVoltage(element.WfDC, 5)
	r := element.NewResistor(1000)
	c := element.NewCapacitor(1e-6)
	gnd := element.NewGround()
	cir.AddElement(bat)
	cir.AddElement(r)
	cir.AddElement(c)
	cir.AddElement(gnd)
	cir.Connect(mna.Lead{Elm: bat, Pin: 1}, mna.Lead{Elm: r, Pin: 0})
	cir.Connect(mna.Lead{Elm: r, Pin: 1}, mna.Lead{Elm: c, Pin: 0})
	cir.Connect(mna.Lead{Elm: c, Pin: 1}, mna.Lead{Elm: bat, Pin: 0})
	cir.Connect(mna.Lead{Elm: bat, Pin: 0}, mna.Lead{Elm: gnd, Pin: 0})

	capBuf := cir.Watch(c)
	for i := 0; i < 1000; i++ {
		cir.Update(cir.TimeStep())
		if cir.ErrorMessage() != "" {
			fmt.Fprintln(os.Stderr, "仿真失败:", cir.ErrorMessage())
			os.Exit(1)
		}
	}
	fmt.Printf("RC充电 t=%.4gs 电容电压=%.4fV 电流=%.4gA\n",
		cir.Time(), c.LeadVoltage(0)-c.LeadVoltage(1), c.GetCurrent())

	// 二极管整流电路: 5V/1kHz正弦 → 二极管 → 1kΩ → 地
	rect := mna.NewCircuit()
	src := element.NewRail(element.WfAC, 5)
	src.Frequency = 1000
	d := element.NewDiode()
	rl := element.NewResistor(1000)
	rgnd := element.NewGround()
	rect.AddElement(src)
	rect.AddElement(d)
	rect.AddElement(rl)
	rect.AddElement(rgnd)
	rect.Connect(mna.Lead{Elm: src, Pin: 0}, mna.Lead{Elm: d, Pin: 0})
	rect.Connect(mna.Lead{Elm: d, Pin: 1}, mna.Lead{Elm: rl, Pin: 0})
	rect.Connect(mna.Lead{Elm: rl, Pin: 1}, mna.Lead{Elm: rgnd, Pin: 0})

	outBuf := rect.Watch(rl)
	for i := 0; i < 2000; i++ {
		rect.Update(rect.TimeStep())
		if rect.ErrorMessage() != "" {
			fmt.Fprintln(os.Stderr, "仿真失败:", rect.ErrorMessage())
			os.Exit(1)
		}
	}
	fmt.Printf("整流 t=%.4gs 负载电压=%.4fV\n", rect.Time(), rl.LeadVoltage(0))

	// 输出波形
	record := debug.FromScopes([]*mna.ScopeBuffer{capBuf, outBuf}, []string{"cap", "load"})
	html, err := os.Create("scope.html")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer html.Close()
	ch := &debug.Charts{Record: *record}
	if err := ch.Render(html); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := record.SavePlot("scope.png"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
