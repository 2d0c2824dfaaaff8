package mna

import (
	"cirsim/element"
	"cirsim/maths"
	"cirsim/types"
)

// pathInfo 解析后图上的深度优先路径搜索。
// pathType 限定允许穿越的元件集合，firstElm 为被检元件自身（排除）
type pathInfo struct {
	cir      *Circuit
	pathType types.PathType
	dest     types.NodeID
	firstElm types.ElementFace
	used     []bool
}

// newPathInfo 创建路径搜索
func newPathInfo(cir *Circuit, pt types.PathType, firstElm types.ElementFace, dest types.NodeID) *pathInfo {
	return &pathInfo{
		cir:      cir,
		pathType: pt,
		dest:     dest,
		firstElm: firstElm,
		used:     make([]bool, len(cir.nodeList)),
	}
}

// findPath 从 n1 向 dest 搜索，depth 为剩余深度（负值不限深）。
// used 标记防止重访，回溯时清除
func (p *pathInfo) findPath(n1 types.NodeID, depth int) bool {
	if n1 == p.dest {
		return true
	}
	if depth == 0 {
		return false
	}
	if depth > 0 {
		depth--
	}
	if p.used[n1] {
		return false
	}
	p.used[n1] = true
	for _, ce := range p.cir.elements {
		if ce == p.firstElm {
			continue
		}
		switch p.pathType {
		case types.PathInduct:
			// 电流源强制支路电流，不可作为电感的电流回路
			if _, ok := ce.(*element.CurrentSource); ok {
				continue
			}
		case types.PathVoltage:
			if !(ce.IsWire() || element.IsVoltageElm(ce)) {
				continue
			}
		case types.PathShort:
			if !ce.IsWire() {
				continue
			}
		case types.PathCapV:
			_, isCap := ce.(*element.Capacitor)
			if !(ce.IsWire() || isCap || element.IsVoltageElm(ce)) {
				continue
			}
		}
		base := ce.Base()
		if n1 == 0 {
			// 当前在地节点：允许借道任何接地引脚，
			// 地总线无需建模为边即可参与路径
			for j := 0; j < ce.LeadCount(); j++ {
				if ce.LeadIsGround(j) && p.findPath(base.GetLeadNode(j), depth) {
					p.used[n1] = false
					return true
				}
			}
		}
		j := 0
		for ; j < ce.LeadCount(); j++ {
			if base.GetLeadNode(j) == n1 {
				break
			}
		}
		if j == ce.LeadCount() {
			continue
		}
		if ce.LeadIsGround(j) && p.findPath(0, depth) {
			p.used[n1] = false
			return true
		}
		if p.pathType == types.PathInduct {
			// 并联电感结构：只沿电流一致的电感继续
			if _, ok := ce.(*element.Inductor); ok {
				c := ce.GetCurrent()
				if j == 0 {
					c = -c
				}
				if maths.Abs(c-p.firstElm.GetCurrent()) > types.InductCurrentTol {
					continue
				}
			}
		}
		for k := 0; k < ce.LeadCount(); k++ {
			if j == k {
				continue
			}
			if ce.LeadsAreConnected(j, k) && p.findPath(base.GetLeadNode(k), depth) {
				p.used[n1] = false
				return true
			}
		}
	}
	p.used[n1] = false
	return false
}

// validate 解析期校验：电感/电流源的电流回路、
// 电压源与导线的零电阻回路、被短接或无电阻回路中的电容。
// 返回 false 表示发生致命错误
func (cir *Circuit) validate() bool {
	for _, ce := range cir.elements {
		base := ce.Base()
		if _, ok := ce.(*element.Inductor); ok {
			fpi := newPathInfo(cir, types.PathInduct, ce, base.GetLeadNode(1))
			// 先做深度5的限界搜索避免大电路上的减速，失败后退化为不限深
			if !fpi.findPath(base.GetLeadNode(0), 5) && !fpi.findPath(base.GetLeadNode(0), -1) {
				ce.Reset()
			}
		}
		if _, ok := ce.(*element.CurrentSource); ok {
			fpi := newPathInfo(cir, types.PathInduct, ce, base.GetLeadNode(1))
			if !fpi.findPath(base.GetLeadNode(0), -1) {
				cir.stop("No path for current source!", ce)
				return false
			}
		}
		if (element.IsVoltageElm(ce) && ce.LeadCount() == 2) || ce.IsWire() {
			fpi := newPathInfo(cir, types.PathVoltage, ce, base.GetLeadNode(1))
			if fpi.findPath(base.GetLeadNode(0), -1) {
				cir.stop("Voltage source/wire loop with no resistance!", ce)
				return false
			}
		}
		if _, ok := ce.(*element.Capacitor); ok {
			fpi := newPathInfo(cir, types.PathShort, ce, base.GetLeadNode(1))
			if fpi.findPath(base.GetLeadNode(0), -1) {
				// 被导线短接：放电复位后继续
				ce.Reset()
			} else {
				fpi = newPathInfo(cir, types.PathCapV, ce, base.GetLeadNode(1))
				if fpi.findPath(base.GetLeadNode(0), -1) {
					cir.stop("Capacitor loop with no resistance!", ce)
					return false
				}
			}
		}
	}
	return true
}
