package mna

import (
	"cirsim/element"
	"cirsim/maths"
	"cirsim/types"
)

// pushNode 追加节点并返回其索引
func (cir *Circuit) pushNode(id types.MeshID, internal bool) int {
	cir.nodeList = append(cir.nodeList, &circuitNode{id: id, internal: internal})
	return len(cir.nodeList) - 1
}

// indexOfNode 按网格ID查找节点索引，未找到返回 -1
func (cir *Circuit) indexOfNode(id types.MeshID) int {
	for i, cn := range cir.nodeList {
		if cn.id == id {
			return i
		}
	}
	return -1
}

// analyze 重建电路：解析拓扑、加盖、修补悬空节点、
// 校验路径、化简矩阵，线性电路时预先完成LU分解
func (cir *Circuit) analyze() {
	cir.analyzeFlag = false
	if len(cir.elements) == 0 {
		return
	}
	cir.stopMessage = ""
	cir.stopElm = nil
	cir.circuitMatrix = nil
	cir.nodeList = nil

	// 扫描元件：是否存在接地元件、轨元件、两端电压源
	gotGround, gotRail := false, false
	var volt types.ElementFace
	for _, ce := range cir.elements {
		if _, ok := ce.(*element.Ground); ok {
			gotGround = true
		}
		if element.IsRailElm(ce) {
			gotRail = true
		}
		if v, ok := ce.(*element.Voltage); ok && volt == nil {
			volt = v
		}
	}

	// 选择地节点：无接地元件且无轨时采用首个电压源的负端，
	// 否则分配全新ID作为节点0
	if !gotGround && !gotRail && volt != nil {
		vb := volt.Base()
		if vb.Mesh[0] == types.MeshUnassigned {
			vb.Mesh[0] = cir.nextMeshID()
		}
		cir.pushNode(vb.Mesh[0], false)
	} else {
		cir.pushNode(cir.nextMeshID(), false)
	}

	// 逐元件解析引脚，绑定节点索引，统计电压源
	vscount := 0
	cir.circuitNonLinear = false
	for _, ce := range cir.elements {
		if ce.NonLinear() {
			cir.circuitNonLinear = true
		}
		base := ce.Base()
		leads := ce.LeadCount()
		base.EnsureLeads(leads + ce.InternalLeadCount())
		base.AllocVoltSources(ce.VoltageSourceCount())
		for x := 0; x < leads; x++ {
			id := base.Mesh[x]
			if id == types.MeshUnassigned {
				// 悬空引脚分配独立节点，由悬空修补接入地
				id = cir.nextMeshID()
				base.Mesh[x] = id
			}
			idx := cir.indexOfNode(id)
			if idx == -1 {
				idx = cir.pushNode(id, false)
				ce.SetLeadNode(x, idx)
			} else {
				ce.SetLeadNode(x, idx)
				if idx == 0 {
					ce.SetLeadVoltage(x, 0)
				}
			}
			cir.nodeList[idx].links = append(cir.nodeList[idx].links, nodeLink{elm: ce, pin: x})
		}
		for x := 0; x < ce.InternalLeadCount(); x++ {
			id := cir.nextMeshID()
			base.Mesh[leads+x] = id
			idx := cir.pushNode(id, true)
			ce.SetLeadNode(leads+x, idx)
			cir.nodeList[idx].links = append(cir.nodeList[idx].links, nodeLink{elm: ce, pin: leads + x})
		}
		vscount += ce.VoltageSourceCount()
	}

	// 电压源登记表：全局编号 k 指向拥有它的元件
	cir.voltageSources = make([]types.ElementFace, vscount)
	k := 0
	for _, ce := range cir.elements {
		for j := 0; j < ce.VoltageSourceCount(); j++ {
			cir.voltageSources[k] = ce
			ce.SetVoltageSource(j, k)
			k++
		}
	}

	// 分配完整矩阵并加盖
	matrixSize := len(cir.nodeList) - 1 + vscount
	cir.circuitMatrix = maths.NewMatrix(matrixSize, matrixSize)
	cir.circuitRightSide = make([]float64, matrixSize)
	cir.circuitRowInfo = make([]*RowInfo, matrixSize)
	for i := range cir.circuitRowInfo {
		cir.circuitRowInfo[i] = &RowInfo{}
	}
	cir.circuitMatrixSize = matrixSize
	cir.circuitMatrixFullSize = matrixSize
	cir.circuitNeedsMap = false

	for _, ce := range cir.elements {
		ce.Stamp(cir)
	}

	// 悬空节点闭包修补
	cir.connectUnconnectedNodes()

	// 路径校验，致命错误时引擎空转
	if !cir.validate() {
		return
	}

	// 行化简与矩阵压缩
	if !cir.simplify() {
		return
	}

	// 备份线性贡献；线性电路预先分解
	cir.origMatrix = cir.circuitMatrix.Clone()
	cir.origRightSide = append([]float64(nil), cir.circuitRightSide...)
	cir.circuitNeedsMap = true
	if !cir.circuitNonLinear {
		if !maths.LuFactor(cir.circuitMatrix, cir.circuitMatrixSize, cir.circuitPermute) {
			cir.stop("Singular matrix!", nil)
			return
		}
	}
}

// connectUnconnectedNodes 从地节点出发，沿元件引脚间的传导关系与
// 接地引脚传播可达集合；传播停止时对首个不可达的外部节点加盖 1e8Ω
// 对地电阻（等效无穷大阻抗接地）后继续传播，内部节点不做修补
func (cir *Circuit) connectUnconnectedNodes() {
	closure := make([]bool, len(cir.nodeList))
	closure[0] = true
	changed := true
	for changed {
		changed = false
		for _, ce := range cir.elements {
			base := ce.Base()
			leads := ce.LeadCount()
			for j := 0; j < leads; j++ {
				jn := base.GetLeadNode(j)
				if !closure[jn] {
					if ce.LeadIsGround(j) {
						closure[jn] = true
						changed = true
					}
					continue
				}
				for k := 0; k < leads; k++ {
					if j == k {
						continue
					}
					kn := base.GetLeadNode(k)
					if ce.LeadsAreConnected(j, k) && !closure[kn] {
						closure[kn] = true
						changed = true
					}
				}
			}
		}
		if changed {
			continue
		}
		for i := 0; i < len(cir.nodeList); i++ {
			if !closure[i] && !cir.nodeList[i].internal {
				cir.StampResistor(0, i, types.PatchResistance)
				closure[i] = true
				changed = true
				break
			}
		}
	}
}
