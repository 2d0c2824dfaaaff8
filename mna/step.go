package mna

import (
	"math"

	"cirsim/maths"
	"cirsim/types"
)

// runStep 推进一个时间步：时间步开始回调、牛顿子迭代
// （重置右侧/矩阵、元件 DoStep、分解求解、结果分发、收敛判定）、
// 时间推进与采样。线性电路单次求解后直接退出迭代
func (cir *Circuit) runStep() {
	for _, ce := range cir.elements {
		ce.StartIteration(cir)
	}

	var subiter int
	for subiter = 0; subiter < types.SubIterLimit; subiter++ {
		cir.converged = true
		cir.subIter = subiter
		copy(cir.circuitRightSide, cir.origRightSide)
		if cir.circuitNonLinear {
			cir.origMatrix.CopyTo(cir.circuitMatrix)
		}

		for _, ce := range cir.elements {
			ce.DoStep(cir)
		}
		if cir.stopMessage != "" {
			return
		}

		if cir.circuitMatrix.HasBadEntry() {
			cir.stop("NaN/Infinite matrix!", nil)
			return
		}

		if cir.circuitNonLinear {
			// 完整通过一轮无元件报不收敛即认为收敛，
			// 首轮除外（此时解尚未分发）
			if cir.converged && subiter > 0 {
				break
			}
			if !maths.LuFactor(cir.circuitMatrix, cir.circuitMatrixSize, cir.circuitPermute) {
				cir.stop("Singular matrix!", nil)
				return
			}
		}
		maths.LuSolve(cir.circuitMatrix, cir.circuitMatrixSize, cir.circuitPermute, cir.circuitRightSide)

		// 按完整（化简前）系统逐列分发结果：
		// 常量行取存储值，其余行从压缩解向量按 MapCol 取值
		bad := false
		for j := 0; j < cir.circuitMatrixFullSize; j++ {
			ri := cir.circuitRowInfo[j]
			var res float64
			if ri.Type == RowConst {
				res = ri.Value
			} else {
				res = cir.circuitRightSide[ri.MapCol]
			}
			if math.IsNaN(res) {
				cir.converged = false
				bad = true
				break
			}
			if j < len(cir.nodeList)-1 {
				// 普通节点：广播电压到连接在该节点上的所有引脚
				cn := cir.nodeList[j+1]
				for _, link := range cn.links {
					link.elm.SetLeadVoltage(link.pin, res)
				}
			} else {
				// 电压源行：分发支路电流
				ji := j - (len(cir.nodeList) - 1)
				cir.voltageSources[ji].SetCurrent(ji, res)
			}
		}
		if !bad {
			for _, ce := range cir.elements {
				ce.CalculateCurrent()
			}
		}

		if !cir.circuitNonLinear {
			break
		}
	}
	if subiter == types.SubIterLimit {
		cir.stop("Convergence failed!", nil)
		return
	}

	// 推进时间，12位小数取整抑制累积漂移
	cir.time = math.Round((cir.time+cir.timeStep)*1e12) / 1e12

	for _, ce := range cir.elements {
		ce.StepFinished(cir)
	}

	// 观察采样
	for _, sc := range cir.scopes {
		sc.Frames = append(sc.Frames, cir.GetScopeFrame(sc.Elm))
	}
}
