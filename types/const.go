package types

// NodeID 节点索引：加盖操作使用 1 起始的节点编号，0 表示地节点，
// 大于等于节点总数的编号指向电压源扩展行
type NodeID = int

// VoltageID 电压源全局编号，对应矩阵中的扩展电流未知量
type VoltageID = int

// MeshID 网格节点标识：64 位全局唯一（雪花ID），仅比较相等性
type MeshID = int64

// MeshUnassigned 引脚尚未连接的标记
const MeshUnassigned MeshID = -1

// PathType 路径搜索类型，限制搜索时允许穿越的元件种类
type PathType int

// 路径搜索类型常量定义
const (
	PathInduct  PathType = iota // 电感电流回路（电流源除外全部允许）
	PathVoltage                 // 电压源/导线零电阻回路（仅导线与电压源）
	PathShort                   // 电容被导线短接（仅导线）
	PathCapV                    // 电容与电压源构成无电阻回路（导线、电容、电压源）
)

// 默认参数常量定义
const (
	DefaultTimeStep  = 5e-6  // 默认时间步长(秒)
	SubIterLimit     = 5000  // 每步最大牛顿子迭代次数
	PatchResistance  = 1e8   // 悬空节点对地修补电阻(欧姆)
	InductCurrentTol = 1e-10 // 电感路径搜索的电流匹配容差
	EqualChainLimit  = 100   // EQUAL 行链式解析的最大跳数
)
