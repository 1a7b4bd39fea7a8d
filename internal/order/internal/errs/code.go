package errs

var (
	SystemError        = ErrorCode{Code: 516001, Msg: "系统错误"}
	InvalidOrder       = ErrorCode{Code: 416001, Msg: "订单参数非法"}
	OrderNotFound      = ErrorCode{Code: 416002, Msg: "订单不存在"}
	MachineUnavailable = ErrorCode{Code: 416003, Msg: "机器不可用"}
	InvalidTransition  = ErrorCode{Code: 416004, Msg: "订单状态不允许该操作"}
	StoreUnavailable   = ErrorCode{Code: 416005, Msg: "门店不可用"}
	DuplicateRequest   = ErrorCode{Code: 416006, Msg: "重复请求"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
