package errs

var (
	SystemError   = ErrorCode{Code: 519001, Msg: "系统错误"}
	OrderNotFound = ErrorCode{Code: 419001, Msg: "订单不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
