package errs

var (
	SystemError       = ErrorCode{Code: 517001, Msg: "系统错误"}
	InvalidPromotion  = ErrorCode{Code: 417001, Msg: "促销活动配置非法"}
	PromotionNotFound = ErrorCode{Code: 417002, Msg: "促销活动不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
