package errs

var (
	SystemError              = ErrorCode{Code: 518001, Msg: "系统错误"}
	InvalidPayment           = ErrorCode{Code: 418001, Msg: "支付参数非法"}
	PaymentNotFound          = ErrorCode{Code: 418002, Msg: "支付不存在"}
	InvalidTransition        = ErrorCode{Code: 418003, Msg: "支付状态不允许该操作"}
	OrderNotPayable          = ErrorCode{Code: 418004, Msg: "订单当前不能支付"}
	AmountMismatch           = ErrorCode{Code: 418005, Msg: "支付金额和订单金额不一致"}
	ActivePaymentExists      = ErrorCode{Code: 418006, Msg: "订单已经有进行中的支付"}
	PaymentMethodUnavailable = ErrorCode{Code: 418007, Msg: "门店不支持该支付方式"}
	ProviderFailed           = ErrorCode{Code: 418008, Msg: "支付渠道调用失败"}
	QRCodeNotReady           = ErrorCode{Code: 418009, Msg: "支付二维码还没有生成"}
	OrderNotFound            = ErrorCode{Code: 418010, Msg: "订单不存在"}
	OrderNotCancellable      = ErrorCode{Code: 418011, Msg: "订单当前不能取消"}
	PaymentInProgress        = ErrorCode{Code: 418012, Msg: "订单的支付正在进行中，请稍后再取消"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
