package errors

import (
	"fmt"

	"tradeledger/pkg/errors/ecode"
)

// withCode 携带业务错误码的error，可以包裹底层错误
type withCode struct {
	code  int
	msg   string
	cause error
}

func (w *withCode) Error() string {
	if w.cause != nil {
		return w.msg + ": " + w.cause.Error()
	}
	return w.msg
}

func (w *withCode) Unwrap() error { return w.cause }

// WithCode 创建一个带错误码的error
func WithCode(code int, format string, args ...interface{}) error {
	return &withCode{
		code: code,
		msg:  fmt.Sprintf(format, args...),
	}
}

// Wrap 包裹底层错误并附上错误码和描述
func Wrap(err error, code int, msg string) error {
	return &withCode{
		code:  code,
		msg:   msg,
		cause: err,
	}
}

// Wrapf 同Wrap，描述支持格式化
func Wrapf(err error, code int, format string, args ...interface{}) error {
	return &withCode{
		code:  code,
		msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// Code 取出错误链上最外层的业务错误码，普通error一律视为Unknown
func Code(err error) int {
	if err == nil {
		return ecode.Success
	}
	if w, ok := err.(*withCode); ok {
		return w.code
	}
	return ecode.Unknown
}

// DecodeErr 解析error，返回业务错误码和提示信息
// 存储层错误不向客户端透出底层错误文本
func DecodeErr(err error) (int, string) {
	if err == nil {
		return ecode.Success, ecode.Message(ecode.Success)
	}
	w, ok := err.(*withCode)
	if !ok {
		return ecode.Unknown, ecode.Message(ecode.Unknown)
	}
	switch w.code {
	case ecode.StorageErr, ecode.TransactionErr, ecode.Unknown:
		return w.code, ecode.Message(w.code)
	}
	if w.msg == "" {
		return w.code, ecode.Message(w.code)
	}
	return w.code, w.msg
}
