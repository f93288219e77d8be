package tlgError

import (
	"errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Error 远程调用失败 Code就是grpc状态码的数值 也是进程退出码
type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func NewError(code int, err error) *Error {
	return &Error{
		Code: code,
		Err:  err,
	}
}

// GrpcError 转成线上传输的status错误 测试网关用它按脚本下发失败
func GrpcError(err *Error) error {
	return status.Error(codes.Code(err.Code), err.Err.Error())
}

// ToError 从调用失败里取回状态码 非status错误会落到Unknown
func ToError(err error) *Error {
	fromError, _ := status.FromError(err)
	return NewError(int(fromError.Code()), errors.New(fromError.Message()))
}
