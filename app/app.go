package app

import (
	"context"
	"fmt"
	"strings"
	"tlg/config"
	"tlg/gateway"
	"tlg/logs"
	"tlg/tlgError"
	"tlg/utils"
)

// Run 把命令转发给网关并回显流式输出 阻塞到流结束 返回进程退出码
// 失败不重试 错误打到stdout一次 退出码就是grpc状态码的数值
func Run(ctx context.Context, workdir string, args []string) int {
	//1.日志初始化 日志走stderr 不混进命令输出
	logs.InitLog(config.Conf.AppName)
	//2.workdir flag优先 没传用配置值
	wd := utils.Default(workdir, config.Conf.Gateway.Workdir)
	//3.连网关 一次进程一个连接
	client, err := gateway.NewClient(config.Conf.Gateway, config.Conf.Etcd)
	if err != nil {
		fmt.Println(err)
		return tlgError.ToError(err).Code
	}
	defer client.Close()
	//4.参数按单空格拼成一条命令 原样转发
	cmd := strings.Join(args, " ")
	if err := client.RunCommand(ctx, wd, cmd); err != nil {
		fmt.Println(err)
		return tlgError.ToError(err).Code
	}
	return 0
}
