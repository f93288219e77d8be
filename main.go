package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"log"
	"os"
	"tlg/app"
	"tlg/config"
	"tlg/metrics"
)

var rootCmd = &cobra.Command{
	Use:   "tlg [command...]",
	Short: "tlg 把命令转发到test labs网关执行 流式回显输出",
	Long:  `tlg 把命令转发到test labs网关执行 流式回显输出`,
	Run: func(cmd *cobra.Command, args []string) {
		//1.加载配置
		config.InitConfig(configFile)
		//2.启动监控 默认关着 配了端口才起
		if config.Conf.MetricPort > 0 {
			go func() {
				err := metrics.Serve(fmt.Sprintf("0.0.0.0:%d", config.Conf.MetricPort))
				if err != nil {
					panic(err)
				}
			}()
		}
		//3.转发命令 退出码跟着调用结果走
		os.Exit(app.Run(context.Background(), workdir, args))
	},
}

var (
	configFile string
	workdir    string
)

func init() {
	rootCmd.Flags().StringVar(&configFile, "config", "application.yml", "app config yml file")
	rootCmd.Flags().StringVar(&workdir, "workdir", "", "remote workdir, default from config")
	//第一个位置参数之后全部原样转发 被转发命令自己的flag不在这里解析
	rootCmd.Flags().SetInterspersed(false)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
