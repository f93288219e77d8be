package config

import (
	"fmt"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"log"
	"os"
)

var Conf *Config

type Config struct {
	AppName    string      `mapstructure:"appName"`
	Log        LogConf     `mapstructure:"log"`
	MetricPort int         `mapstructure:"metricPort"`
	Gateway    GatewayConf `mapstructure:"gateway"`
	Etcd       EtcdConf    `mapstructure:"etcd"`
}

type LogConf struct {
	Level string `mapstructure:"level"`
}

// GatewayConf 网关服务的连接配置 keepalive必须和服务端部署参数一致
type GatewayConf struct {
	Host        string        `mapstructure:"host"`
	Port        int           `mapstructure:"port"`
	Workdir     string        `mapstructure:"workdir"`
	Name        string        `mapstructure:"name"`
	LoadBalance bool          `mapstructure:"loadBalance"`
	Keepalive   KeepaliveConf `mapstructure:"keepalive"`
}

func (g GatewayConf) Addr() string {
	return fmt.Sprintf("%s:%d", g.Host, g.Port)
}

// KeepaliveConf 六个探活参数 前三个作用在客户端 后三个是服务端的ping管控值
type KeepaliveConf struct {
	TimeMs                       int  `mapstructure:"timeMs"`
	TimeoutMs                    int  `mapstructure:"timeoutMs"`
	PermitWithoutCalls           bool `mapstructure:"permitWithoutCalls"`
	MaxPingsWithoutData          int  `mapstructure:"maxPingsWithoutData"`
	MinTimeBetweenPingsMs        int  `mapstructure:"minTimeBetweenPingsMs"`
	MinPingIntervalWithoutDataMs int  `mapstructure:"minPingIntervalWithoutDataMs"`
}

type EtcdConf struct {
	Addrs       []string `mapstructure:"addrs"`
	RWTimeout   int      `mapstructure:"rwTimeout"`
	DialTimeout int      `mapstructure:"dialTimeout"`
}

// Default 内置默认配置 和网关服务端的部署值保持一致
func Default() *Config {
	return &Config{
		AppName: "tlg",
		Log:     LogConf{Level: "info"},
		Gateway: GatewayConf{
			Host:    "test-labs-gateway-service",
			Port:    50051,
			Workdir: "/test_labs_gateway",
			Keepalive: KeepaliveConf{
				TimeMs:                       10000,
				TimeoutMs:                    5000,
				PermitWithoutCalls:           true,
				MaxPingsWithoutData:          0,
				MinTimeBetweenPingsMs:        10000,
				MinPingIntervalWithoutDataMs: 5000,
			},
		},
		Etcd: EtcdConf{
			RWTimeout:   3,
			DialTimeout: 3,
		},
	}
}

// InitConfig 加载配置 没有配置文件时直接用内置默认值 保证零配置可用
func InitConfig(confFile string) {
	Conf = Default()
	if confFile == "" {
		return
	}
	if _, err := os.Stat(confFile); err != nil {
		return
	}
	v := viper.New()
	v.SetConfigFile(confFile)
	v.WatchConfig()
	v.OnConfigChange(func(in fsnotify.Event) {
		log.Println("config file changed")
		err := v.Unmarshal(&Conf)
		if err != nil {
			panic(fmt.Errorf("Unmarshal change config data,err:%v \n", err))
		}
	})
	err := v.ReadInConfig()
	if err != nil {
		panic(fmt.Errorf("读取配置文件出错,err:%v \n", err))
	}
	//解析 只覆盖文件里出现的键 其余保持默认值
	err = v.Unmarshal(&Conf)
	if err != nil {
		panic(fmt.Errorf("Unmarshal config data,err:%v \n", err))
	}
}
