package gateway

import (
	"context"
	"fmt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/resolver"
	"io"
	"os"
	"time"
	"tlg/config"
	"tlg/discovery"
	"tlg/pb"
)

// Client 网关客户端 一次进程一个连接 连接活到进程退出
type Client struct {
	conn *grpc.ClientConn
	stub pb.TestLabsGatewayClient
	Out  io.Writer //命令输出写到这里 默认stdout 测试可替换
}

// NewClient 建立到网关的连接 配置了etcd和服务名时走注册中心找地址
// keepalive参数必须和服务端一致 不一致连接会被对端掐掉
func NewClient(gw config.GatewayConf, etcd config.EtcdConf) (*Client, error) {
	target := gw.Addr()
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(clientKeepalive(gw.Keepalive)),
	}
	if len(etcd.Addrs) > 0 && gw.Name != "" {
		resolver.Register(discovery.NewResolver(etcd))
		target = fmt.Sprintf("etcd:///%s", gw.Name)
	}
	if gw.LoadBalance {
		opts = append(opts, grpc.WithDefaultServiceConfig(fmt.Sprintf(`{"LoadBalancingPolicy": "%s"}`, "round_robin")))
	}
	conn, err := grpc.DialContext(context.TODO(), target, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{
		conn: conn,
		stub: pb.NewTestLabsGatewayClient(conn),
		Out:  os.Stdout,
	}, nil
}

// clientKeepalive 六个探活值里客户端能设的三个 剩下三个是服务端的管控值
func clientKeepalive(k config.KeepaliveConf) keepalive.ClientParameters {
	return keepalive.ClientParameters{
		Time:                time.Duration(k.TimeMs) * time.Millisecond,
		Timeout:             time.Duration(k.TimeoutMs) * time.Millisecond,
		PermitWithoutStream: k.PermitWithoutCalls,
	}
}

// RunCommand 发起一次exec_command流式调用 分片按到达顺序原样写出 不追加换行
// 阻塞到流正常结束返回nil 失败时错误原样返回 不重试
func (c *Client) RunCommand(ctx context.Context, workdir, args string) error {
	stream, err := c.stub.ExecCommand(ctx, &pb.TestLabsCommand{
		Workdir: workdir,
		Args:    args,
	})
	if err != nil {
		return err
	}
	for {
		res, err := stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprint(c.Out, res.GetResponse())
	}
}

func (c *Client) Close() error {
	return c.conn.Close()
}
