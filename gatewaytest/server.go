package gatewaytest

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"
	"net"
	"sync"
	"time"
	"tlg/config"
	"tlg/logs"
	"tlg/pb"
	"tlg/tlgError"
)

// Server 测试用的假网关 按脚本回放输出分片 不真正执行任何命令
// 零值可用 填好脚本字段再Start
type Server struct {
	pb.UnimplementedTestLabsGatewayServer
	Fragments []string        //每次调用按序下发的输出分片
	Fail      *tlgError.Error //不为nil时 分片发完以这个错误结束流
	Delay     time.Duration   //分片之间的间隔 模拟慢命令

	mu       sync.Mutex
	requests []*pb.TestLabsCommand

	srv *grpc.Server
}

// Start 在随机端口拉起假网关 返回host:port
// keepalive用和真网关部署一致的服务端参数 客户端的探活值就按这套来配
func (s *Server) Start() (string, error) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", err
	}
	k := config.Default().Gateway.Keepalive
	s.srv = grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    time.Duration(k.TimeMs) * time.Millisecond,
			Timeout: time.Duration(k.TimeoutMs) * time.Millisecond,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             time.Duration(k.MinPingIntervalWithoutDataMs) * time.Millisecond,
			PermitWithoutStream: k.PermitWithoutCalls,
		}),
	)
	pb.RegisterTestLabsGatewayServer(s.srv, s)
	go func() {
		if err := s.srv.Serve(lis); err != nil {
			logs.Error("fake gateway serve err:%v", err)
		}
	}()
	return lis.Addr().String(), nil
}

func (s *Server) Stop() {
	if s.srv != nil {
		s.srv.Stop()
	}
}

func (s *Server) ExecCommand(cmd *pb.TestLabsCommand, stream pb.TestLabsGateway_ExecCommandServer) error {
	s.mu.Lock()
	s.requests = append(s.requests, cmd)
	s.mu.Unlock()
	for _, f := range s.Fragments {
		if s.Delay > 0 {
			time.Sleep(s.Delay)
		}
		if err := stream.Send(&pb.TestLabsResponse{Response: f}); err != nil {
			return err
		}
	}
	if s.Fail != nil {
		return tlgError.GrpcError(s.Fail)
	}
	return nil
}

// Requests 收到过的命令请求 按到达顺序
func (s *Server) Requests() []*pb.TestLabsCommand {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*pb.TestLabsCommand, len(s.requests))
	copy(out, s.requests)
	return out
}
