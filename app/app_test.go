package app

import (
	"context"
	"errors"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
	"testing"
	"tlg/config"
	"tlg/gatewaytest"
	"tlg/tlgError"
)

func startGateway(t *testing.T, srv *gatewaytest.Server) {
	t.Helper()
	addr, err := srv.Start()
	if err != nil {
		t.Fatalf("start fake gateway err:%v", err)
	}
	t.Cleanup(srv.Stop)
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		t.Fatalf("split addr err:%v", err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatalf("parse port err:%v", err)
	}
	config.InitConfig("")
	config.Conf.Gateway.Host = host
	config.Conf.Gateway.Port = port
}

// captureStdout 临时接管os.Stdout 命令输出和错误打印都会进来
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe err:%v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()
	fn()
	w.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read stdout err:%v", err)
	}
	return string(data)
}

func TestRunStreamsOutputInOrder(t *testing.T) {
	srv := &gatewaytest.Server{Fragments: []string{"file1\n", "file2\n"}}
	startGateway(t, srv)
	var code int
	out := captureStdout(t, func() {
		code = Run(context.Background(), "", []string{"ls", "-la"})
	})
	if code != 0 {
		t.Fatalf("exit code=%d, want 0", code)
	}
	if out != "file1\nfile2\n" {
		t.Fatalf("output=%q, want %q", out, "file1\nfile2\n")
	}
	reqs := srv.Requests()
	if len(reqs) != 1 {
		t.Fatalf("requests=%d, want 1", len(reqs))
	}
	if reqs[0].GetWorkdir() != "/test_labs_gateway" {
		t.Fatalf("workdir=%s, want /test_labs_gateway", reqs[0].GetWorkdir())
	}
	if reqs[0].GetArgs() != "ls -la" {
		t.Fatalf("args=%s, want ls -la", reqs[0].GetArgs())
	}
}

func TestRunEmptyStream(t *testing.T) {
	srv := &gatewaytest.Server{}
	startGateway(t, srv)
	var code int
	out := captureStdout(t, func() {
		code = Run(context.Background(), "", nil)
	})
	if code != 0 {
		t.Fatalf("exit code=%d, want 0", code)
	}
	if out != "" {
		t.Fatalf("output=%q, want empty", out)
	}
	//没有参数时转发空命令 和原来一致
	if reqs := srv.Requests(); len(reqs) != 1 || reqs[0].GetArgs() != "" {
		t.Fatalf("requests=%+v, want one empty command", reqs)
	}
}

func TestRunFailureExitCode(t *testing.T) {
	srv := &gatewaytest.Server{Fail: tlgError.NewError(14, errors.New("gateway unavailable"))}
	startGateway(t, srv)
	var code int
	out := captureStdout(t, func() {
		code = Run(context.Background(), "", []string{"ls"})
	})
	if code != 14 {
		t.Fatalf("exit code=%d, want 14", code)
	}
	if got := strings.Count(out, "gateway unavailable"); got != 1 {
		t.Fatalf("error printed %d times, want once, output=%q", got, out)
	}
}

func TestRunMidStreamFailureKeepsPartialOutput(t *testing.T) {
	srv := &gatewaytest.Server{
		Fragments: []string{"partial\n"},
		Fail:      tlgError.NewError(13, errors.New("command crashed")),
	}
	startGateway(t, srv)
	var code int
	out := captureStdout(t, func() {
		code = Run(context.Background(), "", []string{"make"})
	})
	if code != 13 {
		t.Fatalf("exit code=%d, want 13", code)
	}
	if !strings.HasPrefix(out, "partial\n") {
		t.Fatalf("output=%q, want partial fragment first", out)
	}
	if !strings.Contains(out, "command crashed") {
		t.Fatalf("output=%q, want failure text", out)
	}
}

func TestRunWorkdirOverride(t *testing.T) {
	srv := &gatewaytest.Server{}
	startGateway(t, srv)
	captureStdout(t, func() {
		Run(context.Background(), "/elsewhere", []string{"pwd"})
	})
	reqs := srv.Requests()
	if len(reqs) != 1 {
		t.Fatalf("requests=%d, want 1", len(reqs))
	}
	if reqs[0].GetWorkdir() != "/elsewhere" {
		t.Fatalf("workdir=%s, want /elsewhere", reqs[0].GetWorkdir())
	}
}

func TestRunJoinsArgsInOrder(t *testing.T) {
	srv := &gatewaytest.Server{}
	startGateway(t, srv)
	captureStdout(t, func() {
		Run(context.Background(), "", []string{"git", "log", "--oneline", "-n", "5"})
	})
	reqs := srv.Requests()
	if len(reqs) != 1 {
		t.Fatalf("requests=%d, want 1", len(reqs))
	}
	if reqs[0].GetArgs() != "git log --oneline -n 5" {
		t.Fatalf("args=%q, want %q", reqs[0].GetArgs(), "git log --oneline -n 5")
	}
}
