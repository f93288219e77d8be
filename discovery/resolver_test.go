package discovery

import (
	"google.golang.org/grpc/resolver"
	"net/url"
	"sync"
	"testing"
	"tlg/config"
)

func TestResolveNowSignalsWatchLoop(t *testing.T) {
	r := NewResolver(config.EtcdConf{})
	r.resolveNowCh = make(chan struct{}, 1)
	//grpc会从自己的协程催 地址列表不能跟着动 只能递信号
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.ResolveNow(resolver.ResolveNowOptions{})
		}()
	}
	wg.Wait()
	select {
	case <-r.resolveNowCh:
	default:
		t.Fatal("resolve now signal lost")
	}
	//已经有一次排着时再催不能卡住grpc的协程
	r.resolveNowCh <- struct{}{}
	r.ResolveNow(resolver.ResolveNowOptions{})
	if len(r.resolveNowCh) != 1 {
		t.Fatalf("pending signals=%d, want 1", len(r.resolveNowCh))
	}
}

func TestBuildSyncFailureClosesEtcd(t *testing.T) {
	//端点不可达时clientv3.New照样成功 第一次Get才会报错
	r := NewResolver(config.EtcdConf{Addrs: []string{"127.0.0.1:1"}, DialTimeout: 1, RWTimeout: 1})
	if _, err := r.Build(resolver.Target{URL: url.URL{Scheme: "etcd", Path: "/gateway"}}, nil, resolver.BuildOptions{}); err == nil {
		t.Fatal("want sync failure")
	}
	if r.etcdCli.Ctx().Err() == nil {
		t.Fatal("etcd client should be closed after sync failure")
	}
}
