package discovery

import (
	"context"
	clientv3 "go.etcd.io/etcd/client/v3"
	"google.golang.org/grpc/attributes"
	"google.golang.org/grpc/resolver"
	"time"
	"tlg/config"
	"tlg/logs"
)

// Resolver etcd解析器 拨号etcd:///name时从注册中心拿网关地址
// 网关部署侧负责注册 客户端这边只读
// 地址列表只归watch协程管 其它协程只能通过channel递信号
type Resolver struct {
	conf         config.EtcdConf
	etcdCli      *clientv3.Client //etcd连接
	DialTimeout  int              //超时时间
	closeCh      chan struct{}
	resolveNowCh chan struct{}
	key          string
	cc           resolver.ClientConn
	srvAddrList  []resolver.Address
	watchCh      clientv3.WatchChan
}

func NewResolver(conf config.EtcdConf) *Resolver {
	return &Resolver{
		conf:        conf,
		DialTimeout: conf.DialTimeout,
	}
}

// Build grpc.Dial的时候同步调用 连etcd做一次同步 再起watch保持地址最新
func (r *Resolver) Build(target resolver.Target, cc resolver.ClientConn, opts resolver.BuildOptions) (resolver.Resolver, error) {
	r.cc = cc
	//1.连接etcd
	var err error
	r.etcdCli, err = clientv3.New(clientv3.Config{
		Endpoints:   r.conf.Addrs,
		DialTimeout: time.Duration(r.DialTimeout) * time.Second,
	})
	if err != nil {
		logs.Error("grpc client connect etcd err:%v", err)
		return nil, err
	}
	r.closeCh = make(chan struct{})
	r.resolveNowCh = make(chan struct{}, 1)
	//2.根据key获取value watch还没起 这次同步不会有人抢
	r.key = target.URL.Path
	if err = r.sync(); err != nil {
		r.etcdCli.Close()
		return nil, err
	}
	//3.节点有变动时实时更新
	go r.watch()
	return r, nil
}

func (r *Resolver) Scheme() string {
	return "etcd"
}

// ResolveNow 连接状态异常时grpc从自己的协程催一次
// 这里只递信号 同步统一在watch协程里做 已经有一次排着就不再排
func (r *Resolver) ResolveNow(opts resolver.ResolveNowOptions) {
	select {
	case r.resolveNowCh <- struct{}{}:
	default:
	}
}

func (r *Resolver) sync() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.conf.RWTimeout)*time.Second)
	defer cancel()
	// /gateway/xxx:50051
	res, err := r.etcdCli.Get(ctx, r.key, clientv3.WithPrefix())
	if err != nil {
		logs.Error("grpc client get etcd failed, name=%s,err:%v", r.key, err)
		return err
	}
	r.srvAddrList = []resolver.Address{}
	for _, v := range res.Kvs {
		server, err := ParseValue(v.Value)
		if err != nil {
			logs.Error("grpc client parse etcd value failed, name=%s,err:%v", r.key, err)
			continue
		}
		r.srvAddrList = append(r.srvAddrList, resolver.Address{
			Addr:       server.Addr,
			Attributes: attributes.New("weight", server.Weight),
		})
	}
	if len(r.srvAddrList) == 0 {
		logs.Error("no gateway instances found, name=%s", r.key)
		return nil
	}
	err = r.cc.UpdateState(resolver.State{
		Addresses: r.srvAddrList,
	})
	if err != nil {
		logs.Error("grpc client UpdateState failed, name=%s, err: %v", r.key, err)
		return err
	}
	return nil
}

func (r *Resolver) watch() {
	//1.定时一分钟同步一次数据
	//2.监听节点的事件 从而触发不同的操作
	//3.监听resolveNowCh grpc催的时候补一次同步
	//4.监听closeCh 退出并关闭etcd连接
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	r.watchCh = r.etcdCli.Watch(context.Background(), r.key, clientv3.WithPrefix())
	for {
		select {
		case <-r.closeCh:
			if err := r.etcdCli.Close(); err != nil {
				logs.Error("resolver close etcd err:%v", err)
			}
			return
		case <-r.resolveNowCh:
			if err := r.sync(); err != nil {
				logs.Error("resolve now sync failed,err:%v", err)
			}
		case res, ok := <-r.watchCh:
			if ok {
				r.update(res.Events)
			}
		case <-ticker.C:
			if err := r.sync(); err != nil {
				logs.Error("watch sync failed,err:%v", err)
			}
		}
	}
}

func (r *Resolver) update(events []*clientv3.Event) {
	for _, ev := range events {
		switch ev.Type {
		case clientv3.EventTypePut:
			server, err := ParseValue(ev.Kv.Value)
			if err != nil {
				logs.Error("grpc client update(EventTypePut) parse etcd value failed, name=%s,err:%v", r.key, err)
				continue
			}
			addr := resolver.Address{
				Addr:       server.Addr,
				Attributes: attributes.New("weight", server.Weight),
			}
			if !Exist(r.srvAddrList, addr) {
				r.srvAddrList = append(r.srvAddrList, addr)
				err = r.cc.UpdateState(resolver.State{
					Addresses: r.srvAddrList,
				})
				if err != nil {
					logs.Error("grpc client update(EventTypePut) UpdateState failed, name=%s,err:%v", r.key, err)
				}
			}
		case clientv3.EventTypeDelete:
			//网关下线 从地址列表里摘掉
			server, err := ParseKey(string(ev.Kv.Key))
			if err != nil {
				logs.Error("grpc client update(EventTypeDelete) parse etcd key failed, name=%s,err:%v", r.key, err)
				continue
			}
			addr := resolver.Address{Addr: server.Addr}
			if list, ok := Remove(r.srvAddrList, addr); ok {
				r.srvAddrList = list
				err = r.cc.UpdateState(resolver.State{
					Addresses: r.srvAddrList,
				})
				if err != nil {
					logs.Error("grpc client update(EventTypeDelete) UpdateState failed, name=%s,err:%v", r.key, err)
				}
			}
		}
	}
}

// Close 流结束进程退出时grpc回调 通知watch协程收尾
func (r *Resolver) Close() {
	close(r.closeCh)
}

func Exist(list []resolver.Address, addr resolver.Address) bool {
	for i := range list {
		if list[i].Addr == addr.Addr {
			return true
		}
	}
	return false
}

func Remove(list []resolver.Address, addr resolver.Address) ([]resolver.Address, bool) {
	for i := range list {
		if list[i].Addr == addr.Addr {
			list[i] = list[len(list)-1]
			return list[:len(list)-1], true
		}
	}
	return nil, false
}
