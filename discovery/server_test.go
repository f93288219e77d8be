package discovery

import (
	"google.golang.org/grpc/resolver"
	"testing"
)

func TestBuildRegisterKey(t *testing.T) {
	s := Server{Name: "gateway", Addr: "127.0.0.1:50051"}
	if got := s.BuildRegisterKey(); got != "/gateway/127.0.0.1:50051" {
		t.Fatalf("key=%s, want /gateway/127.0.0.1:50051", got)
	}
	s.Version = "v1"
	if got := s.BuildRegisterKey(); got != "/gateway/v1/127.0.0.1:50051" {
		t.Fatalf("key=%s, want /gateway/v1/127.0.0.1:50051", got)
	}
}

func TestParseKeyRoundTrip(t *testing.T) {
	s := Server{Name: "gateway", Version: "v1", Addr: "127.0.0.1:50051"}
	parsed, err := ParseKey(s.BuildRegisterKey())
	if err != nil {
		t.Fatalf("parse key err:%v", err)
	}
	if parsed.Name != s.Name || parsed.Version != s.Version || parsed.Addr != s.Addr {
		t.Fatalf("parsed=%+v, want %+v", parsed, s)
	}
	if _, err = ParseKey("gateway"); err == nil {
		t.Fatal("want invalid key error")
	}
}

func TestParseValue(t *testing.T) {
	server, err := ParseValue([]byte(`{"name":"gateway","addr":"127.0.0.1:50051","weight":10}`))
	if err != nil {
		t.Fatalf("parse value err:%v", err)
	}
	if server.Addr != "127.0.0.1:50051" || server.Weight != 10 {
		t.Fatalf("server=%+v", server)
	}
	if _, err = ParseValue([]byte("not json")); err == nil {
		t.Fatal("want json error")
	}
}

func TestExistRemove(t *testing.T) {
	list := []resolver.Address{{Addr: "a:1"}, {Addr: "b:2"}}
	if !Exist(list, resolver.Address{Addr: "a:1"}) {
		t.Fatal("a:1 should exist")
	}
	if Exist(list, resolver.Address{Addr: "c:3"}) {
		t.Fatal("c:3 should not exist")
	}
	next, ok := Remove(list, resolver.Address{Addr: "a:1"})
	if !ok || len(next) != 1 || next[0].Addr != "b:2" {
		t.Fatalf("remove result=%v ok=%v", next, ok)
	}
	if _, ok = Remove(next, resolver.Address{Addr: "missing"}); ok {
		t.Fatal("remove of missing addr should report false")
	}
}
