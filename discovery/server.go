package discovery

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Server 网关部署注册到etcd里的信息 value是json
type Server struct {
	Name    string `json:"name"`
	Addr    string `json:"addr"`
	Weight  int    `json:"weight"`
	Version string `json:"version"`
	Ttl     int64  `json:"ttl"`
}

func (s Server) BuildRegisterKey() string {
	if len(s.Version) == 0 {
		// gateway
		return fmt.Sprintf("/%s/%s", s.Name, s.Addr)
	}
	//gateway/v1
	return fmt.Sprintf("/%s/%s/%s", s.Name, s.Version, s.Addr)
}

func ParseValue(v []byte) (Server, error) {
	var server Server
	if err := json.Unmarshal(v, &server); err != nil {
		return server, err
	}
	return server, nil
}

func ParseKey(key string) (Server, error) {
	// /gateway/v1/127.0.0.1:50051 /gateway/127.0.0.1:50051
	strs := strings.Split(strings.TrimPrefix(key, "/"), "/")
	if len(strs) == 2 {
		return Server{
			Name: strs[0],
			Addr: strs[1],
		}, nil
	}
	if len(strs) == 3 {
		return Server{
			Name:    strs[0],
			Addr:    strs[2],
			Version: strs[1],
		}, nil
	}
	return Server{}, errors.New("invalid key")
}
