package metrics

import (
	"github.com/arl/statsviz"
	"net/http"
)

// Serve 实时运行监控 /debug/statsviz 长命令流式期间可以看内存和gc
func Serve(addr string) error {
	mux := http.NewServeMux()
	if err := statsviz.Register(mux); err != nil {
		return err
	}
	return http.ListenAndServe(addr, mux)
}
