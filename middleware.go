package lifecycle

import (
	"bufio"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Middleware returns the router-wide trigger strategy: chi middleware that
// injects lifecycle headers for whichever route the request matched.
//
// chi resolves the route pattern only while descending the routing tree, so
// the middleware defers lookup until the handler first writes; by then the
// full pattern is available from the route context. Requests that match no
// route (404) pass through untouched.
func Middleware(reg *Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			iw := &injectingWriter{ResponseWriter: w, reg: reg, req: r}
			next.ServeHTTP(iw, r)

			// Handler returned without writing; net/http will send an
			// implicit 200, so inject while headers are still unsent.
			if !iw.wrote {
				iw.inject()
			}
		})
	}
}

// injectingWriter injects lifecycle headers immediately before the header
// block is flushed.
type injectingWriter struct {
	http.ResponseWriter
	reg   *Registry
	req   *http.Request
	wrote bool
}

func (iw *injectingWriter) WriteHeader(code int) {
	if !iw.wrote {
		iw.wrote = true
		iw.inject()
	}
	iw.ResponseWriter.WriteHeader(code)
}

func (iw *injectingWriter) Write(b []byte) (int, error) {
	if !iw.wrote {
		iw.WriteHeader(http.StatusOK)
	}
	return iw.ResponseWriter.Write(b)
}

func (iw *injectingWriter) inject() {
	rctx := chi.RouteContext(iw.req.Context())
	if rctx == nil {
		return
	}
	pattern := rctx.RoutePattern()
	if pattern == "" {
		return
	}
	iw.reg.InjectFor(iw.Header(), iw.req.Method, pattern)
}

// Hijack implements http.Hijacker, required for WebSocket upgrades.
func (iw *injectingWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hj, ok := iw.ResponseWriter.(http.Hijacker); ok {
		return hj.Hijack()
	}
	return nil, nil, fmt.Errorf("upstream ResponseWriter does not implement http.Hijacker")
}

// Flush implements http.Flusher, required for streaming responses (SSE).
// Flushing commits the header block, so headers are injected first when the
// handler flushes before its first write.
func (iw *injectingWriter) Flush() {
	if !iw.wrote {
		iw.WriteHeader(http.StatusOK)
	}
	if f, ok := iw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
