// Package gorillamux integrates lifecycle header injection with
// gorilla/mux routers. Registry keys use the mux path template, e.g.
// GET "/api/v1/users/{id}".
package gorillamux

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/arkline/lifecycle"
)

// Middleware returns the router-wide trigger strategy for mux. mux runs
// middleware after route matching, so the matched route is available
// up front and headers are injected before the handler executes. Requests
// without a matched route or path template pass through untouched.
func Middleware(reg *lifecycle.Registry) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if route := mux.CurrentRoute(r); route != nil {
				if tpl, err := route.GetPathTemplate(); err == nil {
					reg.InjectFor(w.Header(), r.Method, tpl)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
