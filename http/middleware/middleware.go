// Authored in 2025 by AJ ONeal <aj@therootcompany.com> (https://therootcompany.com)
//
// To the extent possible under law, the author(s) have dedicated all copyright
// and related and neighboring rights to this software to the public domain
// worldwide. This software is distributed without any warranty.
//
// You should have received a copy of the CC0 Public Domain Dedication along with
// this software. If not, see <https://creativecommons.org/publicdomain/zero/1.0/>.
//
// SPDX-License-Identifier: CC0-1.0

package middleware

import (
	"net/http"
)

// Middleware receives and returns and http.HandlerFunc
type Middleware func(http.HandlerFunc) http.HandlerFunc

// Chain applies middleware in the order given, so the first one sees the request first
type Chain []Middleware

// New creates a reusable Chain with 0 or more middleware
func New(middlewares ...Middleware) Chain {
	return Chain(middlewares).Use()
}

// Use returns a copy of the chain with more middleware appended
func (c Chain) Use(middlewares ...Middleware) Chain {
	next := make(Chain, 0, len(c)+len(middlewares))
	next = append(next, c...)
	return append(next, middlewares...)
}

// Handle composes middleware with the final handler
func (c Chain) Handle(handler http.HandlerFunc) http.HandlerFunc {
	if handler == nil {
		panic("middleware.New(...).Handle(-->this<--) requires a handler")
	}

	result := handler
	for i := len(c) - 1; i >= 0; i-- {
		result = c[i](result)
	}
	return result
}

type Muxer interface {
	Handle(pattern string, handler http.Handler)
	HandleFunc(pattern string, handler func(http.ResponseWriter, *http.Request))
}

// Mux registers every handler behind the same chain
type Mux struct {
	chain Chain
	mux   Muxer
}

// WithMux wraps a mux such that Handle and HandleFunc apply the middleware chain
func WithMux(mux Muxer, middlewares ...Middleware) Mux {
	return Mux{chain: New(middlewares...), mux: mux}
}

// With creates a new copy of the Mux with the specified middleware appended
func (m Mux) With(middlewares ...Middleware) Mux {
	return Mux{chain: m.chain.Use(middlewares...), mux: m.mux}
}

func (m Mux) Handle(pattern string, handler http.Handler) {
	m.mux.Handle(pattern, m.chain.Handle(handler.ServeHTTP))
}

func (m Mux) HandleFunc(pattern string, handler http.HandlerFunc) {
	m.mux.HandleFunc(pattern, m.chain.Handle(handler))
}
