//go:build js && wasm

package main

import (
	"net/url"
	"syscall/js"

	"github.com/google/uuid"
)

var (
	document = js.Global().Get("document")
	window   = js.Global().Get("window")
	location = js.Global().Get("location")
	params   url.Values
)

func init() {
	u, err := url.Parse(location.Get("href").String())
	if err != nil {
		params = url.Values{}
		return
	}
	params = u.Query()
}

func GetParam(key string) string {
	return params.Get(key)
}

func SessionID() string {
	if id := params.Get("id"); id != "" {
		return id
	}
	uid, err := uuid.NewV6()
	if err != nil {
		return uuid.NewString()
	}
	return uid.String()
}

type goObject struct {
	jsValue js.Value
}

func (g goObject) ref() js.Value {
	return g.jsValue
}

// Promise wraps a js promise. Settle attaches both handlers in a single
// then call, so a rejection is always handled and exactly one callback runs.
type Promise[T any] interface {
	Settle(onValue func(value T), onError func(err error))
}

var _ Promise[struct{}] = goPromise[struct{}]{}

type goPromise[T any] struct {
	goObject
	convert func(value js.Value) T
}

func (g goPromise[T]) Settle(onValue func(value T), onError func(err error)) {
	var onOk, onErr js.Func
	release := func() {
		onOk.Release()
		onErr.Release()
	}
	onOk = js.FuncOf(func(this js.Value, args []js.Value) any {
		defer release()
		onValue(g.convert(args[0]))
		return nil
	})
	onErr = js.FuncOf(func(this js.Value, args []js.Value) any {
		defer release()
		onError(js.Error{
			Value: args[0],
		})
		return nil
	})
	g.jsValue.Call("then", onOk, onErr)
}

// Import loads an ES module through the page's import shim.
func Import(url string) Promise[js.Value] {
	return goPromise[js.Value]{
		goObject: goObject{jsValue: js.Global().Call("import", url)},
		convert: func(value js.Value) js.Value {
			return value
		},
	}
}

// Await blocks the calling goroutine until the promise settles. It must not
// be called from a js callback.
func Await[T any](p Promise[T]) (T, error) {
	type result struct {
		value T
		err   error
	}
	done := make(chan result, 1)
	p.Settle(func(value T) {
		done <- result{value: value}
	}, func(err error) {
		done <- result{err: err}
	})
	r := <-done
	return r.value, r.err
}
