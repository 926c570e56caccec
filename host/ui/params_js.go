//go:build js

package ui

import (
	"log"
	"net/url"
	"syscall/js"
)

var (
	document = js.Global().Get("document")
	location = js.Global().Get("location")
	params   url.Values
)

func init() {
	u, err := url.Parse(location.Get("href").String())
	if err != nil {
		log.Println("failed to parse page url:", err)
		params = url.Values{}
		return
	}
	params = u.Query()
}

// Fullscreen switches the page's document element in or out of fullscreen.
func Fullscreen(on bool) {
	elm := document.Get("documentElement")
	if on {
		var onError js.Func
		onError = js.FuncOf(func(this js.Value, args []js.Value) any {
			defer onError.Release()
			log.Println("fullscreen request rejected:", args[0])
			return nil
		})
		elm.Call("requestFullscreen").Call("catch", onError)
		return
	}
	if document.Get("fullscreenElement").Truthy() {
		document.Call("exitFullscreen")
	}
}

// GetParam reads a query parameter of the page.
func GetParam(key string) string {
	return params.Get(key)
}

// SessionID identifies this page load. It is taken from the id query
// parameter so a shared link keeps its id in logs.
func SessionID() string {
	if id := params.Get("id"); id != "" {
		return id
	}
	return newSessionID()
}
