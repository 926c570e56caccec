//go:build !js

package ui

func Fullscreen(on bool) {}

func GetParam(key string) string {
	return ""
}

func SessionID() string {
	return newSessionID()
}
