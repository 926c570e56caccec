// Package resources embeds the files the lacking viewer ships with.
package resources

import "embed"

//go:generate sh -c "go tool go-licenses report github.com/nobonobo/firefly-house/host/cmd/game > licenses.txt"

//go:embed ui
var UI embed.FS

//go:embed licenses.txt
var Licenses string

//go:embed ui/help.txt
var Help string
