//go:build !linux

package main

import (
	"os"
	"runtime"

	"golang.design/x/hotkey/mainthread"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	// The system hotkey API has to run its event loop on the main thread
	code := 0
	mainthread.Init(func() { code = run() })
	os.Exit(code)
}
