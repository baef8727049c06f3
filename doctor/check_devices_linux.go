//go:build linux

package doctor

import (
	"fmt"

	"evshortcut/discover"
)

func checkKeyboards(patterns []string) bool {
	fmt.Println()
	fmt.Println("[1/3] Keyboard devices")

	msg, err := discover.Diagnose(patterns)
	if err != nil {
		fmt.Printf("  FAIL: %v\n", err)
		return false
	}
	fmt.Printf("  PASS: %s\n", msg)
	return true
}

func checkDevices() bool {
	fmt.Println()
	fmt.Println("[2/3] Readable input devices")

	devices, err := discover.Devices()
	if err != nil {
		fmt.Printf("  FAIL: %v\n", err)
		return false
	}
	if len(devices) == 0 {
		fmt.Println("  FAIL: no input device can be opened")
		fmt.Println("  Fix with: sudo usermod -aG input $USER, then re-login")
		return false
	}
	keyboards := 0
	for _, d := range devices {
		kind := ""
		if d.Keyboard {
			kind = " (keyboard)"
			keyboards++
		}
		fmt.Printf("  %s  %s%s\n", d.Path, d.Name, kind)
	}
	if keyboards == 0 {
		fmt.Println("  FAIL: none of the readable devices is a keyboard")
		return false
	}
	fmt.Printf("  PASS: %d keyboard(s) readable\n", keyboards)
	return true
}
