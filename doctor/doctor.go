package doctor

import (
	"context"
	"fmt"
	"time"

	"evshortcut/shortcut"
)

// Source starts delivering events for s. The returned func stops it.
type Source func(ctx context.Context, s shortcut.Shortcut) (<-chan shortcut.Event, func(), error)

// Run executes interactive diagnostic checks and returns an exit code (0=all pass, 1=any fail).
func Run(patterns []string, s shortcut.Shortcut, src Source) int {
	resetTerminal()
	setupInterruptHandler()

	fmt.Println("evshortcut doctor - keyboard and shortcut diagnostics")
	fmt.Println("=====================================================")

	allPass := true

	if !checkKeyboards(patterns) {
		allPass = false
	}
	if !checkDevices() {
		allPass = false
	}
	if allPass && !checkShortcut(s, src, 10*time.Second) {
		allPass = false
	}

	fmt.Println()
	if allPass {
		fmt.Println("All checks passed!")
	} else {
		fmt.Println("Some checks failed. See details above.")
	}

	if allPass {
		return 0
	}
	return 1
}

func checkShortcut(s shortcut.Shortcut, src Source, timeout time.Duration) bool {
	fmt.Println()
	fmt.Println("[3/3] Shortcut detection")
	fmt.Printf("Press %s...\n", s)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, stop, err := src(ctx, s)
	if err != nil {
		fmt.Printf("  FAIL: could not listen: %v\n", err)
		return false
	}
	defer stop()

	deadline := time.After(timeout)
	pressed := false
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				fmt.Println("  FAIL: all keyboards went away")
				return false
			}
			if ev.Shortcut != s {
				continue
			}
			if ev.State == shortcut.Pressed {
				fmt.Println("  PASS: shortcut pressed")
				pressed = true
				continue
			}
			if pressed {
				fmt.Println("  PASS: shortcut released")
				// Keys typed during the check were echoed to the terminal
				resetTerminal()
				return true
			}
		case <-deadline:
			if pressed {
				fmt.Println("  FAIL: timeout waiting for release")
			} else {
				fmt.Println("  FAIL: timeout waiting for shortcut")
			}
			return false
		}
	}
}
