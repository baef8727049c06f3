package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"

	"evshortcut/config"
	"evshortcut/doctor"
	"evshortcut/gesture"
	"evshortcut/log"
	"evshortcut/shortcut"
	"evshortcut/shutdown"
)

var version = "dev"

// errDevicesGone ends a session that cannot wait for keyboards to return.
var errDevicesGone = errors.New("all keyboard devices went away")

// stringList collects a repeatable flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// reporter presents listen output.
type reporter interface {
	Devices(paths []string)
	Event(ev shortcut.Event)
	Gesture(g gesture.Gesture)
	Status(text string)
}

// plainReporter writes one line per event to out and status lines to errOut.
type plainReporter struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
}

func (r *plainReporter) Devices(paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.errOut, "listening on %s\n", strings.Join(paths, ", "))
}

func (r *plainReporter) Event(ev shortcut.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "%s %s\n", ev.Shortcut, ev.State)
}

func (r *plainReporter) Gesture(g gesture.Gesture) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "%s %s\n", g.Shortcut, g.Kind)
}

func (r *plainReporter) Status(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.errOut, text)
}

// resolveSettings merges the config file with command-line overrides.
// Shortcuts given on the command line replace the configured ones, and
// explicit devices turn off discovery and watching.
func resolveSettings(cfg *config.Config, shortcuts, devices []string, exact bool) (settings, error) {
	set := settings{
		names:    make(map[shortcut.Shortcut]string),
		devices:  devices,
		patterns: cfg.Devices.Patterns,
		watch:    cfg.Devices.Watch && len(devices) == 0,
		policy:   cfg.MatchPolicy(),
	}
	if exact {
		set.policy = shortcut.MatchExact
	}

	if len(shortcuts) > 0 {
		for _, text := range shortcuts {
			s, err := shortcut.Parse(text)
			if err != nil {
				return settings{}, err
			}
			set.shortcuts = append(set.shortcuts, s)
		}
	} else {
		for _, sc := range cfg.Shortcuts {
			set.shortcuts = append(set.shortcuts, sc.Combo)
			if sc.Name != "" {
				set.names[sc.Combo] = sc.Name
			}
		}
	}
	if len(set.shortcuts) == 0 {
		return settings{}, errors.New("no shortcuts configured (use -shortcut or add [[shortcut]] to the config)")
	}
	return set, nil
}

// serve listens on b until ctx is done and reports every event to rep.
// When the backend tracks devices, the listen is restarted each time the
// set of keyboards changes. It returns the number of shortcut events seen.
func serve(ctx context.Context, b backend, longPress time.Duration, rep reporter) (int, error) {
	count := 0
	changes := b.Changes()
	for {
		src, devices, err := b.Listen(ctx)
		if err != nil {
			if changes == nil {
				return count, err
			}
			log.Warnf("listen failed: %v", err)
			rep.Status(fmt.Sprintf("waiting for keyboards: %v", err))
			select {
			case <-ctx.Done():
				return count, nil
			case <-changes:
				continue
			}
		}
		if len(devices) > 0 {
			rep.Devices(devices)
		}

		n, reason := pump(ctx, src, changes, longPress, rep)
		count += n
		src.Close()

		switch reason {
		case pumpCancelled:
			return count, nil
		case pumpChanged:
			log.Info("devices_changed")
			continue
		}

		// Every device went away
		if changes == nil {
			return count, errDevicesGone
		}
		log.Warn("all devices gone, waiting for keyboards")
		rep.Status("all keyboards went away, waiting for one to come back")
		select {
		case <-ctx.Done():
			return count, nil
		case <-changes:
		}
	}
}

type pumpEnd int

const (
	pumpCancelled pumpEnd = iota
	pumpChanged
	pumpEnded
)

// pump forwards events from one source until it ends, ctx is done or the
// devices change.
func pump(ctx context.Context, src source, changes <-chan struct{}, longPress time.Duration, rep reporter) (int, pumpEnd) {
	var gestures chan shortcut.Event
	var wg sync.WaitGroup
	if longPress > 0 {
		gestures = make(chan shortcut.Event, 16)
		out := gesture.Classify(ctx, gestures, longPress)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for g := range out {
				log.Info("gesture: " + g.String())
				rep.Gesture(g)
			}
		}()
	}
	defer func() {
		if gestures != nil {
			close(gestures)
		}
		wg.Wait()
	}()

	count := 0
	events := src.Events()
	for {
		select {
		case <-ctx.Done():
			return count, pumpCancelled
		case <-changes:
			return count, pumpChanged
		case ev, ok := <-events:
			if !ok {
				return count, pumpEnded
			}
			count++
			log.ShortcutEvent(ev.Shortcut.String(), ev.State.String())
			rep.Event(ev)
			if gestures != nil {
				select {
				case gestures <- ev:
				case <-ctx.Done():
					return count, pumpCancelled
				}
			}
		}
	}
}

func run() int {
	configFlag := flag.String("config", "", "config file path (default: $XDG_CONFIG_HOME/evshortcut/config.toml)")
	var shortcutFlags, deviceFlags stringList
	flag.Var(&shortcutFlags, "shortcut", "shortcut to listen for, e.g. \"<Meta>-KeyN\" (repeatable, replaces configured shortcuts)")
	flag.Var(&deviceFlags, "device", "input device node to read (repeatable, disables discovery)")
	exactFlag := flag.Bool("exact", false, "fire only when no other modifier is held")
	logPathFlag := flag.String("logpath", "", "log directory path (default: OS-specific location, use ./ for current dir)")
	tuiFlag := flag.Bool("tui", true, "Run with terminal UI when stdout is a terminal")
	doctorFlag := flag.Bool("doctor", false, "Run keyboard diagnostics and exit")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	longPressFlag := flag.Duration("longpress", -1, "Long-press threshold for tap vs hold, 0 disables (default from config)")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("evshortcut %s\n", version)
		return 0
	}

	cfgPath := *configFlag
	if cfgPath == "" {
		p, err := config.Path()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Resolve log directory early
	logDir := *logPathFlag
	if logDir == "" {
		logDir = cfg.Log.Path
	}
	logPath, err := log.ResolveDir(logDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to resolve log directory: %v\n", err)
		return 1
	}
	log.SetDir(logPath)

	if err := log.EnsureDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
	}

	crashPath := filepath.Join(log.Dir(), "crash_log.txt")
	crashFile, err := os.OpenFile(crashPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		fmt.Fprintf(crashFile, "\n=== Session %s [pid=%d] ===\n", time.Now().Format("2006-01-02 15:04:05"), os.Getpid())
		debug.SetCrashOutput(crashFile, debug.CrashOptions{})
	}

	set, err := resolveSettings(cfg, shortcutFlags, deviceFlags, *exactFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if *doctorFlag {
		return doctor.Run(set.patterns, set.shortcuts[0], listenOne(newBackend, set))
	}

	longPress := cfg.Gesture.LongPress.Duration
	if *longPressFlag >= 0 {
		longPress = *longPressFlag
	}

	if err := log.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not init logging: %v\n", err)
	}
	defer log.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	shutdown.Notify(sigChan)
	go func() {
		select {
		case <-sigChan:
			log.Info("signal received, shutting down")
			cancel()
		case <-ctx.Done():
		}
	}()

	b, err := newBackend(set)
	if err != nil {
		log.Errorf("backend init error: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer b.Close()

	var rep reporter = &plainReporter{out: os.Stdout, errOut: os.Stderr}
	var tuiDone chan struct{}
	if *tuiFlag && term.IsTerminal(int(os.Stdout.Fd())) {
		tuiMu.Lock()
		tuiProgram = NewTUIProgram(set)
		tuiMu.Unlock()
		rep = tuiReporter{}

		tuiDone = make(chan struct{})
		go func() {
			defer close(tuiDone)
			if _, err := tuiProgram.Run(); err != nil {
				log.Errorf("TUI error: %v", err)
			}
			// Quitting the TUI ends the session
			cancel()
		}()
	}

	count, err := serve(ctx, b, longPress, rep)
	log.SessionEnd(count)

	if tuiDone != nil {
		tuiProgram.Quit()
		<-tuiDone
	}
	if err != nil {
		log.Errorf("listen error: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
