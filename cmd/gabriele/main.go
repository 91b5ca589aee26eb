// Command gabriele drives an Olympia Gabriele 9009 daisy-wheel
// typewriter over a serial link: it turns a text file or stdin into
// the machine's wire protocol and runs the HAL worker that paces bytes
// onto the port.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang/glog"

	"github.com/tarasstruk/gabriele/action"
	"github.com/tarasstruk/gabriele/daisy"
	"github.com/tarasstruk/gabriele/directive"
	"github.com/tarasstruk/gabriele/hal"
	"github.com/tarasstruk/gabriele/instruction"
	"github.com/tarasstruk/gabriele/machine"
	"github.com/tarasstruk/gabriele/queue"
	"github.com/tarasstruk/gabriele/serial"
)

// Config is the resolved set of startup options, built from flags.
type Config struct {
	TTY       string
	Text      string
	Wheel     string
	Handshake string
}

func parseFlags(args []string) (Config, error) {
	fs := flag.NewFlagSet("gabriele", flag.ContinueOnError)
	tty := fs.String("tty", "", "path to the serial port tty, e.g. /dev/ttyUSB0 (required)")
	text := fs.String("text", "", "optional path to a text file to print; reads stdin line by line when omitted")
	wheel := fs.String("wheel", "wheels/German.toml", "path to the daisy wheel description file")
	handshake := fs.String("handshake", "cts", "pacing handshake scheme: \"cts\" or \"ri\"")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if *tty == "" {
		return Config{}, fmt.Errorf("gabriele: --tty is required")
	}
	return Config{TTY: *tty, Text: *text, Wheel: *wheel, Handshake: *handshake}, nil
}

func handshakeFor(cfg Config, link serial.Link) (hal.Handshake, error) {
	switch cfg.Handshake {
	case "cts":
		return hal.CTSHandshake{}, nil
	case "ri":
		return hal.RIHandshake{ToggleDTR: func() (bool, error) {
			if err := link.Port.DisableModemLines(serial.TIOCM_DTR); err != nil {
				return false, err
			}
			time.Sleep(time.Millisecond)
			if err := link.Port.EnableModemLines(serial.TIOCM_DTR); err != nil {
				return false, err
			}
			lines, err := link.Port.GetModemLines()
			if err != nil {
				return false, err
			}
			return lines&serial.TIOCM_RI != 0, nil
		}}, nil
	default:
		return nil, fmt.Errorf("gabriele: unknown handshake scheme %q", cfg.Handshake)
	}
}

func startRunner(cfg Config, in <-chan instruction.Instruction) (<-chan error, error) {
	port, err := serial.OpenGabriele(cfg.TTY)
	if err != nil {
		return nil, fmt.Errorf("gabriele: opening %s: %w", cfg.TTY, err)
	}
	link := serial.Link{Port: port}
	handshake, err := handshakeFor(cfg, link)
	if err != nil {
		port.Close()
		return nil, err
	}

	done := make(chan error, 1)
	go func() {
		defer port.Close()
		glog.Infof("gabriele: runner starting on %s", cfg.TTY)
		runner := hal.NewRunner(link, handshake, in)
		done <- runner.Run()
		glog.Infof("gabriele: runner finished")
	}()
	return done, nil
}

func printFile(m *machine.Machine, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("gabriele: reading %s: %w", path, err)
	}
	return m.Print(string(content))
}

// standardIn runs the REPL: each line is either an "@>" directive or a
// text line to print, terminated by newline; the literal line "exit"
// ends the session.
func standardIn(m *machine.Machine, db *daisy.HotSwappable) error {
	glog.V(1).Infof("gabriele: reading stdin")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "@>"):
			directive.Process(line, db)
		case line == "exit":
			return nil
		default:
			if err := m.Print(line + "\n"); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}

func run() error {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		return err
	}

	q := queue.NewUnbounded[instruction.Instruction]()
	runnerDone, err := startRunner(cfg, q.Out())
	if err != nil {
		return err
	}

	glog.Infof("gabriele: machine starting up")
	db, err := daisy.LoadFile(cfg.Wheel)
	if err != nil {
		glog.Errorf("gabriele: %v; falling back to the built-in German wheel", err)
		db = daisy.German()
	}
	hotDb := daisy.NewHotSwappable(db)

	m := machine.New(q, hotDb, action.Settings{Direction: machine.Right})
	m.Offset(4 * 12)
	if err := m.Prepare(); err != nil {
		return err
	}

	var runErr error
	if cfg.Text != "" {
		runErr = printFile(m, cfg.Text)
	} else {
		runErr = standardIn(m, hotDb)
	}
	if runErr != nil {
		_ = m.Halt()
		<-runnerDone
		return runErr
	}

	if err := m.Shutdown(); err != nil {
		return err
	}
	q.Close()
	return <-runnerDone
}

func main() {
	defer glog.Flush()
	if err := run(); err != nil {
		glog.Errorf("gabriele: %v", err)
		os.Exit(1)
	}
}
