// Command keytest puts the terminal in raw mode and prints every key,
// mouse, resize, and signal event the input pipeline decodes, until q is
// pressed or an interrupt/terminate signal arrives.
package main

import (
	"fmt"
	"time"

	"zgo.at/tvis"
	"zgo.at/tvis/input"
	"zgo.at/tvis/terminfo"
	"zgo.at/tvis/unixterm"
)

const idleTimeout = 10 * time.Millisecond

func main() {
	drv, err := unixterm.Open(0)
	tvis.F(err)
	defer drv.Close()

	desc := terminfo.Current()
	p := input.NewPipeline(desc)

	fmt.Print("Press q to quit\r\n")

	bytesCh := make(chan byte)
	errCh := make(chan error, 1)
	go func() {
		for {
			b, err := drv.ReadByte()
			if err != nil {
				errCh <- err
				return
			}
			bytesCh <- b
		}
	}()

	var pendingEsc bool
	timer := time.NewTimer(idleTimeout)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case b := <-bytesCh:
			pendingEsc = b == 0x1b
			for _, ev := range p.Feed(b) {
				if quit := handle(ev); quit {
					return
				}
			}
			if pendingEsc {
				timer.Reset(idleTimeout)
			}

		case <-timer.C:
			for _, ev := range p.Timeout() {
				if quit := handle(ev); quit {
					return
				}
			}

		case sig := <-drv.Signals():
			ev := p.Signal(sig)
			if quit := handle(ev); quit {
				return
			}

		case err := <-errCh:
			tvis.F(err)
			return
		}
	}
}

func handle(ev input.Event) (quit bool) {
	switch ev.Kind {
	case input.KeyEvent:
		if ev.Key.Kind == input.KeyRune && ev.Key.Rune() == 'q' {
			return true
		}
		fmt.Printf("key: %+v\r\n", ev)
	case input.Repaint:
		fmt.Print("resize\r\n")
	case input.Interrupt:
		fmt.Print("interrupt\r\n")
		return true
	case input.Break:
		return true
	default:
		fmt.Printf("mouse: %+v\r\n", ev)
	}
	return false
}
