// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"time"

	"code.hybscloud.com/atomix"
)

// Ticker is an awaitable periodic timer.
//
// A background goroutine posts the tick time into the embedded [Mailbox]
// every period. Ticks that find the mailbox full are dropped and counted
// by [Ticker.Dropped].
type Ticker struct {
	*Mailbox[time.Time]
	t       *time.Ticker
	stop    chan struct{}
	done    chan struct{}
	dropped atomix.Uint32
}

// NewTicker starts a ticker with period d that buffers up to capacity ticks.
func NewTicker(d time.Duration, capacity int) *Ticker {
	tk := &Ticker{
		Mailbox: NewMailbox[time.Time](capacity),
		t:       time.NewTicker(d),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go tk.loop()
	return tk
}

func (tk *Ticker) loop() {
	defer close(tk.done)
	for {
		select {
		case <-tk.stop:
			return
		case now := <-tk.t.C:
			if tk.Post(now) != nil {
				tk.dropped.Add(1)
			}
		}
	}
}

// Dropped returns the number of ticks lost to a full mailbox.
func (tk *Ticker) Dropped() uint32 {
	return tk.dropped.Load()
}

// Stop stops the ticker. No tick is posted after Stop returns.
// Ticks already queued can still be delivered.
func (tk *Ticker) Stop() {
	select {
	case <-tk.stop:
		return
	default:
	}
	close(tk.stop)
	<-tk.done
	tk.t.Stop()
	tk.Close()
}
