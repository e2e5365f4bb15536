// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interleave

// FetchState is the state of a Fetch.
type FetchState uint8

const (
	// FetchSuspended means the fetch has been issued and not yet observed.
	FetchSuspended FetchState = iota
	// FetchResumed means the fetch has yielded once; the next Poll completes.
	FetchResumed
)

func (s FetchState) String() string {
	switch s {
	case FetchSuspended:
		return "suspended"
	case FetchResumed:
		return "resumed"
	default:
		return "unknown"
	}
}

// Fetch is a one-shot suspension point standing for a memory fetch in flight.
//
// The first Poll after creation or Reset returns ErrWouldBlock; every later
// Poll returns nil. It hands control back to the poller exactly once per
// element, which lets a scheduler advance other work while the fetch lands.
// It does not measure or model time.
//
// The zero value is a suspended fetch.
type Fetch struct {
	state FetchState
}

// Poll reports ErrWouldBlock exactly once, then nil.
func (f *Fetch) Poll() error {
	if f.state == FetchSuspended {
		f.state = FetchResumed
		return ErrWouldBlock
	}
	return nil
}

// Reset re-arms the fetch for the next element.
func (f *Fetch) Reset() {
	f.state = FetchSuspended
}

// State returns the current state.
func (f *Fetch) State() FetchState {
	return f.state
}
