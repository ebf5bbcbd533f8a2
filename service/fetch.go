package service

import (
	"sync/atomic"
)

// generation numbers refreshes so that only the response set matching the
// latest request for a view is ever applied. A stale refresh that loses the
// race is discarded wholesale instead of overwriting newer state.
//
// next must be called under the same lock that raises the view's loading
// flag, so generation order matches loading-flag order and the newest
// refresh is always the one that clears it.
type generation struct {
	n atomic.Int64
}

func (g *generation) next() int64 {
	return g.n.Add(1)
}

func (g *generation) current() int64 {
	return g.n.Load()
}
