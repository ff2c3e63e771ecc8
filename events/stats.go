package events

import "sync/atomic"

// BusStats counts dispatch activity. Counters are atomics so interrupt-style
// pool goroutines can bump them without taking the listener lock.
type BusStats struct {
	published  atomic.Int64
	dispatched atomic.Int64
	recovered  atomic.Int64
}

type BusStatsSnapshot struct {
	Published  int64
	Dispatched int64
	Recovered  int64
}

func (instance *BusStats) Snapshot() BusStatsSnapshot {
	return BusStatsSnapshot{
		Published:  instance.published.Load(),
		Dispatched: instance.dispatched.Load(),
		Recovered:  instance.recovered.Load(),
	}
}
