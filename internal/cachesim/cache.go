package cachesim

import "fmt"

// Cache owns the sparse array of lazily-allocated Sets and routes every
// processor and snoop event into them, driving the MESI controller and
// preserving inclusion with L1. It is the top-level entry point the
// event Dispatcher calls into.
type Cache struct {
	geometry Geometry
	sets     []*Set // sparse: nil until first reference to that index

	bus        BusPort
	l1         L1Port
	controller *Controller
	stats      *Statistics
	log        Sink
}

// New builds a Cache over geometry, wired to the given ports,
// statistics, and logger. Callers own the lifetime of bus, l1, stats,
// and log and may inject fakes for testing — Cache never reaches for a
// package global.
func New(geometry Geometry, bus BusPort, l1 L1Port, stats *Statistics, log Sink) *Cache {
	return &Cache{
		geometry:   geometry,
		sets:       make([]*Set, geometry.NumSets),
		bus:        bus,
		l1:         l1,
		controller: NewController(bus, l1, log),
		stats:      stats,
		log:        log,
	}
}

// Geometry returns the cache's configuration.
func (c *Cache) Geometry() Geometry { return c.geometry }

// Stats returns the cache's statistics counters.
func (c *Cache) Stats() *Statistics { return c.stats }

func (c *Cache) setFor(index uint64) *Set {
	if c.sets[index] == nil {
		c.sets[index] = NewSet(int(c.geometry.Associativity))
	}
	return c.sets[index]
}

// PrRead services a processor data or instruction read.
func (c *Cache) PrRead(addr uint64) {
	c.stats.RecordRead()
	c.access(addr, false)
}

// PrWrite services a processor data write.
func (c *Cache) PrWrite(addr uint64) {
	c.stats.RecordWrite()
	c.access(addr, true)
}

func (c *Cache) access(addr uint64, isWrite bool) {
	fields := c.geometry.Decompose(addr)
	set := c.setFor(fields.Index)

	way, hit := set.Search(fields.Tag, true)
	if hit {
		line, _ := set.Way(way)
		next := c.controller.OnProcessor(line.State(), addr, isWrite)
		_ = set.SetWayState(way, next)
		c.stats.RecordHit()
	} else {
		next := c.controller.OnProcessor(Invalid, addr, isWrite)
		victim, _ := set.Allocate(fields.Tag, next)
		c.handleVictim(victim, fields.Index)
		c.stats.RecordMiss()
	}

	c.l1.Send(SendLine, addr)
}

// HandleSnoop services a bus operation observed from a peer LLC.
func (c *Cache) HandleSnoop(op BusOp, addr uint64) {
	fields := c.geometry.Decompose(addr)

	if c.sets[fields.Index] == nil {
		c.bus.PutSnoopResult(addr, NoHit)
		return
	}

	set := c.sets[fields.Index]
	way, found := set.Search(fields.Tag, false)
	if !found {
		c.bus.PutSnoopResult(addr, NoHit)
		return
	}

	line, _ := set.Way(way)
	next := c.controller.OnSnoop(line.State(), op, addr)
	_ = set.SetWayState(way, next)
}

// handleVictim preserves L1 inclusion for a line evicted by Allocate.
// A Modified victim must be pulled from L1 and written back before its
// slot is reused; any other displaced valid victim must simply be
// dropped from L1 (spec.md §8 invariant 4).
func (c *Cache) handleVictim(victim *Line, index uint64) {
	if victim == nil {
		return
	}

	addr := c.victimAddress(victim, index)
	if victim.IsModified() {
		c.l1.Send(GetLine, addr)
		c.l1.Send(EvictLine, addr)
		c.bus.BusOperation(BusWrite, addr)
		return
	}

	if victim.IsValid() {
		c.l1.Send(EvictLine, addr)
	}
}

// victimAddress reconstructs the line address of the evicted line from
// its tag and the index of the set it was evicted from, with a zero
// offset, for the L1 and write-back messages.
func (c *Cache) victimAddress(victim *Line, index uint64) uint64 {
	return victim.Tag()<<(c.geometry.OffsetBits+c.geometry.IndexBits) |
		index<<c.geometry.OffsetBits
}

// Clear drops every materialized set and resets statistics.
func (c *Cache) Clear() {
	c.sets = make([]*Set, c.geometry.NumSets)
	c.stats.Clear()
}

// PrintValidLines emits, for each materialized set holding at least one
// valid line, the set index, PLRU bits, and a row per valid way.
func (c *Cache) PrintValidLines() {
	header := "\n-----------------------------\n" +
		"Way  | Tag      | MESI State|\n" +
		"-----------------------------"
	headerPrinted := false

	for index, set := range c.sets {
		if set == nil || !set.HasValidLine() {
			continue
		}
		if !headerPrinted {
			c.log.Always("%s", header)
			headerPrinted = true
		}
		c.log.Always("\nValid Lines in Set 0x%08x", index)
		c.log.Always("PLRU State Bits: %b", set.PLRUBits())
		c.log.Always("-----------------------------")
		for way := 0; way < set.NumWays(); way++ {
			line, _ := set.Way(way)
			if !line.IsValid() {
				continue
			}
			c.log.Always("%-4d | 0x%06x | %-10s", way, line.Tag(), line.State())
		}
	}
}

// LookupLine returns a copy of the line holding addr's tag, if present,
// without mutating any cache state or statistics. It exists so tests
// and higher-level orchestration can inspect cache contents.
func (c *Cache) LookupLine(addr uint64) (Line, bool) {
	fields := c.geometry.Decompose(addr)
	if c.sets[fields.Index] == nil {
		return Line{}, false
	}
	way, ok := c.sets[fields.Index].Search(fields.Tag, false)
	if !ok {
		return Line{}, false
	}
	line, _ := c.sets[fields.Index].Way(way)
	return line, true
}

func (c *Cache) String() string {
	return fmt.Sprintf("Cache{sets=%d, associativity=%d}", c.geometry.NumSets, c.geometry.Associativity)
}
