package cachesim

import "fmt"

// fmtStats renders the statistics block in the fixed format the
// simulator's silent verbosity still guarantees.
func fmtStats(reads, writes, hits, misses uint64, hitRatio float64) string {
	return fmt.Sprintf(
		"----------------------------------\n"+
			"          Cache Statistics         \n"+
			"----------------------------------\n"+
			"  Number of cache reads:  %-10d\n"+
			"  Number of cache writes: %-10d\n"+
			"  Number of cache hits:   %-10d\n"+
			"  Number of cache misses: %-10d\n"+
			"  Cache hit ratio:        %.5f%%\n"+
			"----------------------------------\n",
		reads, writes, hits, misses, hitRatio*100,
	)
}
