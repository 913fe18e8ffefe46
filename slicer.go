package pixelart

import (
	"sync"

	"github.com/submersibletoaster/pixelart/examine"
)

// workers drains bands with n goroutines running fn. Each fn call must only
// write the rows of its own band.
func workers(n int, bands <-chan examine.Band, fn func(examine.Band)) {
	wait := sync.WaitGroup{}
	for i := 0; i < n; i++ {
		wait.Add(1)
		go func() {
			defer wait.Done()
			for b := range bands {
				fn(b)
			}
		}()
	}
	wait.Wait()
}
