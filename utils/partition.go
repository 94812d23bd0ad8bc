package utils

import "sync"

// IndexPartition splits the index range [0, MaxIndex) into ParallelDegree
// contiguous buckets with an imbalance of at most one, one bucket per
// worker goroutine of a kernel launch.
type IndexPartition struct {
	MaxIndex       int
	ParallelDegree int
	Buckets        [][2]int // begin and end index of each bucket
}

func NewIndexPartition(parallelDegree, maxIndex int) (ip *IndexPartition) {
	if parallelDegree > maxIndex {
		parallelDegree = maxIndex
	}
	if parallelDegree < 1 {
		parallelDegree = 1
	}
	ip = &IndexPartition{
		MaxIndex:       maxIndex,
		ParallelDegree: parallelDegree,
		Buckets:        make([][2]int, parallelDegree),
	}
	for n := 0; n < parallelDegree; n++ {
		ip.Buckets[n] = ip.split1D(n)
	}
	return
}

func (ip *IndexPartition) BucketRange(bucketNum int) (min, max int) {
	min, max = ip.Buckets[bucketNum][0], ip.Buckets[bucketNum][1]
	return
}

func (ip *IndexPartition) BucketDimension(bucketNum int) int {
	return ip.Buckets[bucketNum][1] - ip.Buckets[bucketNum][0]
}

// split1D spreads the remainder of MaxIndex/ParallelDegree over the first
// buckets evenly.
func (ip *IndexPartition) split1D(threadNum int) (bucket [2]int) {
	var (
		Npart            = ip.MaxIndex / ip.ParallelDegree
		remainder        = ip.MaxIndex % ip.ParallelDegree
		startAdd, endAdd int
	)
	if remainder != 0 {
		if threadNum+1 > remainder {
			startAdd = remainder
			endAdd = 0
		} else {
			startAdd = threadNum
			endAdd = 1
		}
	}
	bucket[0] = threadNum*Npart + startAdd
	bucket[1] = bucket[0] + Npart + endAdd
	return
}

// RunParallel launches one goroutine per bucket and blocks until every
// worker has returned. Workers receive their bucket's index range.
func (ip *IndexPartition) RunParallel(work func(min, max int)) {
	wg := sync.WaitGroup{}
	for np := 0; np < ip.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			min, max := ip.BucketRange(np)
			work(min, max)
		}(np)
	}
	wg.Wait()
}
