// SPDX-License-Identifier: MIT

package benchmark

import (
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/chainsort/chain"
	"github.com/katalvlaran/chainsort/pairsort"
)

// Record is one (size, algorithm, repeat) measurement. Records are never
// mutated after they are appended to a Result.
type Record struct {
	// Size is the number of chains generated and sorted.
	Size int
	// Algorithm is the sorter that was timed.
	Algorithm pairsort.Algorithm
	// Path is the generation path used for this batch.
	Path chain.Path
	// Repeat is the 0-based repeat index within Size.
	Repeat int
	// GenerationTime is the time Generate took for this (Size, Repeat) batch;
	// all algorithms of one batch share it.
	GenerationTime time.Duration
	// SortTime is the time the paired sort took.
	SortTime time.Duration
}

// Result is the ordered outcome of Run.
type Result struct {
	RunID      uuid.UUID
	Path       chain.Path
	Seed       uint64
	Sizes      []int
	Repeats    int
	Algorithms []pairsort.Algorithm
	Started    time.Time
	Finished   time.Time
	Records    []Record
}

// Summary aggregates the records of one (Size, Algorithm) cell.
type Summary struct {
	Size      int
	Algorithm pairsort.Algorithm
	Path      chain.Path
	Count     int

	MeanSort   time.Duration
	StdDevSort time.Duration
	MinSort    time.Duration
	MedianSort time.Duration
	MaxSort    time.Duration

	MeanGeneration time.Duration
}
