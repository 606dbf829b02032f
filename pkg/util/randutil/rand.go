// Copyright 2025 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package randutil

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"
)

// envSeed overrides the generated seed, for reproducing a failed randomized
// test run.
const envSeed = "COCKROACH_RANDOM_SEED"

// NewPseudoSeed generates a seed from the current time, unless the
// COCKROACH_RANDOM_SEED environment variable is set, in which case that
// value is used.
func NewPseudoSeed() int64 {
	if s, ok := os.LookupEnv(envSeed); ok {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			panic(fmt.Sprintf("could not parse %s as int64: %s", envSeed, err))
		}
		return seed
	}
	return time.Now().UnixNano()
}

// NewPseudoRand returns an instance of math/rand.Rand seeded from
// NewPseudoSeed, and its seed.
func NewPseudoRand() (*rand.Rand, int64) {
	seed := NewPseudoSeed()
	return rand.New(rand.NewSource(seed)), seed
}

// NewTestRand returns an instance of math/rand.Rand seeded from
// NewPseudoSeed, and its seed. Tests that use the returned generator should
// report the seed on failure so the run can be reproduced with
// COCKROACH_RANDOM_SEED.
func NewTestRand() (*rand.Rand, int64) {
	return NewPseudoRand()
}
