package util

import (
	"crypto/rand"
	"io"
	mrand "math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

func NewAdvocateID() string {
	return "adv_" + ulid.MustNew(ulid.Timestamp(NowUTC()), rand.Reader).String()
}

func NewJobID() string {
	return "job_" + ulid.MustNew(ulid.Timestamp(NowUTC()), rand.Reader).String()
}

// SeedAdvocateID is stable for a given index so re-seeding upserts instead of duplicating.
func SeedAdvocateID(i int) string {
	var entropy io.Reader = mrand.New(mrand.NewSource(int64(i) + 1))
	return "adv_" + ulid.MustNew(ulid.Timestamp(seedEpoch), entropy).String()
}

var seedEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

func NowUTC() time.Time {
	return time.Now().UTC()
}
