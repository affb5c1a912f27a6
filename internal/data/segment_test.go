package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drakos74/phone-probe/internal/phones"
)

func TestReadSegments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "utt.lab")
	assert.NoError(t, os.WriteFile(path, []byte("0.0 0.1 sil\n0.1 0.4 aa\n0.4 0.5 sil\n"), 0644))

	segments, err := ReadSegments(path)
	assert.NoError(t, err)
	assert.Len(t, segments, 3)
	assert.Equal(t, Segment{Onset: 0.1, Offset: 0.4, Label: "aa"}, segments[1])
}

func TestReadSegmentsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "utt.lab")
	assert.NoError(t, os.WriteFile(path, []byte("0.0 0.1\n"), 0644))

	_, err := ReadSegments(path)
	assert.Error(t, err)
}

func TestSupportMergesOverlaps(t *testing.T) {
	segments := []Segment{
		{Onset: 2.0, Offset: 3.0, Label: "aa"},
		{Onset: 0.0, Offset: 1.0, Label: "iy"},
		{Onset: 0.5, Offset: 1.5, Label: "eh"},
		{Onset: 1.5, Offset: 2.0, Label: "ow"},
		{Onset: 4.0, Offset: 5.0, Label: "s"},
	}
	timeline := Support(segments, phones.Vowels)

	// overlapping and adjacent vowel segments collapse, the fricative is filtered out
	assert.Equal(t, []Interval{{Start: 0.0, End: 3.0}}, timeline)

	// intervals are disjoint and ordered
	for i := 1; i < len(timeline); i++ {
		assert.True(t, timeline[i].Start > timeline[i-1].End)
	}
}

func TestSupportKeepsDisjoint(t *testing.T) {
	segments := []Segment{
		{Onset: 3.0, Offset: 4.0, Label: "aa"},
		{Onset: 0.0, Offset: 1.0, Label: "iy"},
	}
	timeline := Support(segments, phones.Vowels)
	assert.Equal(t, []Interval{{Start: 0.0, End: 1.0}, {Start: 3.0, End: 4.0}}, timeline)
}

func TestFrameTargets(t *testing.T) {
	segments := []Segment{
		{Onset: 0.0, Offset: 0.1, Label: "sil"},
		{Onset: 0.1, Offset: 0.4, Label: "aa"},
		{Onset: 0.4, Offset: 0.5, Label: "sil"},
	}
	timeline := Support(segments, phones.Vowels)
	assert.Equal(t, []Interval{{Start: 0.1, End: 0.4}}, timeline)

	// the end index is inclusive, so the frame at the interval end is marked
	targets := FrameTargets(timeline, 5, 0.1)
	assert.Equal(t, []int{0, 1, 1, 1, 1}, targets)
}

func TestFrameTargetsClamped(t *testing.T) {
	timeline := []Interval{{Start: 0.3, End: 9.9}}
	targets := FrameTargets(timeline, 5, 0.1)
	assert.Equal(t, []int{0, 0, 0, 1, 1}, targets)
}

func TestFrameTargetsEmptyTimeline(t *testing.T) {
	targets := FrameTargets(nil, 4, 0.1)
	assert.Equal(t, []int{0, 0, 0, 0}, targets)
}
