// Package presentation decides how the gallery lays photos out: a small,
// repeatable tilt and offset per polaroid, and an order that puts photos the
// viewer has not seen yet first.
package presentation

import (
	"math/rand"
	"unicode/utf16"

	"eliavigram/internal/domain/entity"
)

var rotations = []float64{-6, -4, -2, -1, 0, 1, 2, 4, 6, -3, 3, -5, 5, -1.5, 1.5}

const offsetRange = 16

type Layout struct {
	Rotation float64 `json:"rotation"`
	OffsetY  int     `json:"offsetY"`
}

// LayoutFor is a pure function of the photo id and its grid index.
func LayoutFor(photoID string, index int) Layout {
	units := utf16.Encode([]rune(photoID))

	seed := codeAt(units, 0) + codeAt(units, len(units)-1) + index
	rotation := rotations[mod(seed, len(rotations))]

	offset := codeAt(units, 1)%offsetRange - offsetRange/2

	return Layout{Rotation: rotation, OffsetY: offset}
}

func codeAt(units []uint16, i int) int {
	if i < 0 || i >= len(units) {
		return 0
	}
	return int(units[i])
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// SeenTracker remembers which photos a viewer has already looked at.
type SeenTracker interface {
	IsSeen(id string) bool
	MarkSeen(id string)
}

// SeenSet is an in-memory SeenTracker.
type SeenSet map[string]struct{}

func NewSeenSet(ids ...string) SeenSet {
	s := make(SeenSet, len(ids))
	for _, id := range ids {
		if id != "" {
			s[id] = struct{}{}
		}
	}
	return s
}

func (s SeenSet) IsSeen(id string) bool {
	_, ok := s[id]
	return ok
}

func (s SeenSet) MarkSeen(id string) {
	s[id] = struct{}{}
}

// Order returns the photos with every unseen photo ahead of every seen one,
// each group independently shuffled. The input slice is not modified.
func Order(photos []*entity.Photo, seen SeenTracker, rng *rand.Rand) []*entity.Photo {
	unseen := make([]*entity.Photo, 0, len(photos))
	var already []*entity.Photo
	for _, p := range photos {
		if seen != nil && seen.IsSeen(p.ID) {
			already = append(already, p)
		} else {
			unseen = append(unseen, p)
		}
	}

	shuffle(unseen, rng)
	shuffle(already, rng)

	return append(unseen, already...)
}

func shuffle(photos []*entity.Photo, rng *rand.Rand) {
	swap := func(i, j int) { photos[i], photos[j] = photos[j], photos[i] }
	if rng == nil {
		rand.Shuffle(len(photos), swap)
		return
	}
	rng.Shuffle(len(photos), swap)
}
