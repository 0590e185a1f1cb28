package pyver

import (
	"k8s.io/apimachinery/pkg/util/intstr"
)

// Cmp compares two versions per the PEP 440 ordering rules, returning a
// negative number if a<b, zero if a==b, or a positive number if a>b.
func (a Version) Cmp(b Version) int {
	if d := a.Epoch - b.Epoch; d != 0 {
		return d
	}
	if d := cmpRelease(a.Release, b.Release); d != 0 {
		return d
	}
	if d := cmpPre(a, b); d != 0 {
		return d
	}
	if d := cmpOptInt(a.Post, b.Post, -1); d != 0 {
		return d
	}
	if d := cmpOptInt(a.Dev, b.Dev, 1); d != 0 {
		return d
	}
	return cmpLocal(a.Local, b.Local)
}

// Release segments compare numerically, with the shorter one padded with
// zeros ("1.0" == "1.0.0").
func cmpRelease(a, b []int) int {
	for i := 0; i < len(a) || i < len(b); i++ {
		var aSeg, bSeg int
		if i < len(a) {
			aSeg = a[i]
		}
		if i < len(b) {
			bSeg = b[i]
		}
		if d := aSeg - bSeg; d != 0 {
			return d
		}
	}
	return 0
}

var preOrder = map[string]int{"a": 0, "b": 1, "rc": 2}

// Within a given release: X.YdevN < X.YaN < X.YbN < X.YrcN < X.Y < X.Y.postN.
// A version with only a dev segment sorts below any pre-release of the same
// release.
func cmpPre(a, b Version) int {
	rank := func(v Version) int {
		switch {
		case v.Pre == nil && v.Post == nil && v.Dev != nil:
			return -1 // bare dev release
		case v.Pre == nil:
			return 1 // final (or post) release
		default:
			return 0
		}
	}
	if d := rank(a) - rank(b); d != 0 {
		return d
	}
	if a.Pre == nil || b.Pre == nil {
		return 0
	}
	if d := preOrder[a.Pre.L] - preOrder[b.Pre.L]; d != 0 {
		return d
	}
	return a.Pre.N - b.Pre.N
}

// cmpOptInt compares two optional numeric segments; an absent segment sorts
// as `missing` relative to any present one (-1: absent is lowest, as for
// .post; +1: absent is highest, as for .dev).
func cmpOptInt(a, b *int, missing int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return missing
	case b == nil:
		return -missing
	default:
		return *a - *b
	}
}

func cmpLocalSegment(a, b *intstr.IntOrString) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	switch {
	case a.Type == intstr.Int && b.Type == intstr.Int:
		return int(a.IntVal - b.IntVal)
	case a.Type == intstr.String && b.Type == intstr.String:
		switch {
		case a.StrVal < b.StrVal:
			return -1
		case a.StrVal > b.StrVal:
			return 1
		}
		return 0
	case a.Type == intstr.Int && b.Type == intstr.String:
		// numeric segments always compare greater than lexicographic ones
		return 1
	default:
		return -1
	}
}

func cmpLocal(a, b []intstr.IntOrString) int {
	for i := 0; i < len(a) || i < len(b); i++ {
		var aSeg, bSeg *intstr.IntOrString
		if i < len(a) {
			aSeg = &(a[i])
		}
		if i < len(b) {
			bSeg = &(b[i])
		}
		if d := cmpLocalSegment(aSeg, bSeg); d != 0 {
			return d
		}
	}
	return 0
}
