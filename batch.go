// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package seedwalk

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DeriveRange derives the children of parent at indices [start, start+count)
// and renders each as a ChildKey. The work is fanned out across workers over
// disjoint index stripes; parents are immutable, so concurrent child
// derivations share nothing mutable. Results are ordered by index regardless
// of which worker finished first.
func DeriveRange(parent *ExtendedKey, script ScriptType, start, count uint32) ([]ChildKey, error) {
	if count == 0 {
		return nil, nil
	}

	// Populate the parent's cached public key up front so the workers only
	// ever read it.
	if _, err := parent.PublicKeyHex(); err != nil {
		return nil, err
	}

	out := make([]ChildKey, count)
	workers := runtime.GOMAXPROCS(0)
	if uint32(workers) > count {
		workers = int(count)
	}

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for i := uint32(w); i < count; i += uint32(workers) {
				child, err := parent.Child(start + i)
				if err != nil {
					return err
				}
				ck, err := child.childKeyInfo(start+i, script)
				if err != nil {
					return err
				}
				out[i] = ck
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
