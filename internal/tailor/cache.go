// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tailor

import (
	"strconv"

	"github.com/golang/glog"
	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// A Cache builds each locale's Tailoring once and keeps it for the lifetime
// of the Cache. It is safe for concurrent use.
type Cache struct {
	res   *Resource
	store *cache.Cache
	group singleflight.Group
}

// NewCache returns a Cache over res.
func NewCache(res *Resource) *Cache {
	// A zero cleanup interval starts no janitor goroutine.
	return &Cache{res: res, store: cache.New(cache.NoExpiration, 0)}
}

// Resource returns the resource the cache builds from.
func (c *Cache) Resource() *Resource { return c.res }

// Get returns the tailoring of lcid, layered on the invariant tailoring.
func (c *Cache) Get(lcid uint32) (*Tailoring, error) {
	key := strconv.FormatUint(uint64(lcid), 16)
	if t, ok := c.store.Get(key); ok {
		return t.(*Tailoring), nil
	}
	v, err, _ := c.group.Do(key, func() (any, error) {
		if t, ok := c.store.Get(key); ok {
			return t, nil
		}
		var parent *Tailoring
		if lcid != InvariantLCID {
			p, err := c.Get(InvariantLCID)
			if err != nil {
				return nil, err
			}
			parent = p
		}
		t, err := c.res.Build(lcid, parent)
		if err != nil {
			glog.Errorf("tailor: building %#04x: %v", lcid, err)
			return nil, err
		}
		glog.V(2).Infof("tailor: built %#04x: %d contractions, %d remaps, french=%v",
			lcid, len(t.contractions), len(t.remaps), t.FrenchSort)
		c.store.Set(key, t, cache.NoExpiration)
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Tailoring), nil
}

// Len reports the number of cached tailorings.
func (c *Cache) Len() int { return c.store.ItemCount() }
