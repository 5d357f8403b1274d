package pool

import (
	"slices"

	"github.com/solarlune/resolv"
)

// DefaultCapacity is the number of released records kept for reuse.
const DefaultCapacity = 200

// Pool hands out projectile records and tracks the ones in flight.
// Acquire never fails: an empty free list falls back to allocation.
type Pool struct {
	capacity int
	free     []*Projectile
	active   []*Projectile
	space    *resolv.Space

	allocated int
}

// New creates a pool retaining up to capacity released records. When space
// is non-nil every in-flight projectile is registered in it.
func New(capacity int, space *resolv.Space) *Pool {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	p := &Pool{
		capacity: capacity,
		free:     make([]*Projectile, 0, capacity),
		space:    space,
	}
	for i := 0; i < capacity; i++ {
		p.free = append(p.free, &Projectile{})
	}
	return p
}

// Acquire pops a reset record, or allocates one when the pool is empty,
// and marks it active.
func (p *Pool) Acquire() *Projectile {
	var pr *Projectile
	if n := len(p.free); n > 0 {
		pr = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		pr = &Projectile{}
		p.allocated++
	}
	pr.active = true
	p.active = append(p.active, pr)
	return pr
}

// Active returns the in-flight projectiles. The slice is only valid until
// the next Acquire or Release.
func (p *Pool) Active() []*Projectile {
	return p.active
}

// ReleaseAt retires the in-flight projectile at index i.
func (p *Pool) ReleaseAt(i int) bool {
	if i < 0 || i >= len(p.active) {
		return false
	}
	pr := p.active[i]
	p.active = slices.Delete(p.active, i, i+1)
	p.recycle(pr)
	return true
}

// Release retires pr. It returns false when pr is not in flight, so a
// double release is a no-op.
func (p *Pool) Release(pr *Projectile) bool {
	if pr == nil || !pr.active {
		return false
	}
	i := slices.Index(p.active, pr)
	if i < 0 {
		return false
	}
	return p.ReleaseAt(i)
}

// ReleaseAll retires every projectile in flight.
func (p *Pool) ReleaseAll() {
	for i := len(p.active) - 1; i >= 0; i-- {
		p.recycle(p.active[i])
	}
	p.active = p.active[:0]
}

func (p *Pool) recycle(pr *Projectile) {
	if pr.Object != nil && pr.Object.Space != nil {
		pr.Object.Space.Remove(pr.Object)
	}
	pr.reset()
	if len(p.free) < p.capacity {
		p.free = append(p.free, pr)
	}
}

// Free returns the number of records ready for reuse.
func (p *Pool) Free() int {
	return len(p.free)
}

// InFlight returns the number of active projectiles.
func (p *Pool) InFlight() int {
	return len(p.active)
}

// Overflow returns how many records were allocated past the initial
// capacity.
func (p *Pool) Overflow() int {
	return p.allocated
}

// attach registers pr's body in the collision space.
func (p *Pool) attach(pr *Projectile) {
	if p.space == nil {
		return
	}
	if pr.Object == nil {
		pr.Object = resolv.NewObject(0, 0, 1, 1, ResolvTag)
	}
	pr.Object.Data = pr
	pr.Object.X = pr.X - pr.Radius
	pr.Object.Y = pr.Y - pr.Radius
	pr.Object.W = pr.Radius * 2
	pr.Object.H = pr.Radius * 2
	p.space.Add(pr.Object)
}
