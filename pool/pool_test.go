package pool

import (
	"testing"

	"github.com/automoto/arena-survivor/config"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"pgregory.net/rapid"
)

func TestAcquireReusesReleasedRecords(t *testing.T) {
	p := New(2, nil)
	require.Equal(t, 2, p.Free())

	a := p.Acquire()
	b := p.Acquire()
	assert.Equal(t, 0, p.Free())
	assert.Equal(t, 2, p.InFlight())

	require.True(t, p.Release(a))
	assert.Equal(t, 1, p.Free())

	c := p.Acquire()
	assert.Same(t, a, c)
	assert.True(t, c.Active())
	assert.True(t, b.Active())
}

func TestAcquireAllocatesWhenEmpty(t *testing.T) {
	p := New(1, nil)
	p.Acquire()
	extra := p.Acquire()
	require.NotNil(t, extra)
	assert.Equal(t, 1, p.Overflow())
	assert.Equal(t, 2, p.InFlight())
}

func TestReleaseDropsPastCapacity(t *testing.T) {
	p := New(1, nil)
	a := p.Acquire()
	b := p.Acquire()
	p.Release(a)
	p.Release(b)
	assert.Equal(t, 1, p.Free())
	assert.Equal(t, 0, p.InFlight())
}

func TestDoubleReleaseIsNoOp(t *testing.T) {
	p := New(4, nil)
	a := p.Basic(Shot{X: 1, Y: 2, VX: 3, Damage: 5, Life: 10}, 0)
	require.True(t, p.Release(a))
	assert.False(t, p.Release(a))
	assert.Equal(t, 4, p.Free())
}

func TestReleaseResetsEveryField(t *testing.T) {
	p := New(4, nil)
	m := p.BossMissile(Shot{X: 10, Y: 20, VX: 1, VY: 1, Damage: 12, Life: 300, Radius: 6}, 0.05, 40)
	m.HitList = append(m.HitList, donburi.Entity(7))
	m.Hits = 3
	require.Equal(t, OwnerEnemy, m.Owner)

	p.Release(m)

	assert.Equal(t, OwnerPlayer, m.Owner)
	assert.Zero(t, m.X)
	assert.Zero(t, m.Damage)
	assert.Zero(t, m.Life)
	assert.Zero(t, m.Hits)
	assert.False(t, m.Homing)
	assert.Zero(t, m.ExplosionRadius)
	assert.Empty(t, m.HitList)
	assert.False(t, m.Active())
}

func TestReleaseOwnerAlwaysPlayer(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := New(rapid.IntRange(1, 8).Draw(t, "capacity"), nil)
		n := rapid.IntRange(1, 20).Draw(t, "n")
		var live []*Projectile
		for i := 0; i < n; i++ {
			var pr *Projectile
			if rapid.Bool().Draw(t, "enemy") {
				pr = p.BossMissile(Shot{Damage: 10, Life: 5}, 0.02, 40)
			} else {
				pr = p.Basic(Shot{Damage: 10, Life: 5}, 0)
			}
			live = append(live, pr)
		}
		for _, pr := range live {
			p.Release(pr)
			if pr.Owner != OwnerPlayer {
				t.Fatalf("owner after release = %v", pr.Owner)
			}
		}
		// Recycled records start as player shots too.
		for i := 0; i < n; i++ {
			if got := p.Acquire().Owner; got != OwnerPlayer {
				t.Fatalf("owner after acquire = %v", got)
			}
		}
	})
}

func TestReleaseAtKeepsOrder(t *testing.T) {
	p := New(8, nil)
	a := p.Basic(Shot{Damage: 1}, 0)
	b := p.Basic(Shot{Damage: 2}, 0)
	c := p.Basic(Shot{Damage: 3}, 0)

	require.True(t, p.ReleaseAt(1))
	assert.Equal(t, []*Projectile{a, c}, p.Active())
	assert.False(t, b.Active())
	assert.False(t, p.ReleaseAt(5))
}

func TestHitBudget(t *testing.T) {
	p := New(4, nil)

	single := p.Basic(Shot{}, 0)
	assert.Equal(t, 1, single.HitBudget())
	single.Hits = 1
	assert.True(t, single.Exhausted())

	beam := p.Basic(Shot{}, config.Infinite)
	assert.Equal(t, KindBeam, beam.Kind)
	beam.Hits = 1000
	assert.False(t, beam.Exhausted())

	// Pierce is the total number of hits, not extra ones.
	flame := p.Flame(Shot{}, 2, config.BurnSpecial{})
	assert.Equal(t, 2, flame.HitBudget())
	flame.Hits = 1
	assert.False(t, flame.Exhausted())
	flame.Hits = 2
	assert.True(t, flame.Exhausted())

	seeker := p.Homing(Shot{}, donburi.Entity(1), 0.15, 3, 4)
	assert.Equal(t, 4, seeker.HitBudget())
}

func TestSpaceRegistration(t *testing.T) {
	space := resolv.NewSpace(400, 400, 16, 16)
	p := New(4, space)

	pr := p.Basic(Shot{X: 100, Y: 100, VX: 2, Radius: 4, Life: 10}, 0)
	require.NotNil(t, pr.Object)
	assert.Same(t, space, pr.Object.Space)
	assert.Equal(t, pr, pr.Object.Data)

	pr.Move()
	assert.InDelta(t, 98, pr.Object.X, 1e-9)

	p.Release(pr)
	assert.Nil(t, pr.Object.Space)
}

func TestReleaseAll(t *testing.T) {
	p := New(8, nil)
	for i := 0; i < 5; i++ {
		p.Basic(Shot{}, 0)
	}
	p.ReleaseAll()
	assert.Zero(t, p.InFlight())
	assert.Equal(t, 8, p.Free())
}
