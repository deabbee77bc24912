package bazooka

import "testing"

func TestPoolAddUniqueIDs(t *testing.T) {
	p := NewPool[int](4)
	seen := make(map[EntityID]bool)

	for i := 0; i < 10; i++ {
		id := p.Add(i)
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	if p.Len() != 10 {
		t.Errorf("Len() = %d, expected 10", p.Len())
	}
}

func TestPoolUpdateVisitsEveryEntryOnce(t *testing.T) {
	p := NewPool[int](8)
	for i := 1; i <= 6; i++ {
		p.Add(i)
	}

	// Remove consecutive entries; none of their neighbours may be skipped.
	var visited []int
	removed := p.Update(func(_ EntityID, v *int) bool {
		visited = append(visited, *v)
		return *v == 1 || *v == 6
	})

	if len(visited) != 6 {
		t.Fatalf("visited %v, expected all 6 entries", visited)
	}
	for i, v := range visited {
		if v != i+1 {
			t.Errorf("visit %d = %d, expected %d", i, v, i+1)
		}
	}
	if removed != 4 {
		t.Errorf("removed = %d, expected 4", removed)
	}

	var left []int
	p.Each(func(_ EntityID, v int) { left = append(left, v) })
	if len(left) != 2 || left[0] != 1 || left[1] != 6 {
		t.Errorf("remaining = %v, expected [1 6]", left)
	}
}

func TestPoolUpdateMutatesInPlace(t *testing.T) {
	p := NewPool[Rocket](2)
	id := p.Add(Rocket{Speed: 400})

	p.Update(func(_ EntityID, r *Rocket) bool {
		r.Advance(0.5)
		return true
	})

	r, ok := p.Get(id)
	if !ok {
		t.Fatal("rocket should still be alive")
	}
	if r.Pos.X != 200 {
		t.Errorf("rocket x = %v, expected 200", r.Pos.X)
	}
}

func TestPoolKill(t *testing.T) {
	p := NewPool[string](4)
	a := p.Add("a")
	b := p.Add("b")
	c := p.Add("c")

	if !p.Kill(b) {
		t.Fatal("Kill(b) should succeed")
	}
	if p.Kill(b) {
		t.Error("second Kill(b) should report false")
	}
	if p.Kill(EntityID(999)) {
		t.Error("Kill of unknown id should report false")
	}

	if p.Alive(b) {
		t.Error("killed entity should not be alive")
	}
	if p.Len() != 2 {
		t.Errorf("Len() after kill = %d, expected 2", p.Len())
	}

	// Killed entries are skipped before compaction.
	var seen []EntityID
	p.Each(func(id EntityID, _ string) { seen = append(seen, id) })
	if len(seen) != 2 || seen[0] != a || seen[1] != c {
		t.Errorf("Each visited %v, expected [%d %d]", seen, a, c)
	}

	p.Compact()
	if len(p.entries) != 2 {
		t.Errorf("storage after Compact = %d entries, expected 2", len(p.entries))
	}
	if !p.Alive(a) || !p.Alive(c) {
		t.Error("survivors should stay alive through Compact")
	}
}

func TestPoolClearKeepsCounting(t *testing.T) {
	p := NewPool[int](2)
	first := p.Add(1)
	p.Add(2)

	p.Clear()
	if p.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", p.Len())
	}
	if p.Alive(first) {
		t.Error("cleared entity should not be alive")
	}

	next := p.Add(3)
	if next <= first {
		t.Errorf("ids must not be reused: got %d after %d", next, first)
	}
}

func TestPoolMarkDeadCountsOnce(t *testing.T) {
	p := NewPool[int](3)
	p.Add(1)
	p.Add(2)
	p.Add(3)

	if !p.markDead(1) {
		t.Fatal("first markDead should succeed")
	}
	if p.markDead(1) {
		t.Error("second markDead on the same entry should fail")
	}
	if p.Len() != 2 || p.dead != 1 {
		t.Errorf("Len() = %d dead = %d, expected 2 and 1", p.Len(), p.dead)
	}
}
