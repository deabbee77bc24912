package bazooka

import "testing"

func TestResolveHitsSkipsKilledEntries(t *testing.T) {
	rockets := NewPool[Rocket](2)
	enemies := NewPool[Enemy](2)

	gone := rockets.Add(testRocket(300, 200))
	live := rockets.Add(testRocket(305, 200))
	target := enemies.Add(testEnemy(310, 200, -1))
	rockets.Kill(gone)

	hits := resolveHits(rockets, enemies)

	if len(hits) != 1 || hits[0].Rocket != live || hits[0].Enemy != target {
		t.Fatalf("hits = %+v, expected one hit by rocket %d on enemy %d", hits, live, target)
	}
	if rockets.Len() != 0 || enemies.Len() != 0 {
		t.Errorf("Len() rockets=%d enemies=%d, expected both empty", rockets.Len(), enemies.Len())
	}
	if len(rockets.entries) != 0 || rockets.dead != 0 || enemies.dead != 0 {
		t.Error("both pools should be compacted with no dead entries left")
	}
}

func TestResolveHitsMisses(t *testing.T) {
	rockets := NewPool[Rocket](1)
	enemies := NewPool[Enemy](1)
	rockets.Add(testRocket(100, 100))
	enemies.Add(testEnemy(600, 400, -1))

	if hits := resolveHits(rockets, enemies); len(hits) != 0 {
		t.Errorf("hits = %+v, expected none", hits)
	}
	if rockets.Len() != 1 || enemies.Len() != 1 {
		t.Error("entities that miss should survive")
	}
}
