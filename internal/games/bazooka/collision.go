package bazooka

// Hit records one rocket/enemy collision.
type Hit struct {
	Rocket EntityID
	Enemy  EntityID
}

// resolveHits tests every live rocket against every live enemy.
// A colliding pair is killed on the spot, so each entity takes part in at
// most one hit per scan. Both pools are compacted before returning.
func resolveHits(rockets *Pool[Rocket], enemies *Pool[Enemy]) []Hit {
	var hits []Hit

	for i, r := range rockets.entries {
		if r.dead {
			continue
		}
		rb := r.value.Bounds()

		for j, e := range enemies.entries {
			if e.dead || !rb.Intersects(e.value.Bounds()) {
				continue
			}
			rockets.markDead(i)
			enemies.markDead(j)
			hits = append(hits, Hit{Rocket: r.id, Enemy: e.id})
			break
		}
	}

	rockets.Compact()
	enemies.Compact()
	return hits
}
