package invaders

// trigger gates firing with two independent conditions: a wall-clock
// cooldown since the last shot and a latch that only re-arms on a frame
// where the fire key is up. Holding fire therefore shoots once; tapping
// shoots again once the key was seen released and the cooldown has elapsed.
type trigger struct {
	cooldown int64 // Milliseconds that must strictly pass between shots
	canShoot bool  // Latch, cleared by a shot, set by a released fire key
	lastShot int64 // Clock reading of the last shot, 0 before the first
}

func newTrigger(cooldownMS int) trigger {
	return trigger{
		cooldown: int64(cooldownMS),
		canShoot: true,
	}
}

// pull samples the fire key for one frame and reports whether a bullet
// should spawn.
func (t *trigger) pull(fire bool, now int64) bool {
	fired := false
	if fire && t.canShoot && now-t.lastShot > t.cooldown {
		t.lastShot = now
		t.canShoot = false
		fired = true
	}
	if !fire {
		t.canShoot = true
	}
	return fired
}
