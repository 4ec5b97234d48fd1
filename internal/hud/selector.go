package hud

// SelectTarget returns the closest record that is in front of the user and
// within maxDistance, or nil when none qualifies. Ties keep the earlier record.
func SelectTarget(records []*ObstacleRecord, maxDistance float32) *ObstacleRecord {
	var target *ObstacleRecord
	for _, r := range records {
		if !r.IsFront || r.MinDistance > maxDistance {
			continue
		}
		if target == nil || r.MinDistance < target.MinDistance {
			target = r
		}
	}
	return target
}
