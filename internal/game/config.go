package game

// Obstacle field geometry (world units). SpawnRadius is a shared contract
// with the external renderer: obstacles spawn on this ring and the travel
// time that back-dates every spawn assumes it. Change it in both places or
// arrivals drift off-beat.
const (
	SpawnRadius       = 18.0
	BaseSpeed         = 6.0
	ObstacleThickness = 0.55
)

// Playback defaults.
const DefaultVolume = 0.8
