package redis

import "fmt"

// Key prefix for all rollforteams data
const keyPrefix = "rollforteams"

// playerKey returns the Redis key for a Player
func playerKey(id string) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playersIndexKey returns the Redis key for the ZSET of player ids scored by insertion sequence
func playersIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// sequenceKey returns the Redis key of the counter that orders insertions
func sequenceKey() string {
	return fmt.Sprintf("%s:seq:players", keyPrefix)
}
