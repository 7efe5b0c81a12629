package domain

import "time"

type FollowRole string

const (
	RolePending  FollowRole = "pending"
	RoleFollower FollowRole = "follower"
)

// FollowEdge records that FollowerID follows, or asked to follow, FollowingID. There is at most one edge per
// ordered pair.
type FollowEdge struct {
	FollowerID  int64
	FollowingID int64
	Role        FollowRole
	Created     time.Time
	Updated     time.Time
}
