package conversions

import (
	"code.superseriousbusiness.org/activity/streams/vocab"
)

type WithPublicKeyProperty interface {
	GetW3IDSecurityV1PublicKey() vocab.W3IDSecurityV1PublicKeyProperty
	SetW3IDSecurityV1PublicKey(i vocab.W3IDSecurityV1PublicKeyProperty)
}

// Accountable is implemented by the four actor types a local actor can be rendered as.
type Accountable interface {
	vocab.Type
	WithPublicKeyProperty
	SetActivityStreamsPreferredUsername(i vocab.ActivityStreamsPreferredUsernameProperty)
	SetActivityStreamsName(i vocab.ActivityStreamsNameProperty)
	SetActivityStreamsSummary(i vocab.ActivityStreamsSummaryProperty)
	SetActivityStreamsUrl(i vocab.ActivityStreamsUrlProperty)
	SetActivityStreamsInbox(i vocab.ActivityStreamsInboxProperty)
	SetActivityStreamsOutbox(i vocab.ActivityStreamsOutboxProperty)
	SetActivityStreamsFollowers(i vocab.ActivityStreamsFollowersProperty)
	SetActivityStreamsFollowing(i vocab.ActivityStreamsFollowingProperty)
	SetActivityStreamsIcon(i vocab.ActivityStreamsIconProperty)
	SetActivityStreamsManuallyApprovesFollowers(i vocab.ActivityStreamsManuallyApprovesFollowersProperty)
}
