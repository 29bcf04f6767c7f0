// Package entities contains main entities of service.
package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Award is a reputation badge derived from a post's like count.
type Award string

// Award tiers ordered from lowest to highest.
const (
	AwardNone      Award = ""
	AwardBronze    Award = "bronze"
	AwardSilver    Award = "silver"
	AwardGold      Award = "gold"
	AwardPlatinum  Award = "platinum"
	AwardDiamond   Award = "diamond"
	AwardAce       Award = "ace"
	AwardConqueror Award = "conqueror"
)

// awardThresholds is evaluated top-down, first match wins. Comparisons are
// strictly greater-than.
var awardThresholds = []struct {
	likes uint32
	award Award
}{
	{1000000, AwardConqueror},
	{1000, AwardAce},
	{500, AwardDiamond},
	{150, AwardPlatinum},
	{50, AwardGold},
	{20, AwardSilver},
	{5, AwardBronze},
}

// AwardForLikes returns the award tier implied by a cumulative like count.
func AwardForLikes(likes uint32) Award {
	for _, t := range awardThresholds {
		if likes > t.likes {
			return t.award
		}
	}

	return AwardNone
}

// KillZoneThreshold is the net votes bound below which a post is flagged
// for suppression.
const KillZoneThreshold = -2

// DefaultCreditRating is the baseline user credit rating assigned to new
// profiles and to posts whose author has no profile.
const DefaultCreditRating = 0.01

// DefaultCollection is the bookmark collection used when none is given.
const DefaultCollection = "Favorites"

// Post ...
type Post struct {
	ID               string
	AuthorAddress    string
	Content          string
	ImageURL         string
	CreatedAt        time.Time
	Likes            uint32
	Comments         uint32
	Reposts          uint32
	NetVotes         int64
	UserCreditRating float64
	Award            Award
	// Collection is set only on a bookmark-side copy of the post.
	Collection string
}

// InKillZone reports whether the post's net vote score dropped below the
// suppression bound.
func (p Post) InKillZone() bool {
	return p.NetVotes < KillZoneThreshold
}

// SocialLinks ...
type SocialLinks struct {
	Twitter string
	Github  string
	Website string
}

// Profile ...
type Profile struct {
	ID               string
	Address          string
	Handle           string
	Bio              string
	Avatar           string
	SocialLinks      SocialLinks
	UserCreditRating float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CollectModule is the aggregate tip ledger of a post.
type CollectModule struct {
	ID               string
	PostID           string
	RecipientAddress string
	CollectPrice     decimal.Decimal
	TotalCollected   decimal.Decimal
	CollectorsCount  uint32
}
