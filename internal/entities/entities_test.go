package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAwardForLikes(t *testing.T) {
	tt := []struct {
		likes uint32
		award Award
	}{
		{0, AwardNone},
		{5, AwardNone},
		{6, AwardBronze},
		{20, AwardBronze},
		{21, AwardSilver},
		{50, AwardSilver},
		{51, AwardGold},
		{150, AwardGold},
		{151, AwardPlatinum},
		{500, AwardPlatinum},
		{501, AwardDiamond},
		{1000, AwardDiamond},
		{1001, AwardAce},
		{1000000, AwardAce},
		{1000001, AwardConqueror},
	}

	for _, tc := range tt {
		assert.Equal(t, tc.award, AwardForLikes(tc.likes), "likes=%d", tc.likes)
	}
}

func TestPost_InKillZone(t *testing.T) {
	assert.False(t, Post{NetVotes: 0}.InKillZone())
	assert.False(t, Post{NetVotes: -2}.InKillZone())
	assert.True(t, Post{NetVotes: -3}.InKillZone())
}
