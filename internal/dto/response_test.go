package dto

import (
	"testing"

	"github.com/courtside/courtside/internal/join"
	"github.com/courtside/courtside/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSkillDistribution_WholePercent(t *testing.T) {
	players := []models.Player{
		{SkillLevel: models.SkillBeginner},
		{SkillLevel: models.SkillIntermediate},
		{SkillLevel: models.SkillAdvanced},
	}

	d := skillDistribution(players)

	// Three-way split truncates to whole percent
	assert.Equal(t, 33, d.Beginner)
	assert.Equal(t, 33, d.Intermediate)
	assert.Equal(t, 33, d.Advanced)
}

func TestSkillDistribution_EmptyRoster(t *testing.T) {
	d := skillDistribution(nil)
	assert.Equal(t, SkillDistribution{}, d)
}

func TestToGameDetailResponse_NilPlayers(t *testing.T) {
	g := &models.Game{ID: 1, Status: models.GameOpen}

	resp := ToGameDetailResponse(g)

	assert.NotNil(t, resp.Players)
	assert.Empty(t, resp.Players)
}

func TestToJoinStatusResponse_FullGameBlocksJoin(t *testing.T) {
	g := &models.Game{
		ID:             3,
		Status:         models.GameFull,
		CurrentPlayers: 10,
		MaxPlayers:     10,
	}

	resp := ToJoinStatusResponse(g, "user-9", join.StatusNotJoined)

	assert.False(t, resp.CanJoin)
	assert.Equal(t, "Request to Join", resp.ButtonLabel)
	assert.Equal(t, 0, resp.Progress)
}
