package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/internhub/marketplace-web/internal/domain/model"
)

func TestResumeRows(t *testing.T) {
	errs := map[string]string{"experiences[1].position": "Position is required"}
	rows := ExperienceRows([]model.Experience{{Company: "Acme"}, {Company: "Globex"}}, errs)

	assert.Len(t, rows, 2)
	assert.Equal(t, "experiences[0].company", rows[0].Name("company"))
	assert.Empty(t, rows[0].Error("position"))
	assert.Equal(t, "Position is required", rows[1].Error("position"))

	edu := EducationRows([]model.Education{{School: "NUM"}}, nil)
	assert.Equal(t, "education[0].school", edu[0].Name("school"))
	assert.Empty(t, edu[0].Error("school"))
}

func TestCards(t *testing.T) {
	items := []model.Internship{
		{ID: 1, Title: "Go", Employer: &model.User{Name: "Acme"}},
		{ID: 2, Title: "SQL"},
	}
	saved := model.FavouriteSet{2: {}}

	cards := Cards(items, saved, true)
	assert.False(t, cards[0].Favourite)
	assert.True(t, cards[0].ShowEmployer)
	assert.True(t, cards[1].Favourite)
	assert.False(t, cards[1].ShowEmployer)
	assert.True(t, cards[1].CanFavourite)

	assert.False(t, Cards(items, nil, false)[1].Favourite)
}
