package scheduler

import (
	"testing"

	"github.com/alexanderramin/optistudy/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSortByHours_StableOnTies(t *testing.T) {
	allocs := []Allocation{
		{Subject: domain.Subject{ID: "a"}, Hours: 1},
		{Subject: domain.Subject{ID: "b"}, Hours: 2},
		{Subject: domain.Subject{ID: "c"}, Hours: 1},
		{Subject: domain.Subject{ID: "d"}, Hours: 2},
	}

	SortByHours(allocs)

	var ids []string
	for _, a := range allocs {
		ids = append(ids, a.Subject.ID)
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids)
}

func TestSortByRawScore_StableOnTies(t *testing.T) {
	allocs := []Allocation{
		{Subject: domain.Subject{ID: "a"}, SubjectScore: SubjectScore{RawScore: 1}},
		{Subject: domain.Subject{ID: "b"}, SubjectScore: SubjectScore{RawScore: 3}},
		{Subject: domain.Subject{ID: "c"}, SubjectScore: SubjectScore{RawScore: 3}},
	}

	sortByRawScore(allocs)

	assert.Equal(t, "b", allocs[0].Subject.ID)
	assert.Equal(t, "c", allocs[1].Subject.ID)
	assert.Equal(t, "a", allocs[2].Subject.ID)
}
