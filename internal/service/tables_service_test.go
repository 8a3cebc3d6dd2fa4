package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"imagestorebot/internal/models"
)

type stubStats struct {
	stats models.Stats
	err   error
}

func (s stubStats) Counts(context.Context) (models.Stats, error) {
	return s.stats, s.err
}

func TestStatsService_Counts(t *testing.T) {
	stats, err := NewStatsService(stubStats{stats: models.Stats{Pending: 1, Approved: 2}}).Counts(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, models.Stats{Pending: 1, Approved: 2}, stats)

	stats, err = NewStatsService(stubStats{err: errors.New("boom")}).Counts(context.Background())
	assert.EqualError(t, err, "boom")
	assert.Equal(t, models.Stats{}, stats)
}
