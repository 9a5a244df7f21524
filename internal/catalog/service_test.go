package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	Repository
	service *Service
}

func (f *fakeRepo) GetByID(context.Context, string) (*Service, error) {
	if f.service == nil {
		return nil, ErrNotFound
	}
	return f.service, nil
}

func TestResolveDurationDefault(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil)

	d, err := svc.ResolveDuration(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultDurationMinutes, d)
}

func TestResolveDurationIncludesPadding(t *testing.T) {
	svc := NewService(&fakeRepo{service: &Service{
		DurationMinutes:    60,
		PreparationMinutes: 10,
		CleanupMinutes:     5,
	}}, nil)

	d, err := svc.ResolveDuration(context.Background(), "svc-1")
	require.NoError(t, err)
	assert.Equal(t, 75, d)
}

func TestResolveDurationUnknownService(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil)

	_, err := svc.ResolveDuration(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
