package builtin

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bnema/remote-assist-console/internal/domain"
	"github.com/bnema/remote-assist-console/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTicketsAreAValidQueue(t *testing.T) {
	t.Parallel()

	tickets := Tickets()
	require.Len(t, tickets, 4)

	seen := map[domain.VehicleID]bool{}
	for _, ticket := range tickets {
		assert.NoError(t, ticket.Validate("Sarah K."), ticket.ID)
		assert.False(t, seen[ticket.VehicleID], ticket.VehicleID)
		seen[ticket.VehicleID] = true
	}
	assert.Equal(t, "00:45", tickets[0].StallLabel())
	assert.Equal(t, "02:34", tickets[2].StallLabel())
}

func TestRepositoryIsReadOnly(t *testing.T) {
	t.Parallel()

	tickets, err := Repository{}.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Tickets(), tickets)
	assert.ErrorIs(t, Repository{}.ReplaceAll(context.Background(), nil), ErrReadOnly)
}

func TestFallbackServesBuiltInWhenSeedMissing(t *testing.T) {
	t.Parallel()

	primary := mocks.NewMockTicketRepository(t)
	primary.EXPECT().List(mock.Anything).Return(nil, fmt.Errorf("%w: /tmp/x.toml", domain.ErrSeedNotFound))

	tickets, err := NewFallback(primary).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Tickets(), tickets)
}

func TestFallbackPropagatesOtherErrors(t *testing.T) {
	t.Parallel()

	primary := mocks.NewMockTicketRepository(t)
	primary.EXPECT().List(mock.Anything).Return(nil, errors.New("decode tickets file: boom"))

	_, err := NewFallback(primary).List(context.Background())
	assert.ErrorContains(t, err, "boom")
}

func TestFallbackWritesToPrimary(t *testing.T) {
	t.Parallel()

	primary := mocks.NewMockTicketRepository(t)
	primary.EXPECT().ReplaceAll(mock.Anything, Tickets()).Return(nil)

	require.NoError(t, NewFallback(primary).ReplaceAll(context.Background(), Tickets()))
}
