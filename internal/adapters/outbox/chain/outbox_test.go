package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/remote-assist-console/internal/domain"
	portmocks "github.com/bnema/remote-assist-console/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var honk = domain.Command{ID: "cmd-1", Kind: domain.CommandHonk, VehicleID: "RT-4521"}

func newTestSink(t *testing.T) (*Sink, *portmocks.MockCommandSink, *portmocks.MockCommandSink) {
	t.Helper()

	primary := portmocks.NewMockCommandSink(t)
	fallback := portmocks.NewMockCommandSink(t)
	sink, err := NewSink(primary, fallback)
	require.NoError(t, err)
	return sink, primary, fallback
}

func TestSinkUsesPrimaryWhenItSucceeds(t *testing.T) {
	t.Parallel()

	sink, primary, _ := newTestSink(t)
	primary.EXPECT().Send(mock.Anything, honk).Return(nil).Once()

	require.NoError(t, sink.Send(context.Background(), honk))
}

func TestSinkFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	sink, primary, fallback := newTestSink(t)
	primary.EXPECT().Send(mock.Anything, honk).Return(errors.New("database locked")).Once()
	fallback.EXPECT().Send(mock.Anything, honk).Return(nil).Once()

	require.NoError(t, sink.Send(context.Background(), honk))
}

func TestSinkReturnsCombinedErrorWhenBothFail(t *testing.T) {
	t.Parallel()

	sink, primary, fallback := newTestSink(t)
	primary.EXPECT().Send(mock.Anything, honk).Return(errors.New("database locked")).Once()
	fallback.EXPECT().Send(mock.Anything, honk).Return(errors.New("disk full")).Once()

	err := sink.Send(context.Background(), honk)
	require.Error(t, err)
	assert.ErrorContains(t, err, "primary sink")
	assert.ErrorContains(t, err, "database locked")
	assert.ErrorContains(t, err, "disk full")
}

func TestSinkDoesNotFallBackOnCancellation(t *testing.T) {
	t.Parallel()

	sink, primary, _ := newTestSink(t)
	primary.EXPECT().Send(mock.Anything, honk).Return(context.Canceled).Once()

	err := sink.Send(context.Background(), honk)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewSinkRejectsNil(t *testing.T) {
	t.Parallel()

	_, err := NewSink(nil, portmocks.NewMockCommandSink(t))
	assert.ErrorIs(t, err, errNilPrimarySink)
	_, err = NewSink(portmocks.NewMockCommandSink(t), nil)
	assert.ErrorIs(t, err, errNilFallbackSink)
}
