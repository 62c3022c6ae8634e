package repositories_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/trugenie/go-tally-extraction/internal/common/retry"
	"github.com/trugenie/go-tally-extraction/internal/common/tdl"
	"github.com/trugenie/go-tally-extraction/internal/models"
	"github.com/trugenie/go-tally-extraction/internal/repositories"
	"github.com/trugenie/go-tally-extraction/internal/repositories/mock"
)

type selectorHelper struct {
	primary   *mock.MockChannel
	secondary *mock.MockChannel
	selector  repositories.TransportSelector
}

func newSelectorHelper(t *testing.T) selectorHelper {
	t.Helper()
	ctrl := gomock.NewController(t)

	primary := mock.NewMockChannel(ctrl)
	primary.EXPECT().Method().Return(models.ExtractionMethodXMLAPI).AnyTimes()
	secondary := mock.NewMockChannel(ctrl)
	secondary.EXPECT().Method().Return(models.ExtractionMethodODBC).AnyTimes()

	return selectorHelper{
		primary:   primary,
		secondary: secondary,
		selector:  repositories.NewTransportSelector(primary, secondary, retry.NewConstantBackOff(retry.Config{MaxRetries: 1}), nil),
	}
}

func request(kind models.EntityKind) tdl.Request {
	return tdl.Request{Entity: tdl.MustLookup(kind), Company: "Nimona", Body: []byte("<ENVELOPE/>")}
}

var rows = []models.RawRecord{{Fields: map[string]string{"name": "Cash"}}}

func TestSession_Fetch(t *testing.T) {
	tests := []struct {
		name       string
		mode       models.TransportMode
		kind       models.EntityKind
		setup      func(h selectorHelper)
		wantMethod models.ExtractionMethod
		wantErr    error
	}{
		{
			name: "auto uses reachable primary",
			mode: models.TransportModeAuto,
			kind: models.EntityLedger,
			setup: func(h selectorHelper) {
				h.primary.EXPECT().Probe(gomock.Any()).Return(nil)
				h.primary.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(rows, nil)
			},
			wantMethod: models.ExtractionMethodXMLAPI,
		},
		{
			name: "auto falls back when primary probe is refused",
			mode: models.TransportModeAuto,
			kind: models.EntityLedger,
			setup: func(h selectorHelper) {
				h.primary.EXPECT().Probe(gomock.Any()).Return(models.ErrConnectionRefused)
				h.secondary.EXPECT().Probe(gomock.Any()).Return(nil)
				h.secondary.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(rows, nil)
			},
			wantMethod: models.ExtractionMethodODBC,
		},
		{
			name: "auto retries a timeout once then falls back",
			mode: models.TransportModeAuto,
			kind: models.EntityGroup,
			setup: func(h selectorHelper) {
				h.primary.EXPECT().Probe(gomock.Any()).Return(nil)
				h.primary.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, models.ErrTimeout).Times(2)
				h.secondary.EXPECT().Probe(gomock.Any()).Return(nil)
				h.secondary.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(rows, nil)
			},
			wantMethod: models.ExtractionMethodODBC,
		},
		{
			name: "timeout then success stays on primary",
			mode: models.TransportModeAuto,
			kind: models.EntityLedger,
			setup: func(h selectorHelper) {
				h.primary.EXPECT().Probe(gomock.Any()).Return(nil)
				gomock.InOrder(
					h.primary.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, models.ErrTimeout),
					h.primary.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(rows, nil),
				)
			},
			wantMethod: models.ExtractionMethodXMLAPI,
		},
		{
			name: "upstream error is surfaced without fallback",
			mode: models.TransportModeAuto,
			kind: models.EntityLedger,
			setup: func(h selectorHelper) {
				h.primary.EXPECT().Probe(gomock.Any()).Return(nil)
				h.primary.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, models.ErrUpstream)
			},
			wantErr: models.ErrUpstream,
		},
		{
			name: "malformed response is surfaced without fallback",
			mode: models.TransportModeAuto,
			kind: models.EntityLedger,
			setup: func(h selectorHelper) {
				h.primary.EXPECT().Probe(gomock.Any()).Return(nil)
				h.primary.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, models.ErrMalformedResponse)
			},
			wantErr: models.ErrMalformedResponse,
		},
		{
			name: "both channels down",
			mode: models.TransportModeAuto,
			kind: models.EntityLedger,
			setup: func(h selectorHelper) {
				h.primary.EXPECT().Probe(gomock.Any()).Return(models.ErrConnectionRefused)
				h.secondary.EXPECT().Probe(gomock.Any()).Return(models.ErrConnectionRefused)
			},
			wantErr: models.ErrNoChannelAvailable,
		},
		{
			name: "vouchers never reach the secondary",
			mode: models.TransportModeAuto,
			kind: models.EntityVoucher,
			setup: func(h selectorHelper) {
				h.primary.EXPECT().Probe(gomock.Any()).Return(models.ErrConnectionRefused)
			},
			wantErr: models.ErrNoChannelAvailable,
		},
		{
			name: "refused then success stays on primary",
			mode: models.TransportModeXMLAPI,
			kind: models.EntityLedger,
			setup: func(h selectorHelper) {
				gomock.InOrder(
					h.primary.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, models.ErrConnectionRefused),
					h.primary.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(rows, nil),
				)
			},
			wantMethod: models.ExtractionMethodXMLAPI,
		},
		{
			name: "auto retries a refusal once then falls back",
			mode: models.TransportModeAuto,
			kind: models.EntityLedger,
			setup: func(h selectorHelper) {
				h.primary.EXPECT().Probe(gomock.Any()).Return(nil)
				h.primary.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, models.ErrConnectionRefused).Times(2)
				h.secondary.EXPECT().Probe(gomock.Any()).Return(nil)
				h.secondary.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(rows, nil)
			},
			wantMethod: models.ExtractionMethodODBC,
		},
		{
			name: "forced primary retries once and never falls back",
			mode: models.TransportModeXMLAPI,
			kind: models.EntityLedger,
			setup: func(h selectorHelper) {
				h.primary.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, models.ErrConnectionRefused).Times(2)
			},
			wantErr: models.ErrConnectionRefused,
		},
		{
			name: "forced secondary skips the primary",
			mode: models.TransportModeODBC,
			kind: models.EntityLedger,
			setup: func(h selectorHelper) {
				h.secondary.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(rows, nil)
			},
			wantMethod: models.ExtractionMethodODBC,
		},
		{
			name: "forced secondary surfaces unsupported entity",
			mode: models.TransportModeODBC,
			kind: models.EntityVoucher,
			setup: func(h selectorHelper) {
				h.secondary.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, models.ErrUnsupportedOnChannel)
			},
			wantErr: models.ErrUnsupportedOnChannel,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newSelectorHelper(t)
			tt.setup(h)

			got, method, err := h.selector.NewSession(tt.mode).Fetch(context.Background(), request(tt.kind))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, method)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMethod, method)
			assert.Equal(t, rows, got)
		})
	}
}

func TestSession_ProbesOncePerSession(t *testing.T) {
	h := newSelectorHelper(t)
	h.primary.EXPECT().Probe(gomock.Any()).Return(models.ErrConnectionRefused).Times(1)
	h.secondary.EXPECT().Probe(gomock.Any()).Return(nil).Times(1)
	h.secondary.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(rows, nil).Times(2)

	session := h.selector.NewSession(models.TransportModeAuto)
	for _, kind := range []models.EntityKind{models.EntityLedger, models.EntityGroup} {
		_, method, err := session.Fetch(context.Background(), request(kind))
		require.NoError(t, err)
		assert.Equal(t, models.ExtractionMethodODBC, method)
	}
}

func TestSession_NewSessionProbesAgain(t *testing.T) {
	h := newSelectorHelper(t)
	h.primary.EXPECT().Probe(gomock.Any()).Return(nil).Times(2)
	h.primary.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(rows, nil).Times(2)

	for i := 0; i < 2; i++ {
		_, _, err := h.selector.NewSession(models.TransportModeAuto).Fetch(context.Background(), request(models.EntityLedger))
		require.NoError(t, err)
	}
}

func TestSession_CallerCancellation(t *testing.T) {
	h := newSelectorHelper(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := h.selector.NewSession(models.TransportModeAuto).Fetch(ctx, request(models.EntityLedger))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSession_CancelledDuringFetchDoesNotFallBack(t *testing.T) {
	h := newSelectorHelper(t)
	ctx, cancel := context.WithCancel(context.Background())

	h.primary.EXPECT().Probe(gomock.Any()).Return(nil)
	h.primary.EXPECT().Fetch(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, tdl.Request) ([]models.RawRecord, error) {
		cancel()
		return nil, context.Canceled
	})

	_, _, err := h.selector.NewSession(models.TransportModeAuto).Fetch(ctx, request(models.EntityLedger))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTransportSelector_ProbeAll(t *testing.T) {
	h := newSelectorHelper(t)
	down := errors.New("dial tcp: connection refused")
	h.primary.EXPECT().Probe(gomock.Any()).Return(nil)
	h.secondary.EXPECT().Probe(gomock.Any()).Return(down)

	res := h.selector.ProbeAll(context.Background())
	assert.NoError(t, res.Primary)
	assert.ErrorIs(t, res.Secondary, down)
}
