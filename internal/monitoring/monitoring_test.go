package monitoring

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	xlog "github.com/trugenie/go-tally-extraction/internal/common/log"
)

func Test_operationName(t *testing.T) {
	tests := []struct {
		name         string
		fullFuncName string
		want         string
	}{
		{
			name:         "pointer receiver",
			fullFuncName: "github.com/trugenie/go-tally-extraction/internal/services.(*extraction).GetLedgers",
			want:         "services.extraction.GetLedgers",
		},
		{
			name:         "value receiver",
			fullFuncName: "github.com/trugenie/go-tally-extraction/internal/services.Normalizer.Ledgers",
			want:         "services.Normalizer.Ledgers",
		},
		{
			name:         "function",
			fullFuncName: "github.com/trugenie/go-tally-extraction/internal/services.TrialBalance",
			want:         "services.TrialBalance",
		},
		{
			name:         "stdlib method",
			fullFuncName: "net/http.(*Server).Serve",
			want:         "http.Server.Serve",
		},
		{
			name:         "main",
			fullFuncName: "main.main",
			want:         "main.main",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, operationName(tt.fullFuncName))
		})
	}
}

func TestMonitor_Finish(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	xlog.SetLogger(zap.New(core))
	t.Cleanup(xlog.InitForTest)

	ctx := context.Background()

	New(ctx, WithLayer(LayerService), WithOperation("GetLedgers")).
		Finish(WithFinishXlogFields(xlog.String("company", "Nimona")))
	New(ctx, WithLayer(LayerRepository), WithOperation("Fetch")).Finish()
	New(ctx, WithLayer(LayerRepository), WithOperation("Fetch")).
		Finish(WithFinishCheckError(errors.New("boom")))

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "[SERVICE]", entries[0].Message)
		assert.Equal(t, "success", entries[0].ContextMap()["status"])
		assert.Equal(t, "Nimona", entries[0].ContextMap()["company"])
		assert.Equal(t, "GetLedgers", entries[0].ContextMap()["operation"])

		assert.Equal(t, "[REPOSITORY]", entries[1].Message)
		assert.Equal(t, zap.WarnLevel, entries[1].Level)
		assert.Equal(t, "error", entries[1].ContextMap()["status"])
	}
}

func TestNew_DetectsCaller(t *testing.T) {
	m := New(context.Background())
	assert.Equal(t, "monitoring.TestNew_DetectsCaller", m.operation)
	assert.Equal(t, LayerUnknown, m.layer)
}
