package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForContext_IncludesCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	SetupTestLogger(&buf)

	ctx, id := WithCorrelationID(context.Background())
	require.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))

	ForContext(ctx).Info("relatório gerado")

	assert.Contains(t, buf.String(), "correlation_id="+id)
	assert.Contains(t, buf.String(), "relatório gerado")
}

func TestGetCorrelationID_Empty(t *testing.T) {
	assert.Equal(t, "", GetCorrelationID(context.Background()))
}

func TestConfigure(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	require.NoError(t, Configure("warn", "json"))
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)

	err := Configure("barulhento", "text")
	assert.Error(t, err)
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logrus.StandardLogger().Formatter)
}

func TestLogger_FieldsAndLevels(t *testing.T) {
	var buf bytes.Buffer
	SetupTestLogger(&buf)

	L.WithField("source", "sales").WithFields(Fields{"line": 4}).Warn("linha ignorada")
	L.Debug("detalhe")

	out := buf.String()
	assert.Contains(t, out, "level=warning")
	assert.Contains(t, out, "source=sales")
	assert.Contains(t, out, "line=4")
	assert.Contains(t, out, "level=debug")
	assert.Equal(t, L, L.WithContext(context.Background()))
}
