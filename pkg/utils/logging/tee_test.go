package logging_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/xfusion-digital/scimport/pkg/utils/logging"
)

func TestTeeHandler(t *testing.T) {
	t.Run("records reach every sink", func(t *testing.T) {
		var a, b bytes.Buffer
		logger := slog.New(logging.NewTeeHandler(
			slog.NewJSONHandler(&a, nil),
			slog.NewJSONHandler(&b, nil),
		))

		logger.Info("user provisioned", slog.String("userName", "jdoe"))

		gt.True(t, strings.Contains(a.String(), "jdoe"))
		gt.True(t, strings.Contains(b.String(), "jdoe"))
	})

	t.Run("sink levels stay independent", func(t *testing.T) {
		var a, b bytes.Buffer
		logger := slog.New(logging.NewTeeHandler(
			slog.NewJSONHandler(&a, &slog.HandlerOptions{Level: slog.LevelWarn}),
			slog.NewJSONHandler(&b, &slog.HandlerOptions{Level: slog.LevelDebug}),
		))

		logger.Info("row failed")

		gt.Equal(t, a.Len(), 0)
		gt.True(t, strings.Contains(b.String(), "row failed"))
	})

	t.Run("attrs propagate to all sinks", func(t *testing.T) {
		var a, b bytes.Buffer
		logger := slog.New(logging.NewTeeHandler(
			slog.NewJSONHandler(&a, nil),
			slog.NewJSONHandler(&b, nil),
		)).With(slog.String("run_id", "r-1"))

		logger.Info("summary")

		gt.True(t, strings.Contains(a.String(), "r-1"))
		gt.True(t, strings.Contains(b.String(), "r-1"))
	})
}
