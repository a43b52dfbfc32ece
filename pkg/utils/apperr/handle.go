package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
)

// Handle reports a fatal error through the context logger so it reaches
// both log sinks before the process exits non-zero.
func Handle(ctx context.Context, err error) {
	ctxlog.From(ctx).Error("provisioning aborted", "error", err)
}
