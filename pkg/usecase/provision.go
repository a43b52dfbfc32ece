package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/xfusion-digital/scimport/pkg/domain/model"
	"github.com/xfusion-digital/scimport/pkg/domain/types"
	"github.com/xfusion-digital/scimport/pkg/service/roster"
	"github.com/xfusion-digital/scimport/pkg/service/scim"
)

// RowSource yields roster rows in file order
type RowSource interface {
	Rows(ctx context.Context, cb func(row roster.Row, rowErr error) error) error
}

// UserCreator is the slice of the SCIM client the provision flow needs
type UserCreator interface {
	CreateUser(ctx context.Context, rec *model.UserRecord) (*scim.CreatedUser, int, error)
}

// Provision runs one bulk user-provisioning pass: read rows, validate,
// submit, accumulate outcomes. Rows are processed strictly in order, one
// request at a time.
type Provision struct {
	source RowSource
	client UserCreator
	dryRun bool
}

// ProvisionOption configures a Provision use case
type ProvisionOption func(*Provision)

// WithDryRun validates and logs rows without issuing any requests
func WithDryRun(enabled bool) ProvisionOption {
	return func(p *Provision) {
		p.dryRun = enabled
	}
}

// NewProvision creates a Provision use case
func NewProvision(source RowSource, client UserCreator, opts ...ProvisionOption) *Provision {
	p := &Provision{source: source, client: client}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run processes the whole roster and returns the per-row results and
// their summary. Row-local failures are logged and do not stop the run;
// the returned error is non-nil only for fatal input problems.
func (p *Provision) Run(ctx context.Context) (*model.RunSummary, []model.SubmissionResult, error) {
	logger := ctxlog.From(ctx)
	started := time.Now()

	var results []model.SubmissionResult

	err := p.source.Rows(ctx, func(row roster.Row, rowErr error) error {
		if rowErr != nil {
			return p.record(ctx, &results, model.SubmissionResult{
				Row: row.Number,
				Err: rowErr,
			})
		}

		rec, err := model.NewUserRecord(row.Fields)
		if err != nil {
			return p.record(ctx, &results, model.SubmissionResult{
				Row:      row.Number,
				UserName: row.Fields[model.ColumnUserName],
				Err:      err,
			})
		}

		if p.dryRun {
			logger.Info("dry run, skipping request",
				slog.Int("row", row.Number),
				slog.String("userName", rec.UserName))
			return p.record(ctx, &results, model.SubmissionResult{
				Row:      row.Number,
				UserName: rec.UserName,
				Success:  true,
			})
		}

		created, status, err := p.client.CreateUser(ctx, rec)
		result := model.SubmissionResult{
			Row:        row.Number,
			UserName:   rec.UserName,
			StatusCode: status,
			Err:        err,
		}
		if err == nil {
			result.Success = true
			result.ResourceID = created.ID
		}
		return p.record(ctx, &results, result)
	})
	if err != nil {
		return nil, results, err
	}

	summary := model.Summarize(results, time.Since(started))
	logger.Info("provisioning complete", slog.Any("summary", summary))
	return &summary, results, nil
}

// record logs one outcome and appends it to the result list. An error
// that is not row-local aborts the walk.
func (p *Provision) record(ctx context.Context, results *[]model.SubmissionResult, result model.SubmissionResult) error {
	logger := ctxlog.From(ctx)

	if result.Err != nil && !types.IsRowLocal(result.Err) {
		return goerr.Wrap(result.Err, "unrecoverable submission failure",
			goerr.V("row", result.Row))
	}

	*results = append(*results, result)
	if result.Success {
		logger.Info("user provisioned", slog.Any("result", result))
	} else {
		logger.Warn("row failed", slog.Any("result", result))
	}
	return nil
}
