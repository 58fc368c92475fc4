package smoke

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Behyna/sms-services/smsactivate/pkg/smsactivate"
	"go.uber.org/zap"
)

const (
	StepBalance = "getBalance"
	StepPrices  = "getPrices"
	StepNumber  = "getNumber"
	StepSMS     = "getSMS"
	StepStatus  = "setStatus"
)

type Config struct {
	Service      string        `mapstructure:"service"`
	Country      string        `mapstructure:"country"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	PollTimeout  time.Duration `mapstructure:"poll_timeout"`
}

type Step struct {
	Name   string
	Result string
	Err    error
}

type Report struct {
	Steps []Step
}

func (r Report) Failed() int {
	n := 0
	for _, s := range r.Steps {
		if s.Err != nil && !errors.Is(s.Err, smsactivate.ErrNoSMS) {
			n++
		}
	}
	return n
}

// Runner exercises every provider operation once against a live account.
type Runner interface {
	Run(ctx context.Context) (Report, error)
}

type runner struct {
	client smsactivate.Activator
	cfg    Config
	logger *zap.Logger
}

func NewRunner(client smsactivate.Activator, cfg Config, logger *zap.Logger) Runner {
	return &runner{client: client, cfg: cfg, logger: logger}
}

func (r *runner) Run(ctx context.Context) (Report, error) {
	var report Report

	country, err := smsactivate.CountryCode(r.cfg.Country)
	if err != nil {
		return report, fmt.Errorf("smoke country: %w", err)
	}

	r.logger.Info("smoke test started",
		zap.String("service", r.cfg.Service),
		zap.String("country", r.cfg.Country),
		zap.String("countryCode", country))

	balance, err := r.client.GetBalance(ctx)
	r.record(&report, StepBalance, balance.Amount, err)

	prices, err := r.client.GetPrices(ctx, r.cfg.Service, country)
	r.record(&report, StepPrices, string(prices), err)

	number, err := r.client.GetNumber(ctx, smsactivate.NumberRequest{Service: r.cfg.Service, Country: country})
	r.record(&report, StepNumber, number.ID+":"+number.Phone, err)
	if err != nil {
		return report, nil
	}

	code, err := r.receiveSMS(ctx, number.ID)
	r.record(&report, StepSMS, code, err)

	status := smsactivate.StatusCancel
	if err == nil {
		status = smsactivate.StatusComplete
	}

	text, err := r.client.SetStatus(ctx, status, number.ID)
	r.record(&report, StepStatus, text, err)

	r.logger.Info("smoke test completed", zap.Int("failed", report.Failed()))

	return report, nil
}

func (r *runner) receiveSMS(ctx context.Context, id string) (string, error) {
	if r.cfg.PollTimeout <= 0 {
		res, err := r.client.CheckSMS(ctx, id)
		if err != nil {
			return "", err
		}
		if res.Pending {
			return "", smsactivate.ErrNoSMS
		}
		return res.Code, nil
	}

	pollCtx, cancel := context.WithTimeout(ctx, r.cfg.PollTimeout)
	defer cancel()

	code, err := r.client.WaitForSMS(pollCtx, id, r.cfg.PollInterval)
	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return "", smsactivate.ErrNoSMS
	}

	return code, err
}

func (r *runner) record(report *Report, name, result string, err error) {
	report.Steps = append(report.Steps, Step{Name: name, Result: result, Err: err})

	switch {
	case err == nil:
		r.logger.Info("smoke step succeeded", zap.String("step", name), zap.String("result", result))
	case errors.Is(err, smsactivate.ErrNoSMS):
		r.logger.Info("smoke step: no sms yet", zap.String("step", name))
	default:
		r.logger.Warn("smoke step failed", zap.String("step", name), zap.Error(err))
	}
}
