package mocks

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Behyna/sms-services/smsactivate/pkg/smsactivate"
	"github.com/stretchr/testify/mock"
)

type Activator struct {
	mock.Mock
}

func (_m *Activator) GetNumber(ctx context.Context, req smsactivate.NumberRequest) (smsactivate.Number, error) {
	ret := _m.Called(ctx, req)
	return ret.Get(0).(smsactivate.Number), ret.Error(1)
}

func (_m *Activator) SetStatus(ctx context.Context, status smsactivate.ActivationStatus, id string) (string, error) {
	ret := _m.Called(ctx, status, id)
	return ret.String(0), ret.Error(1)
}

func (_m *Activator) GetStatus(ctx context.Context, id string) (string, error) {
	ret := _m.Called(ctx, id)
	return ret.String(0), ret.Error(1)
}

func (_m *Activator) GetSMS(ctx context.Context, id string) (string, error) {
	ret := _m.Called(ctx, id)
	return ret.String(0), ret.Error(1)
}

func (_m *Activator) CheckSMS(ctx context.Context, id string) (smsactivate.SMSResult, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(smsactivate.SMSResult), ret.Error(1)
}

func (_m *Activator) WaitForSMS(ctx context.Context, id string, interval time.Duration) (string, error) {
	ret := _m.Called(ctx, id, interval)
	return ret.String(0), ret.Error(1)
}

func (_m *Activator) GetBalance(ctx context.Context) (smsactivate.Balance, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(smsactivate.Balance), ret.Error(1)
}

func (_m *Activator) GetPrices(ctx context.Context, service, country string) (json.RawMessage, error) {
	ret := _m.Called(ctx, service, country)
	return ret.Get(0).(json.RawMessage), ret.Error(1)
}

func (_m *Activator) GetOperators(ctx context.Context, country string) (json.RawMessage, error) {
	ret := _m.Called(ctx, country)
	return ret.Get(0).(json.RawMessage), ret.Error(1)
}
