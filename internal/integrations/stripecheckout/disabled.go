package stripecheckout

import (
	"context"
	"fmt"
)

// DisabledClient заглушка для запуска без STRIPE_SECRET_KEY
type DisabledClient struct{}

// NewDisabledClient создает заглушку
func NewDisabledClient() *DisabledClient {
	return &DisabledClient{}
}

// CreateDepositSession всегда возвращает ErrNotConfigured
func (c *DisabledClient) CreateDepositSession(context.Context, *DepositSession) (*Session, error) {
	return nil, fmt.Errorf("%w: STRIPE_SECRET_KEY is empty", ErrNotConfigured)
}
