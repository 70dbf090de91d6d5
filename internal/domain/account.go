package domain

import (
	"time"
)

type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "ACTIVE"
	AccountStatusInactive AccountStatus = "INACTIVE"
)

// Account representa uma conta de varejo monitorada pelo radar de retenção.
type Account struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Nickname  *string       `json:"nickname"`
	Region    *string       `json:"region"`
	Status    AccountStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type AccountResponse struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Nickname *string       `json:"nickname"`
	Region   *string       `json:"region"`
	Status   AccountStatus `json:"status"`
}

type CreateAccountRequest struct {
	Name     string  `json:"name"`
	Nickname *string `json:"nickname,omitempty"`
	Region   *string `json:"region,omitempty"`
}

type UpdateAccountRequest struct {
	ID       string  `json:"id"`
	Name     *string `json:"name,omitempty"`
	Nickname *string `json:"nickname,omitempty"`
	Region   *string `json:"region,omitempty"`
	Status   *string `json:"status,omitempty"`
}
