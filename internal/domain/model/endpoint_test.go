package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndpointURL(t *testing.T) {
	e := Endpoint{ServiceURL: "http://localhost:8082/", ChainID: "c1", AppID: "a1"}
	assert.Equal(t, "http://localhost:8082/chains/c1/applications/a1", e.URL())

	e.ServiceURL = " http://node:8080 "
	assert.Equal(t, "http://node:8080/chains/c1/applications/a1", e.URL())
}

func TestReportFailed(t *testing.T) {
	r := Report{
		Balance:   Outcome{Name: "balance", Kind: OutcomeApplicationError, StatusCode: 500},
		TokenInfo: Outcome{Name: "tokenInfo", Kind: OutcomeSuccess},
	}
	assert.False(t, r.Failed())

	r.TokenInfo = Outcome{Name: "tokenInfo", Kind: OutcomeTransportError, Err: errors.New("connection refused")}
	assert.True(t, r.Failed())
	assert.Contains(t, r.TokenInfo.String(), "connection refused")
	assert.Equal(t, "balance: http 500", r.Balance.String())
}
