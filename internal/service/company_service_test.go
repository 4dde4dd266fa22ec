package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCompany(t *testing.T) {
	core := newTestCore(t)

	company, err := core.companies.Register(merchantCaller("acme-owner"), "acme-owner", "ACME")
	require.NoError(t, err)
	assert.Equal(t, "acme-owner", company.OwnerID)
	assert.True(t, company.IsActive)

	got, err := core.companies.Get("acme-owner")
	require.NoError(t, err)
	assert.Equal(t, company.ID, got.ID)
}

func TestRegisterCompany_DuplicateOwnerRejected(t *testing.T) {
	core := newTestCore(t)
	_, err := core.companies.Register(adminCaller, "acme-owner", "ACME")
	require.NoError(t, err)

	_, err = core.companies.Register(adminCaller, "acme-owner", "ACME Again")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	// The failed attempt does not change the registry count
	count, err := core.companies.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRegisterCompany_ForbiddenForOtherAccount(t *testing.T) {
	core := newTestCore(t)

	_, err := core.companies.Register(merchantCaller("mallory"), "acme-owner", "ACME")
	assert.ErrorIs(t, err, ErrForbidden)

	count, _ := core.companies.Count()
	assert.Equal(t, int64(0), count)
}

func TestGetCompany_NotFound(t *testing.T) {
	core := newTestCore(t)
	_, err := core.companies.Get("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeactivateCompany_AdminOnly(t *testing.T) {
	core := newTestCore(t)
	_, err := core.companies.Register(adminCaller, "acme-owner", "ACME")
	require.NoError(t, err)

	_, err = core.companies.Deactivate(merchantCaller("acme-owner"), "acme-owner")
	assert.ErrorIs(t, err, ErrForbidden)

	company, err := core.companies.Deactivate(adminCaller, "acme-owner")
	require.NoError(t, err)
	assert.False(t, company.IsActive)
}
