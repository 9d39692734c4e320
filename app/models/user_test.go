package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserHashesPassword(t *testing.T) {
	companyID := uint(7)
	u, err := CreateUser("Priya Sharma", "priya@example.com", "s3cret-pass", &companyID)
	require.NoError(t, err)

	assert.Equal(t, ROLE_USER, u.Role)
	assert.Equal(t, STATUS_ACTIVE, u.Status)
	require.NotNil(t, u.CompanyID)
	assert.Equal(t, companyID, *u.CompanyID)

	assert.NotEqual(t, "s3cret-pass", u.Password)
	assert.True(t, u.CheckPassword("s3cret-pass"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestCreateUserValidation(t *testing.T) {
	_, err := CreateUser("Al", "not-an-email", "s3cret-pass", nil)
	assert.Error(t, err)

	_, err = CreateUser("Priya Sharma", "priya@example.com", "short", nil)
	assert.Error(t, err)
}

func TestSetPassword(t *testing.T) {
	u := &User{}
	require.NoError(t, u.SetPassword("another-pass"))
	assert.True(t, u.CheckPassword("another-pass"))
}

func TestCompanyValidate(t *testing.T) {
	ok := &Company{Name: "Acme Traders"}
	assert.NoError(t, ok.Validate())

	tooShort := &Company{Name: "A"}
	assert.Error(t, tooShort.Validate())
}
