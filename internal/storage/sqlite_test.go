package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// SQLiteBackendTestSuite checks that the sqlite backend honours the same
// repository contract as the CSV backend.
type SQLiteBackendTestSuite struct {
	suite.Suite
	stores *Stores
}

// SetupTest runs before each test
func (suite *SQLiteBackendTestSuite) SetupTest() {
	stores, err := Open(BackendSQLite, "", ":memory:")
	require.NoError(suite.T(), err, "failed to open sqlite backend")
	suite.stores = stores
}

// TearDownTest runs after each test
func (suite *SQLiteBackendTestSuite) TearDownTest() {
	if suite.stores != nil {
		suite.stores.Close()
	}
}

func (suite *SQLiteBackendTestSuite) TestCategoryLifecycle() {
	a, err := suite.stores.Categories.Add("Food")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), a.ID)

	b, err := suite.stores.Categories.Add("Rent")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), b.ID)

	require.NoError(suite.T(), suite.stores.Categories.Update(a.ID, "Groceries"))
	require.NoError(suite.T(), suite.stores.Categories.Delete(b.ID))

	list, err := suite.stores.Categories.List()
	require.NoError(suite.T(), err)
	require.Len(suite.T(), list, 1)
	assert.Equal(suite.T(), "Groceries", list[0].Name)

	assert.ErrorIs(suite.T(), suite.stores.Categories.Update(99, "x"), ErrNotFound)
	assert.ErrorIs(suite.T(), suite.stores.Categories.Delete(99), ErrNotFound)
	_, err = suite.stores.Categories.Get(99)
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *SQLiteBackendTestSuite) TestTransactionLifecycle() {
	tx, err := suite.stores.Transactions.Add("Lunch", "12.50", 7)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), tx.ID)

	list, err := suite.stores.Transactions.List()
	require.NoError(suite.T(), err)
	require.Len(suite.T(), list, 1)
	assert.Equal(suite.T(), "12.50", list[0].Amount)
	assert.Equal(suite.T(), int64(7), list[0].CategoryID, "dangling references are stored as-is")

	require.NoError(suite.T(), suite.stores.Transactions.Delete(tx.ID))
	assert.ErrorIs(suite.T(), suite.stores.Transactions.Delete(tx.ID), ErrNotFound)
}

func (suite *SQLiteBackendTestSuite) TestAccountLifecycle() {
	_, err := suite.stores.Accounts.Register("a@x.com", "secret1")
	require.NoError(suite.T(), err)

	_, err = suite.stores.Accounts.Register("a@x.com", "other")
	assert.ErrorIs(suite.T(), err, ErrDuplicateEmail)

	_, err = suite.stores.Accounts.Authenticate("a@x.com", "secret1")
	assert.NoError(suite.T(), err)

	_, err = suite.stores.Accounts.Authenticate("a@x.com", "wrong")
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)
}

func TestSQLiteBackendSuite(t *testing.T) {
	suite.Run(t, new(SQLiteBackendTestSuite))
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open("redis", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage backend")
}
