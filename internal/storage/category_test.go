package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// CategoryRepositoryTestSuite exercises the CSV-backed category repository.
type CategoryRepositoryTestSuite struct {
	suite.Suite
	repo *CSVCategoryRepository
}

// SetupTest runs before each test
func (suite *CategoryRepositoryTestSuite) SetupTest() {
	suite.repo = NewCSVCategoryRepository(filepath.Join(suite.T().TempDir(), "categories.csv"))
}

func (suite *CategoryRepositoryTestSuite) TestAddReturnsFreshIDAndRoundTrips() {
	c, err := suite.repo.Add("Food")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), c.ID)
	assert.Equal(suite.T(), "Food", c.Name)

	got, err := suite.repo.Get(c.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), *c, *got)

	list, err := suite.repo.List()
	require.NoError(suite.T(), err)
	require.Len(suite.T(), list, 1)
	assert.Equal(suite.T(), *c, list[0])
}

func (suite *CategoryRepositoryTestSuite) TestSuccessiveAddsNumberFromOne() {
	names := []string{"Food", "Rent", "Fun", "Travel"}
	for i, name := range names {
		c, err := suite.repo.Add(name)
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), int64(i+1), c.ID, "ids must be 1..N in insertion order")
	}
}

func (suite *CategoryRepositoryTestSuite) TestIDsNeverCollideAfterDelete() {
	a, err := suite.repo.Add("Food")
	require.NoError(suite.T(), err)
	b, err := suite.repo.Add("Rent")
	require.NoError(suite.T(), err)

	// Deleting the lower id used to make count-based numbering reuse an id
	require.NoError(suite.T(), suite.repo.Delete(a.ID))

	c, err := suite.repo.Add("Fun")
	require.NoError(suite.T(), err)
	assert.Greater(suite.T(), c.ID, b.ID, "new id must not collide with a surviving record")
}

func (suite *CategoryRepositoryTestSuite) TestUpdateRenamesInPlace() {
	// Scenario from the original flows: add two, rename one, delete the other
	a, err := suite.repo.Add("Food")
	require.NoError(suite.T(), err)
	b, err := suite.repo.Add("Rent")
	require.NoError(suite.T(), err)

	require.NoError(suite.T(), suite.repo.Update(a.ID, "Groceries"))

	list, err := suite.repo.List()
	require.NoError(suite.T(), err)
	require.Len(suite.T(), list, 2)
	assert.Equal(suite.T(), "Groceries", list[0].Name)
	assert.Equal(suite.T(), "Rent", list[1].Name)

	require.NoError(suite.T(), suite.repo.Delete(b.ID))

	list, err = suite.repo.List()
	require.NoError(suite.T(), err)
	require.Len(suite.T(), list, 1)
	assert.Equal(suite.T(), "Groceries", list[0].Name)
	assert.Equal(suite.T(), a.ID, list[0].ID)
}

func (suite *CategoryRepositoryTestSuite) TestUpdateMissingIDReturnsNotFound() {
	err := suite.repo.Update(99, "Nope")
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *CategoryRepositoryTestSuite) TestDeleteMissingIDReturnsNotFound() {
	err := suite.repo.Delete(99)
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *CategoryRepositoryTestSuite) TestDeleteLeavesOthersUntouched() {
	a, err := suite.repo.Add("Food")
	require.NoError(suite.T(), err)
	b, err := suite.repo.Add("Rent")
	require.NoError(suite.T(), err)
	c, err := suite.repo.Add("Fun")
	require.NoError(suite.T(), err)

	require.NoError(suite.T(), suite.repo.Delete(b.ID))

	list, err := suite.repo.List()
	require.NoError(suite.T(), err)
	require.Len(suite.T(), list, 2)
	assert.Equal(suite.T(), *a, list[0])
	assert.Equal(suite.T(), *c, list[1])
}

func (suite *CategoryRepositoryTestSuite) TestGetMissingIDReturnsNotFound() {
	_, err := suite.repo.Get(7)
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func TestCategoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(CategoryRepositoryTestSuite))
}
