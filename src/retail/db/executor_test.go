package db_test

import (
	"context"
	"testing"

	"github.com/bitswalk/retail/src/common/errors"
	"github.com/bitswalk/retail/src/retail/db"
	"github.com/bitswalk/retail/src/retail/db/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPrinter struct {
	headers []string
	rows    [][]string
	calls   int
}

func (p *recordingPrinter) PrintTable(headers []string, rows [][]string) error {
	p.calls++
	p.headers = headers
	p.rows = rows
	return nil
}

func seedCatalog(t *testing.T, database *db.Database) *db.Store {
	t.Helper()
	manager := dbtest.User(t, database, "Maria", "x", db.RoleManager, 10, 10)
	store := dbtest.Store(t, database, "Corner", manager.ID, 12, 12)
	dbtest.Product(t, database, store.ID, "Widget", 8, "2.50")
	dbtest.Product(t, database, store.ID, "Gadget", 3, "10")
	return store
}

// =============================================================================
// Execution Mode Tests
// =============================================================================

func TestExecutor_QueryAndPrint(t *testing.T) {
	database := dbtest.New(t)
	store := seedCatalog(t, database)
	p := &recordingPrinter{}

	n, err := database.Executor().QueryAndPrint(context.Background(), p,
		"SELECT productName, numberOfUnits FROM Product WHERE storeID = ? ORDER BY productName", store.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	assert.Equal(t, 1, p.calls)
	assert.Equal(t, []string{"productName", "numberOfUnits"}, p.headers)
	assert.Equal(t, [][]string{{"Gadget", "3"}, {"Widget", "8"}}, p.rows)
}

func TestExecutor_QueryAndPrint_EmptyPrintsNothing(t *testing.T) {
	database := dbtest.New(t)
	p := &recordingPrinter{}

	n, err := database.Executor().QueryAndPrint(context.Background(), p, "SELECT * FROM Product")
	require.NoError(t, err)

	assert.Equal(t, 0, n)
	assert.Equal(t, 0, p.calls)
}

func TestExecutor_QueryRowsAndCount(t *testing.T) {
	database := dbtest.New(t)
	store := seedCatalog(t, database)
	e := database.Executor()
	ctx := context.Background()

	rows, err := e.QueryRows(ctx, "SELECT productName FROM Product WHERE storeID = ? ORDER BY productName DESC", store.ID)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Widget"}, {"Gadget"}}, rows)

	count, err := e.QueryCount(ctx, "SELECT * FROM Product WHERE numberOfUnits > ?", 5)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestExecutor_NullRendering(t *testing.T) {
	database := dbtest.New(t)

	rows, err := database.Executor().QueryRows(context.Background(), "SELECT NULL, 'x'")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{db.NullValue, "x"}}, rows)
}

func TestExecutor_ValuesDoNotAlterStatement(t *testing.T) {
	database := dbtest.New(t)
	seedCatalog(t, database)
	e := database.Executor()
	ctx := context.Background()

	affected, err := e.Exec(ctx, "DELETE FROM Product WHERE productName = ?", "x' OR '1'='1")
	require.NoError(t, err)
	assert.Zero(t, affected)
	assert.Equal(t, 2, dbtest.Count(t, database, "SELECT * FROM Product"))
}

func TestExecutor_SyntaxErrorIsQueryError(t *testing.T) {
	database := dbtest.New(t)

	_, err := database.Executor().Exec(context.Background(), "UPDATE Nowhere SET x = 1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrDatabaseQuery))
	assert.False(t, errors.IsUserFacing(err))
}
