package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/SscSPs/nemo/internal/core/domain"
	portsrepo "github.com/SscSPs/nemo/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/nemo/internal/core/ports/services"
	"github.com/SscSPs/nemo/internal/platform/config"
	"github.com/SscSPs/nemo/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryApp(store *memory.Store) *app {
	return &app{openStore: func(ctx context.Context, cfg *config.Config) (portsrepo.Store, func(), error) {
		return store, func() {}, nil
	}}
}

func run(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("MIGRATE_ON_START", "false")
	var out bytes.Buffer
	cmd := newRootCmd(a)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommandTree(t *testing.T) {
	root := newRootCmd(&app{})
	for _, path := range [][]string{
		{"migrate", "up"}, {"migrate", "down"}, {"migrate", "version"},
		{"currency", "add"}, {"currency", "list"}, {"verify"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestCurrencyAddAndList(t *testing.T) {
	chdir(t, t.TempDir())
	a := memoryApp(memory.NewStore())

	out, err := run(t, a, "currency", "add", "--code", "EUR", "--title", "Euro", "--symbol", "€", "--long-symbol", "EU€")
	require.NoError(t, err)
	assert.Contains(t, out, "added EUR (Euro)")

	_, err = run(t, a, "currency", "add", "--code", "eur", "--title", "Euro")
	assert.Error(t, err)

	out, err = run(t, a, "currency", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "CODE")
	assert.Contains(t, out, "EUR")
	assert.Contains(t, out, "100")
}

func TestVerify(t *testing.T) {
	chdir(t, t.TempDir())
	store := memory.NewStore()
	a := memoryApp(store)

	out, err := run(t, a, "verify")
	require.NoError(t, err)
	assert.Contains(t, out, "ledger ok")

	ctx := context.Background()
	repos := store.Repositories()
	id, err := repos.BudgetCategoryRepo.SaveBudgetCategory(ctx, domain.BudgetCategory{Title: "Loop"})
	require.NoError(t, err)
	require.NoError(t, repos.BudgetCategoryRepo.UpdateBudgetCategory(ctx, domain.BudgetCategory{ID: id, Title: "Loop", ParentID: &id}))

	out, err = run(t, a, "verify", "--json")
	assert.ErrorIs(t, err, errLedgerDirty)

	start := bytes.IndexByte([]byte(out), '{')
	require.GreaterOrEqual(t, start, 0)
	var report portssvc.LedgerReport
	require.NoError(t, json.NewDecoder(bytes.NewReader([]byte(out[start:]))).Decode(&report))
	require.Len(t, report.BudgetCategoryIssues, 1)
	assert.Equal(t, domain.HierarchyCycle, report.BudgetCategoryIssues[0].Kind)
}

func TestMigrateNeedsDatabaseURL(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PGSQL_URL", "")
	_, err := run(t, &app{}, "migrate", "version")
	assert.ErrorContains(t, err, "PGSQL_URL")
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir on Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
