package service

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/stagehand/internal/db"
	"github.com/alexanderramin/stagehand/internal/repository"
	"github.com/alexanderramin/stagehand/internal/testutil"
)

type testRepos struct {
	db           *sql.DB
	uow          db.UnitOfWork
	events       repository.EventRepo
	defaultTasks repository.DefaultTaskRepo
	holdings     repository.HoldingRepo
	holdingTasks repository.HoldingTaskRepo
}

func setupRepos(t *testing.T) testRepos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return testRepos{
		db:           database,
		uow:          testutil.NewTestUoW(database),
		events:       repository.NewSQLiteEventRepo(database),
		defaultTasks: repository.NewSQLiteDefaultTaskRepo(database),
		holdings:     repository.NewSQLiteHoldingRepo(database),
		holdingTasks: repository.NewSQLiteHoldingTaskRepo(database),
	}
}

func newHoldingService(r testRepos) HoldingService {
	return NewHoldingService(r.holdings, r.defaultTasks, r.events, r.uow)
}
