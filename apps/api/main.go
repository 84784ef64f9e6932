package main

import (
	"context"
	"log"
	"os"

	echoapi "github.com/apnapan/pulse/apps/api/echo"
	"github.com/apnapan/pulse/core"
	"github.com/apnapan/pulse/core/account"
	"github.com/apnapan/pulse/core/feedback"
	emailsvc "github.com/apnapan/pulse/services/email"
	logsvc "github.com/apnapan/pulse/services/logger"
	inmemdb "github.com/apnapan/pulse/storage/inmem"
	sheetsdb "github.com/apnapan/pulse/storage/sheets"
)

func main() {
	std := log.New(os.Stdout, core.Conf.AppName+" : ", log.LstdFlags|log.Lshortfile)

	// set up logger
	var logger core.Logger
	if core.Conf.RollbarToken != "" {
		logger = logsvc.NewRollbarLogger(std, core.Conf)
		logger.Enable(!core.Conf.Debug)
	} else {
		logger = logsvc.NewConsoleLogger(std)
	}

	// set up email service
	var mailSvc core.EmailService
	if core.Conf.Debug || core.Conf.SendgridAPIKey == "" {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(logger)
	}

	// set up repositories; without Sheets credentials everything stays in memory
	var acctRepo account.Repository
	var fbRepo feedback.Repository
	if core.Conf.Sheets.CredentialsFile != "" {
		db, err := sheetsdb.Open(context.Background(), core.Conf)
		errAndDie(logger, err)
		acctRepo = sheetsdb.NewAccountRepository(db, core.Conf.Sheets.AccountsSpreadsheetID)
		fbRepo = sheetsdb.NewFeedbackRepository(db, core.Conf.Sheets.FeedbackSpreadsheetID)
	} else {
		db, err := inmemdb.Open()
		errAndDie(logger, err)
		acctRepo = inmemdb.NewAccountRepository(db)
		fbRepo = inmemdb.NewFeedbackRepository(db)
	}

	// set up services
	acctSvc := account.NewService(acctRepo)
	fbSvc := feedback.NewService(fbRepo, mailSvc)

	// start API server
	app := echoapi.NewServer(
		&echoapi.Options{
			Address:     core.Conf.ServerAddress(),
			AccountSvc:  acctSvc,
			FeedbackSvc: fbSvc,
		},
	)
	app.Start()
}

func errAndDie(logger core.Logger, err error) {
	if err != nil {
		logger.Fatal(err.Error(), err)
	}
}
