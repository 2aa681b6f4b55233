package main

import (
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/kod2ulz/fatzebra-gateway/api"
	fz "github.com/kod2ulz/fatzebra-gateway/client"
	"github.com/kod2ulz/fatzebra-gateway/sql/db"
	"github.com/kod2ulz/fatzebra-gateway/stores"
	"github.com/kod2ulz/gostart/app"
	"github.com/kod2ulz/gostart/storage"
	"github.com/kod2ulz/gostart/utils"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Warn("no .env file found, using system environment")
	}
	a := app.Init()
	ctx, log := a.Ctx(), a.Log()
	env := utils.Env.Helper("FATZEBRA")

	conf := fz.NewGatewayConfig()
	opts := []fz.GatewayOption{fz.WithGatewayConfig(conf)}

	if env.Get("AUDIT_DB", "false").Bool() {
		sqlDB, err := db.InitSQL(ctx, log, storage.Config("FATZEBRA_DB"))
		utils.Error.Fail(log.Entry, err, "failed to connect to database")
		defer utils.ErrorFunc[utils.ShFunc1](a, sqlDB.Conn.Close, "failed to close database connection")
		opts = append(opts, fz.WithGatewayDB(sqlDB))
	}
	if conf.CAObject != "" {
		minio, err := stores.Minio(log, stores.NewMinioConfig())
		utils.Error.Fail(log.Entry, err, "failed to initialise object storage")
		opts = append(opts, fz.WithObjectStore(minio))
	}

	gatewayClient, err := fz.GatewayClient(ctx, log, opts...)
	utils.Error.Fail(log.Entry, err, "failed to initialise gateway client")

	gateway, err := api.Gateway(ctx, log, api.WithGatewayClient(gatewayClient))
	utils.Error.Fail(log.Entry, err, "failed to initialise gateway api")

	reference := "EXAMPLE-" + uuid.New().String()
	res, err := gateway.Purchase(ctx, api.PurchaseRequest{
		Amount:    env.Get("EXAMPLE_AMOUNT", "10.00").String(),
		Reference: reference,
		Card: api.Card{
			CardHolder: "Jim Smith",
			CardNumber: "5123456789012346",
			CardExpiry: "05/2030",
			Cvv:        "123",
		},
	})
	if fz.IsTimeout(err) {
		// the purchase may still have been processed, look it up before retrying
		log.WithError(err).Warn("purchase timed out, querying by reference")
		res, err = gateway.GetPurchase(ctx, reference)
	}
	utils.Error.Log(log.Entry, err, "purchase encountered error")
	log.WithField("approved", res.Approved()).
		WithField("message", res.Message()).
		WithField("errors", res.Errors).Info("purchase complete")
}
