package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/x-xyz/nftexplorer/app/bootstrap"
	"github.com/x-xyz/nftexplorer/base/ctx"
	"github.com/x-xyz/nftexplorer/base/log"
	bValidator "github.com/x-xyz/nftexplorer/base/validator"
	mmiddleware "github.com/x-xyz/nftexplorer/middleware"
	ens_delivery "github.com/x-xyz/nftexplorer/stores/ens/delivery/http"
	hc_delivery "github.com/x-xyz/nftexplorer/stores/healthcheck/delivery/http"
	network_delivery "github.com/x-xyz/nftexplorer/stores/network/delivery/http"
	session_delivery "github.com/x-xyz/nftexplorer/stores/session/delivery/http"
)

func init() {
	if err := bootstrap.ReadConfig(""); err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	defer log.Sync()

	// init echo
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middL.CORS)
	e.Validator = bValidator.NewCustomValidator(bValidator.New())

	context := ctx.Background()
	services := bootstrap.New(context)

	hc_delivery.New(e, services.HealthCheck)
	network_delivery.New(e, services.Network)
	session_delivery.New(e, services.Session)
	if services.Ens != nil {
		ens_delivery.New(e, services.Ens)
	}

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
