package main

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/mergington/activities/internal/adapters/http/api"
	"github.com/mergington/activities/internal/adapters/http/site"
	"github.com/mergington/activities/internal/adapters/http/swagger"
	service "github.com/mergington/activities/internal/app"
	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.So(logger.Init(), convey.ShouldBeNil)

		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("MHS_ADDR", ":8080")
			_ = os.Setenv("MHS_LOG_LEVEL", "debug")
			defer func() {
				_ = os.Unsetenv("MHS_ADDR")
				_ = os.Unsetenv("MHS_LOG_LEVEL")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then service should be creatable with default options", func() {
				svc := service.New()
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And service should be creatable with custom options", func() {
				svc := service.New(
					service.WithCapacityEnforcement(true),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing HTTP server assembly", func() {
			ctx := context.Background()
			svc := service.New()
			convey.So(svc.Start(ctx), convey.ShouldBeNil)
			defer svc.Stop()

			mux := http.NewServeMux()
			site.Register(ctx, mux)
			swagger.Register(ctx, mux)

			apiServer := api.NewServer(svc, svc)
			apiServer.Register(ctx, mux)

			srv := &http.Server{
				Addr:              ":0",
				Handler:           mux,
				ReadTimeout:       readTimeout,
				WriteTimeout:      writeTimeout,
				IdleTimeout:       idleTimeout,
				ReadHeaderTimeout: readHeaderTimeout,
			}

			convey.Convey("Then the server should carry the configured timeouts", func() {
				convey.So(srv.ReadTimeout, convey.ShouldEqual, 10*time.Second)
				convey.So(srv.WriteTimeout, convey.ShouldEqual, 10*time.Second)
				convey.So(srv.IdleTimeout, convey.ShouldEqual, 60*time.Second)
				convey.So(srv.ReadHeaderTimeout, convey.ShouldEqual, 5*time.Second)
			})
		})
	})
}
