package config_test

import (
	"context"
	"testing"

	"github.com/okian/greenwatch/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New(context.Background())

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.CountryCSV, convey.ShouldEqual, "countrylevel.csv")
			convey.So(cfg.IndustryCSV, convey.ShouldEqual, "industrylevel.csv")
			convey.So(cfg.TopK, convey.ShouldEqual, 10)
			convey.So(cfg.MaxTopK, convey.ShouldEqual, 50)
			convey.So(cfg.SessionCookie, convey.ShouldEqual, "greenwatch_session")
		})
	})
}
