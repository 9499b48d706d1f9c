package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/greenwatch/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func clearConfigEnvVars() {
	for _, key := range []string{
		"GREENWATCH_CONFIG",
		"GREENWATCH_ADDR",
		"GREENWATCH_LOG_LEVEL",
		"GREENWATCH_COUNTRY_CSV",
		"GREENWATCH_INDUSTRY_CSV",
		"GREENWATCH_TOP_K",
		"GREENWATCH_MAX_TOP_K",
		"GREENWATCH_SESSION_COOKIE",
	} {
		_ = os.Unsetenv(key)
	}
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.TopK, convey.ShouldEqual, 10)
				convey.So(cfg.MaxTopK, convey.ShouldEqual, 50)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("GREENWATCH_ADDR", ":8080")
			_ = os.Setenv("GREENWATCH_COUNTRY_CSV", "/data/countries.csv")
			_ = os.Setenv("GREENWATCH_TOP_K", "5")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.CountryCSV, convey.ShouldEqual, "/data/countries.csv")
				convey.So(cfg.TopK, convey.ShouldEqual, 5)
				convey.So(cfg.IndustryCSV, convey.ShouldEqual, "industrylevel.csv")
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			path := filepath.Join(t.TempDir(), "config.yaml")
			yaml := "addr: \":7070\"\ntop_k: 3\nsession_cookie: gw\n"
			convey.So(os.WriteFile(path, []byte(yaml), 0o600), convey.ShouldBeNil)

			_ = os.Setenv("GREENWATCH_CONFIG", path)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.TopK, convey.ShouldEqual, 3)
				convey.So(cfg.SessionCookie, convey.ShouldEqual, "gw")
			})

			convey.Convey("And env vars override the file", func() {
				_ = os.Setenv("GREENWATCH_ADDR", ":6060")
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":6060")
			})
		})

		convey.Convey("When validation fails", func() {
			defer clearConfigEnvVars()

			convey.Convey("Then an empty addr is rejected", func() {
				path := filepath.Join(t.TempDir(), "config.yaml")
				convey.So(os.WriteFile(path, []byte("addr: \"\"\n"), 0o600), convey.ShouldBeNil)
				_ = os.Setenv("GREENWATCH_CONFIG", path)

				_, err := config.Load(ctx)
				convey.So(err, convey.ShouldNotBeNil)
			})

			convey.Convey("Then top_k above max_top_k is rejected", func() {
				_ = os.Setenv("GREENWATCH_TOP_K", "100")
				_ = os.Setenv("GREENWATCH_MAX_TOP_K", "10")

				_, err := config.Load(ctx)
				convey.So(err, convey.ShouldNotBeNil)
			})

			convey.Convey("Then a missing config file is surfaced", func() {
				_ = os.Setenv("GREENWATCH_CONFIG", "/does/not/exist.yaml")

				_, err := config.Load(ctx)
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}
