package sampledata

import (
	"context"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	repository "github.com/okian/greenwatch/internal/adapters/repository"
	"github.com/okian/greenwatch/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	_ = logger.Init()
}

func TestPickEntities(t *testing.T) {
	Convey("Given the entity name pools", t, func() {
		Convey("When picking fewer names than the pool holds", func() {
			got := pickEntities(countryNames, 3)

			So(len(got), ShouldEqual, 3)
			So(got[0], ShouldEqual, countryNames[0])

			Convey("Then names are unique", func() {
				seen := make(map[string]bool)
				for _, name := range got {
					So(seen[name], ShouldBeFalse)
					seen[name] = true
				}
			})
		})

		Convey("When picking more names than the pool holds", func() {
			n := len(industryNames) + 5
			got := pickEntities(industryNames, n)

			So(len(got), ShouldEqual, n)

			Convey("Then cycled names carry a suffix and stay unique", func() {
				seen := make(map[string]bool)
				for _, name := range got {
					So(seen[name], ShouldBeFalse)
					seen[name] = true
				}
			})
		})
	})
}

func TestGenerateRows(t *testing.T) {
	Convey("Given a set of entities and a year range", t, func() {
		entities := []string{"Norway", "Chile", "Kenya"}
		rows := generateRows(entities, 2019, 2021)

		Convey("Then every (entity, year) pair appears exactly once", func() {
			So(len(rows), ShouldEqual, 9)

			seen := make(map[string]bool)
			for _, r := range rows {
				key := r.entity + "/" + strconv.Itoa(r.year)
				So(seen[key], ShouldBeFalse)
				seen[key] = true
			}
		})

		Convey("And values stay within the generation ranges", func() {
			for _, r := range rows {
				So(r.ccii, ShouldBeGreaterThanOrEqualTo, cciiMin)
				So(r.ccii, ShouldBeLessThanOrEqualTo, cciiMin+cciiRange)
				So(r.gwe, ShouldBeGreaterThanOrEqualTo, gwMin)
				So(r.gwe, ShouldBeLessThanOrEqualTo, gwMin+gwRange)
				So(r.gwghg, ShouldBeGreaterThanOrEqualTo, gwMin)
				So(r.gwghg, ShouldBeLessThanOrEqualTo, gwMin+gwRange)
			}
		})
	})
}

func TestGeneratedDatasetsLoad(t *testing.T) {
	Convey("Given a full generation run", t, func() {
		ctx := context.Background()
		dir := t.TempDir()
		config := &Config{
			CountryFile:  filepath.Join(dir, "countrylevel.csv"),
			IndustryFile: filepath.Join(dir, "industrylevel.csv"),
			Countries:    5,
			Industries:   3,
			StartYear:    2019,
			EndYear:      2021,
			Timeout:      time.Second,
		}

		So(Run(ctx, config), ShouldBeNil)

		Convey("Then the service's own store can load the output", func() {
			store := repository.NewCSVStore()

			country, err := store.Dataset(ctx, config.CountryFile)
			So(err, ShouldBeNil)
			So(country.EntityColumn, ShouldEqual, "country")
			So(country.Len(), ShouldEqual, 15)
			So(country.Years(), ShouldResemble, []int{2019, 2020, 2021})

			industry, err := store.Dataset(ctx, config.IndustryFile)
			So(err, ShouldBeNil)
			So(industry.EntityColumn, ShouldEqual, "industry")
			So(industry.Len(), ShouldEqual, 9)
		})
	})
}

func TestRunValidation(t *testing.T) {
	Convey("Given invalid generator configurations", t, func() {
		ctx := context.Background()

		Convey("When output paths are empty", func() {
			err := Run(ctx, &Config{Countries: 1, Industries: 1, StartYear: 2019, EndYear: 2020})
			So(err, ShouldNotBeNil)
		})

		Convey("When the year range is inverted", func() {
			err := Run(ctx, &Config{
				CountryFile:  "c.csv",
				IndustryFile: "i.csv",
				Countries:    1,
				Industries:   1,
				StartYear:    2021,
				EndYear:      2019,
			})
			So(err, ShouldNotBeNil)
		})

		Convey("When entity counts are zero", func() {
			err := Run(ctx, &Config{
				CountryFile:  "c.csv",
				IndustryFile: "i.csv",
				StartYear:    2019,
				EndYear:      2020,
			})
			So(err, ShouldNotBeNil)
		})
	})
}
