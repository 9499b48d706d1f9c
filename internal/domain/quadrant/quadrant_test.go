package quadrant_test

import (
	"testing"

	model "github.com/okian/greenwatch/internal/domain/model"
	quadrant "github.com/okian/greenwatch/internal/domain/quadrant"
	. "github.com/smartystreets/goconvey/convey"
)

func industryDataset() *model.Dataset {
	// ccii spans [-2, 4], gwe spans [0, 10] with mean 4.
	return &model.Dataset{
		EntityColumn: "industry",
		Records: []model.Record{
			{Entity: "Energy", Year: 2019, CCII: -2, GWE: 0},
			{Entity: "Utilities", Year: 2019, CCII: 4, GWE: 10},
			{Entity: "Materials", Year: 2020, CCII: 1, GWE: 5},
			{Entity: "Financials", Year: 2020, CCII: 2, GWE: 1},
		},
	}
}

func TestNewLayout(t *testing.T) {
	Convey("Given an industry dataset", t, func() {
		layout, err := quadrant.NewLayout(industryDataset(), model.MetricCCII, model.MetricGWE)
		So(err, ShouldBeNil)

		Convey("Then references are fixed and global", func() {
			So(layout.XRef(), ShouldEqual, 0)
			So(layout.YRef(), ShouldEqual, 4.0)
		})

		Convey("Then extrema cover all years", func() {
			xMin, xMax, yMin, yMax := layout.Extrema()
			So(xMin, ShouldEqual, -2.0)
			So(xMax, ShouldEqual, 4.0)
			So(yMin, ShouldEqual, 0.0)
			So(yMax, ShouldEqual, 10.0)
		})

		Convey("Then annotation anchors follow the 0.6/0.9 formula", func() {
			anns := layout.Annotations()
			So(anns, ShouldHaveLength, 4)

			// Top-right anchor: (xMax*0.6, yMax*0.9).
			So(anns[0].X, ShouldAlmostEqual, 2.4)
			So(anns[0].Y, ShouldAlmostEqual, 9.0)
			So(anns[0].Text, ShouldEqual, quadrant.LabelHighXHighY)

			// Bottom-left anchor: (xMin*0.6, yMin*0.9).
			So(anns[2].X, ShouldAlmostEqual, -1.2)
			So(anns[2].Y, ShouldAlmostEqual, 0.0)
			So(anns[2].Text, ShouldEqual, quadrant.LabelLowXLowY)
		})

		Convey("Then frames share the layout references", func() {
			f2019, err := layout.Frame(2019)
			So(err, ShouldBeNil)
			So(f2019.Points, ShouldHaveLength, 2)

			f2020, err := layout.Frame(2020)
			So(err, ShouldBeNil)
			So(f2020.Points, ShouldHaveLength, 2)

			// The layout is immutable between frame derivations.
			So(layout.XRef(), ShouldEqual, 0)
			So(layout.YRef(), ShouldEqual, 4.0)
			So(layout.Annotations(), ShouldResemble, layout.Annotations())
		})

		Convey("Then Frames returns one frame per year in order", func() {
			frames := layout.Frames()
			So(frames, ShouldHaveLength, 2)
			So(frames[0].Year, ShouldEqual, 2019)
			So(frames[1].Year, ShouldEqual, 2020)
		})

		Convey("Then an absent year yields ErrEmptyGroup", func() {
			_, err := layout.Frame(1999)
			So(err, ShouldEqual, quadrant.ErrEmptyGroup)
		})
	})

	Convey("Given a dataset with no negative x values", t, func() {
		ds := &model.Dataset{
			EntityColumn: "industry",
			Records: []model.Record{
				{Entity: "Tech", Year: 2021, CCII: 1, GWE: 2},
				{Entity: "Retail", Year: 2021, CCII: 3, GWE: 6},
			},
		}
		layout, err := quadrant.NewLayout(ds, model.MetricCCII, model.MetricGWE)
		So(err, ShouldBeNil)

		Convey("Then low-x anchors are still computed by formula", func() {
			anns := layout.Annotations()
			So(anns[1].X, ShouldAlmostEqual, 0.6) // xMin=1, degenerate but not special-cased
			So(anns[2].X, ShouldAlmostEqual, 0.6)
		})
	})

	Convey("Given an empty dataset", t, func() {
		Convey("Then layout construction fails with ErrInsufficientData", func() {
			_, err := quadrant.NewLayout(&model.Dataset{}, model.MetricCCII, model.MetricGWE)
			So(err, ShouldEqual, quadrant.ErrInsufficientData)

			_, err = quadrant.NewLayout(nil, model.MetricCCII, model.MetricGWE)
			So(err, ShouldEqual, quadrant.ErrInsufficientData)
		})
	})
}
