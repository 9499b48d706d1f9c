package session_test

import (
	"context"
	"testing"

	session "github.com/okian/greenwatch/internal/session"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseKind(t *testing.T) {
	Convey("Given reaction kind names", t, func() {
		Convey("Then known names parse", func() {
			k, err := session.ParseKind("like")
			So(err, ShouldBeNil)
			So(k, ShouldEqual, session.KindLike)

			k, err = session.ParseKind(" STAR ")
			So(err, ShouldBeNil)
			So(k, ShouldEqual, session.KindStar)
		})

		Convey("Then unknown names fail", func() {
			_, err := session.ParseKind("clap")
			So(err, ShouldEqual, session.ErrUnknownKind)
		})
	})
}

func TestRegistry(t *testing.T) {
	Convey("Given a session registry", t, func() {
		reg := session.NewRegistry()
		ctx := context.Background()

		Convey("When minting a new session", func() {
			id := reg.NewSession(ctx)

			Convey("Then counters start at zero", func() {
				So(id, ShouldNotBeEmpty)
				counts := reg.Counts(ctx, id)
				So(counts.Likes, ShouldEqual, 0)
				So(counts.Stars, ShouldEqual, 0)
			})

			Convey("And increments are scoped to the session", func() {
				other := reg.NewSession(ctx)

				counts, err := reg.Increment(ctx, id, session.KindLike)
				So(err, ShouldBeNil)
				So(counts.Likes, ShouldEqual, 1)

				counts, err = reg.Increment(ctx, id, session.KindStar)
				So(err, ShouldBeNil)
				So(counts.Stars, ShouldEqual, 1)

				So(reg.Counts(ctx, other).Likes, ShouldEqual, 0)
			})
		})

		Convey("When incrementing an unknown session ID", func() {
			counts, err := reg.Increment(ctx, "stale-cookie", session.KindLike)

			Convey("Then counters lazily restart from zero", func() {
				So(err, ShouldBeNil)
				So(counts.Likes, ShouldEqual, 1)
			})
		})

		Convey("When using an unknown kind", func() {
			_, err := reg.Increment(ctx, reg.NewSession(ctx), session.Kind("clap"))
			So(err, ShouldEqual, session.ErrUnknownKind)
		})

		Convey("When counting sessions", func() {
			So(reg.Size(), ShouldEqual, 0)
			reg.NewSession(ctx)
			reg.NewSession(ctx)
			So(reg.Size(), ShouldEqual, 2)
		})
	})
}
