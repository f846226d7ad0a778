package settings

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/iburimskiy/virtual-oscilloscope/internal/scope"
)

func TestStore(t *testing.T) {
	Convey("Given a store in a temp directory", t, func() {
		dir := t.TempDir()
		st, err := NewStore(filepath.Join(dir, "nested", "settings.json"))
		So(err, ShouldBeNil)

		Convey("A missing file loads the defaults", func() {
			s, err := st.Load()
			So(err, ShouldBeNil)
			So(s, ShouldResemble, Default())
		})

		Convey("Saved settings load back unchanged", func() {
			want := Settings{Label: "probe A", Frequency: 42.5, Amplitude: 3.3, VoltsPerDiv: 0.5, TimePerDiv: 20}
			So(st.Save(want), ShouldBeNil)

			got, err := st.Load()
			So(err, ShouldBeNil)
			So(got, ShouldResemble, want)
		})

		Convey("A corrupt file loads the defaults and reports ErrCorrupt", func() {
			So(os.MkdirAll(filepath.Dir(st.Path()), 0o755), ShouldBeNil)
			So(os.WriteFile(st.Path(), []byte("{not json"), 0o644), ShouldBeNil)

			s, err := st.Load()
			So(errors.Is(err, ErrCorrupt), ShouldBeTrue)
			So(s, ShouldResemble, Default())
		})

		Convey("Missing fields keep their defaults and values are clamped", func() {
			So(os.MkdirAll(filepath.Dir(st.Path()), 0o755), ShouldBeNil)
			So(os.WriteFile(st.Path(), []byte(`{"label":"x","frequency":9000}`), 0o644), ShouldBeNil)

			s, err := st.Load()
			So(err, ShouldBeNil)
			So(s.Label, ShouldEqual, "x")
			So(s.Frequency, ShouldEqual, 500.0)
			So(s.Amplitude, ShouldEqual, Default().Amplitude)
		})
	})
}

func TestNewStoreExpandsHome(t *testing.T) {
	Convey("A ~ path is expanded", t, func() {
		st, err := NewStore("~/scope/settings.json")
		So(err, ShouldBeNil)
		So(st.Path(), ShouldNotStartWith, "~")
		So(filepath.Base(st.Path()), ShouldEqual, "settings.json")
	})
}

func TestClamp(t *testing.T) {
	Convey("Clamp bounds every slider", t, func() {
		s := Settings{Frequency: 0, Amplitude: 1e6, VoltsPerDiv: math.NaN(), TimePerDiv: math.Inf(1)}.Clamp()
		So(s.Frequency, ShouldEqual, 0.1)
		So(s.Amplitude, ShouldEqual, 200.0)
		So(s.VoltsPerDiv, ShouldEqual, Default().VoltsPerDiv)
		So(s.TimePerDiv, ShouldEqual, Default().TimePerDiv)
	})
}

func TestParams(t *testing.T) {
	Convey("Only sliders round-trip through settings", t, func() {
		p := scope.DefaultParams()
		p.Frequency = 12
		p.Kind = scope.Triangle
		p.Zoom = 4
		p.Pan = scope.Vec{X: 3, Y: 4}

		restored := FromParams("CH1", p).Params()
		So(restored.Frequency, ShouldEqual, 12.0)
		So(restored.Kind, ShouldEqual, scope.Sine)
		So(restored.Zoom, ShouldEqual, 1.0)
		So(restored.Pan, ShouldResemble, scope.Vec{})
	})
}
