package rfctime_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/opst/trackboard/pkg/utils/rfctime"
	"github.com/opst/trackboard/pkg/utils/try"
)

func TestParseRFC3339DateTime(t *testing.T) {
	t.Run("it parses timestamps with Z offset and microseconds", func(t *testing.T) {
		actual := try.To(rfctime.ParseRFC3339DateTime("2018-01-09T12:31:52.153614Z")).OrFatal(t)
		expected := time.Date(2018, 1, 9, 12, 31, 52, 153614000, time.UTC)
		if !actual.Time().Equal(expected) {
			t.Errorf("unexpected time: (actual, expected) = (%s, %s)", actual, expected)
		}
	})

	t.Run("it rejects non-RFC3339 strings", func(t *testing.T) {
		if _, err := rfctime.ParseRFC3339DateTime("09-01-2018 12:31"); err == nil {
			t.Error("no error")
		}
	})
}

func TestRFC3339_JSON(t *testing.T) {
	type wrapper struct {
		At      rfctime.RFC3339  `json:"at"`
		Maybe   *rfctime.RFC3339 `json:"maybe"`
		Missing *rfctime.RFC3339 `json:"missing"`
	}

	given := []byte(`{"at": "2018-01-09T12:31:52.153614Z", "maybe": "2018-01-09T21:31:52+09:00", "missing": null}`)

	var actual wrapper
	if err := json.Unmarshal(given, &actual); err != nil {
		t.Fatal(err)
	}

	if actual.Maybe == nil || !actual.Maybe.Time().Equal(time.Date(2018, 1, 9, 12, 31, 52, 0, time.UTC)) {
		t.Errorf("maybe: %v", actual.Maybe)
	}
	if actual.Missing != nil {
		t.Errorf("missing should be nil: %v", actual.Missing)
	}

	buf := try.To(json.Marshal(actual)).OrFatal(t)
	var roundtrip wrapper
	if err := json.Unmarshal(buf, &roundtrip); err != nil {
		t.Fatal(err)
	}
	if !roundtrip.At.Equal(actual.At) || !rfctime.PEqual(roundtrip.Maybe, actual.Maybe) {
		t.Errorf("roundtrip: (actual, expected) = (%+v, %+v)", roundtrip, actual)
	}
}
