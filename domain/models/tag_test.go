package models

import (
	"reflect"
	"testing"
)

func TestDecodeTag_RoundTrip(t *testing.T) {
	fixtures := map[string]string{
		"null description": `{"id": 14405, "name": "home", "description": null}`,
		"with description": `{"id": 14406, "name": "travel", "description": "Trips and flights"}`,
	}

	for name, raw := range fixtures {
		t.Run(name, func(t *testing.T) {
			original, err := DecodeTag([]byte(raw))
			if err != nil {
				t.Fatalf("Expected no error but got: %v", err)
			}

			encoded, err := Encode(original, EncodeOptions{})
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}

			decoded, err := DecodeTag(mustMarshal(t, encoded))
			if err != nil {
				t.Fatalf("Re-decoding failed: %v", err)
			}
			if !reflect.DeepEqual(decoded, original) {
				t.Errorf("Round trip changed the tag: %+v != %+v", decoded, original)
			}
		})
	}
}
