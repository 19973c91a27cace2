// Package pkg provides tests for save format detection
package pkg

import (
	"testing"

	"github.com/hansbonini/xv2save/pkg/ps4"
	"gopkg.in/yaml.v3"
)

func TestDetect(t *testing.T) {
	ps4Save := newPS4Save(t, true)
	pc, err := PS4ToPCReady(ps4Save, tempLocation(t))
	if err != nil {
		t.Fatalf("PS4ToPCReady() failed: %v", err)
	}
	back, err := PCReadyToPS4(pc, tempLocation(t), false)
	if err != nil {
		t.Fatalf("PCReadyToPS4() failed: %v", err)
	}

	singleMagic := append([]byte(nil), ps4Save...)
	singleMagic[ps4.MD5HeaderSize+ps4.SavHeaderSize] = 0

	testCases := []struct {
		name     string
		data     []byte
		expected Format
	}{
		{"ps4 save", ps4Save, FormatConsole},
		{"minimal ps4 save", newMinimalPS4Save(), FormatConsole},
		{"converted save", pc, FormatPCReady},
		{"restored save", back, FormatConsole},
		{"ps4 save with one magic", singleMagic, FormatUnknown},
		{"ps4 save truncated", ps4Save[:len(ps4Save)-1], FormatUnknown},
		{"pc save truncated", pc[:len(pc)-1], FormatUnknown},
		{"empty", nil, FormatUnknown},
		{"zeros", make([]byte, ps4.SaveSize), FormatUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Detect(tc.data); got != tc.expected {
				t.Errorf("Detect() = %s, want %s", got, tc.expected)
			}
		})
	}
}

func TestFormat_String(t *testing.T) {
	testCases := map[Format]string{
		FormatConsole: "PS4",
		FormatPCReady: "PC-ready",
		FormatUnknown: "unknown",
		Format(42):    "unknown",
	}
	for format, expected := range testCases {
		if got := format.String(); got != expected {
			t.Errorf("Format(%d).String() = %q, want %q", int(format), got, expected)
		}
	}
}

func TestInspect(t *testing.T) {
	pc, err := PS4ToPCReady(newPS4Save(t, true), tempLocation(t))
	if err != nil {
		t.Fatalf("PS4ToPCReady() failed: %v", err)
	}

	info := Inspect(pc)
	if info.Format != FormatPCReady || info.Size != ps4.PCReadySize {
		t.Errorf("Inspect() = %+v", info)
	}
	if !info.HasMarker || !info.HasLeftovers || info.Version != ps4.VersionV2 {
		t.Errorf("Inspect() marker details = %+v", info)
	}

	out, err := yaml.Marshal(info)
	if err != nil {
		t.Fatalf("yaml.Marshal() failed: %v", err)
	}
	var decoded map[string]interface{}
	if err := yaml.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("yaml.Unmarshal() failed: %v", err)
	}
	if decoded["format"] != "PC-ready" {
		t.Errorf("format = %v, want PC-ready", decoded["format"])
	}

	plain := Inspect(newMinimalPS4Save())
	if plain.Format != FormatConsole || plain.HasMarker {
		t.Errorf("Inspect(ps4) = %+v", plain)
	}
}
