// SPDX-License-Identifier: EPL-2.0

package audio

import "testing"

func TestFormat_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format Format
		want   string
	}{
		{None, "None"},
		{SFX, "SFX"},
		{VO, "VO"},
		{Format(42), "None"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", int(tt.format), got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token string
		want  Format
	}{
		{"sfx", SFX},
		{"SFX", SFX},
		{"-s", SFX},
		{"--sfx", SFX},
		{"vo", VO},
		{"-V", VO},
		{"--vo", VO},
		{"music", VO},
		{"-m", VO},
		{"--Music", VO},
		{" vo ", VO},
		{"", None},
		{"none", None},
		{"-x", None},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			t.Parallel()

			if got := ParseFormat(tt.token); got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestExtensions(t *testing.T) {
	t.Parallel()

	for _, f := range []Format{None, SFX, VO} {
		if got := EncodeExtension(f); got != ExtWAV {
			t.Errorf("EncodeExtension(%v) = %q, want %q", f, got, ExtWAV)
		}
	}

	if got := DecodeExtension(VO); got != ExtMP3 {
		t.Errorf("DecodeExtension(VO) = %q, want %q", got, ExtMP3)
	}
	if got := DecodeExtension(SFX); got != ExtWAV {
		t.Errorf("DecodeExtension(SFX) = %q, want %q", got, ExtWAV)
	}
	if got := DecodeExtension(None); got != ExtWAV {
		t.Errorf("DecodeExtension(None) = %q, want %q", got, ExtWAV)
	}
}
