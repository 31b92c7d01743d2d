package detector_test

import (
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/leakgate/pkg/detector"
	"github.com/m-mizutani/leakgate/pkg/domain/model"
	"github.com/m-mizutani/leakgate/pkg/domain/types"
)

func newInput(text string) *model.DiffInput {
	return &model.DiffInput{
		Text:   text,
		Path:   "config/settings.py",
		Branch: "origin/main",
		Commit: &model.Commit{
			Hash:        "7147cc7525c27d459154438e3284e03a73688907",
			Message:     "add settings",
			AuthorEmail: "dev@example.com",
			When:        time.Date(2016, 12, 31, 23, 15, 8, 0, time.UTC),
		},
	}
}

func TestShannonEntropy(t *testing.T) {
	t.Run("reference base64 string", func(t *testing.T) {
		s := "ZWVTjPQSdhwRgl204Hc51YCsritMIzn8B=/p9UyeX7xu6KkAGqfm3FJ+oObLDNEva"
		gt.True(t, detector.ShannonEntropy(s, detector.Base64Chars) > 4.5)
	})

	t.Run("reference hex string", func(t *testing.T) {
		gt.True(t, detector.ShannonEntropy("b3A0a1FDfe86dcCE945B72", detector.HexChars) > 3)
	})

	t.Run("repeated character is zero", func(t *testing.T) {
		for _, s := range []string{"a", "aaaa", strings.Repeat("Z", 100)} {
			gt.V(t, detector.ShannonEntropy(s, detector.Base64Chars)).Equal(0.0)
		}
	})

	t.Run("empty is zero", func(t *testing.T) {
		gt.V(t, detector.ShannonEntropy("", detector.Base64Chars)).Equal(0.0)
	})

	t.Run("never negative", func(t *testing.T) {
		for _, s := range []string{"ab", "abc", "0123456789", "ThisIsAnOrdinaryIdentifierName", "+/=+/="} {
			gt.True(t, detector.ShannonEntropy(s, detector.Base64Chars) >= 0)
		}
	})

	t.Run("32 distinct characters give 5 bits", func(t *testing.T) {
		gt.V(t, detector.ShannonEntropy("4fRz7Qk2Lp9Xc3Vb8Nm1Jh6Gt5Yd0WsA", detector.Base64Chars)).Equal(5.0)
	})
}

func TestStringsOfSet(t *testing.T) {
	t.Run("extracts maximal runs longer than 20", func(t *testing.T) {
		runs := detector.StringsOfSet(`key="4fRz7Qk2Lp9Xc3Vb8Nm1Jh6Gt5Yd0WsA";`, detector.Base64Chars)
		gt.A(t, runs).Length(1)
		gt.V(t, runs[0]).Equal("4fRz7Qk2Lp9Xc3Vb8Nm1Jh6Gt5Yd0WsA")
	})

	t.Run("exactly 20 characters is not enough", func(t *testing.T) {
		gt.A(t, detector.StringsOfSet(strings.Repeat("a", 20), detector.Base64Chars)).Length(0)
		gt.A(t, detector.StringsOfSet(strings.Repeat("a", 21), detector.Base64Chars)).Length(1)
	})

	t.Run("split by characters outside the set", func(t *testing.T) {
		word := "0123456789abcdef01234:fedcba9876543210fedcb"
		runs := detector.StringsOfSet(word, detector.HexChars)
		gt.A(t, runs).Length(2)
		gt.V(t, runs[0]).Equal("0123456789abcdef01234")
		gt.V(t, runs[1]).Equal("fedcba9876543210fedcb")
	})
}

func TestEntropyDetect(t *testing.T) {
	d := detector.NewEntropy()

	t.Run("high entropy base64 token", func(t *testing.T) {
		findings := d.Detect(newInput("+API_TOKEN = 4fRz7Qk2Lp9Xc3Vb8Nm1Jh6Gt5Yd0WsA\n"))
		gt.A(t, findings).Length(1)
		gt.V(t, findings[0].StringDetected).Equal(types.SecretString("4fRz7Qk2Lp9Xc3Vb8Nm1Jh6Gt5Yd0WsA"))
		gt.V(t, findings[0].Reason).Equal(types.ReasonHighEntropy)
		gt.V(t, findings[0].CommitHash).Equal(types.CommitSHA("7147cc7525c27d459154438e3284e03a73688907"))
		gt.V(t, findings[0].Date).Equal("2016-12-31 23:15:08")
	})

	t.Run("hex token", func(t *testing.T) {
		findings := d.Detect(newInput("+hash b3A0a1FDfe86dcCE945B72\n"))
		gt.A(t, findings).Length(1)
		gt.V(t, findings[0].StringDetected).Equal(types.SecretString("b3A0a1FDfe86dcCE945B72"))
	})

	t.Run("low entropy text", func(t *testing.T) {
		text := "+aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa\n+ThisIsAnOrdinaryIdentifierName\n+00000000000000000000000000000000\n"
		gt.A(t, d.Detect(newInput(text))).Length(0)
	})

	t.Run("patch marker is not part of the token", func(t *testing.T) {
		findings := d.Detect(newInput("+4fRz7Qk2Lp9Xc3Vb8Nm1Jh6Gt5Yd0WsA\n"))
		gt.A(t, findings).Length(1)
		gt.V(t, findings[0].StringDetected).Equal(types.SecretString("4fRz7Qk2Lp9Xc3Vb8Nm1Jh6Gt5Yd0WsA"))
	})

	t.Run("same string twice in a diff yields one finding", func(t *testing.T) {
		text := "-4fRz7Qk2Lp9Xc3Vb8Nm1Jh6Gt5Yd0WsA\n+4fRz7Qk2Lp9Xc3Vb8Nm1Jh6Gt5Yd0WsA\n"
		gt.A(t, d.Detect(newInput(text))).Length(1)
	})
}
