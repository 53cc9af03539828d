package mailer

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
	"testing"
)

// onePixelPNG is a tiny but real payload; content is irrelevant to the
// rewriter, only the base64 round-trip matters.
var onePixelPNG = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}

func pngURI() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(onePixelPNG)
}

func TestExtractInlineImages(t *testing.T) {
	html := fmt.Sprintf(`<p>salut</p><img src="%s"><img src="data:image/jpeg;base64,%s">`,
		pngURI(), base64.StdEncoding.EncodeToString([]byte("jpegdata")))

	rewritten, atts := ExtractInlineImages(html)

	if len(atts) != 2 {
		t.Fatalf("expected 2 attachments, got %d", len(atts))
	}
	if strings.Contains(rewritten, "data:") {
		t.Errorf("rewritten HTML still contains a data URI:\n%s", rewritten)
	}
	for i, a := range atts {
		wantCID := fmt.Sprintf("inline-img-%d@cutie.ro", i)
		if a.CID != wantCID {
			t.Errorf("attachment %d: cid = %q, want %q", i, a.CID, wantCID)
		}
		if !strings.Contains(rewritten, "cid:"+wantCID) {
			t.Errorf("rewritten HTML missing reference to %q", wantCID)
		}
	}
	if atts[0].Filename != "image-1.png" || atts[0].ContentType != "image/png" {
		t.Errorf("attachment 0 = %q %q", atts[0].Filename, atts[0].ContentType)
	}
	if atts[1].Filename != "image-2.jpeg" || atts[1].ContentType != "image/jpeg" {
		t.Errorf("attachment 1 = %q %q", atts[1].Filename, atts[1].ContentType)
	}
	if !bytes.Equal(atts[0].Content, onePixelPNG) {
		t.Error("attachment 0 content does not round-trip")
	}
}

func TestExtractInlineImagesRepeatedURI(t *testing.T) {
	uri := pngURI()
	html := fmt.Sprintf(`<img src="%s"><img src="%s">`, uri, uri)

	rewritten, atts := ExtractInlineImages(html)

	if len(atts) != 2 {
		t.Fatalf("each occurrence extracts independently; got %d attachments", len(atts))
	}
	if !strings.Contains(rewritten, "cid:inline-img-0@cutie.ro") || !strings.Contains(rewritten, "cid:inline-img-1@cutie.ro") {
		t.Errorf("expected two distinct cid references:\n%s", rewritten)
	}
}

func TestExtractInlineImagesMalformed(t *testing.T) {
	cases := []struct {
		name string
		html string
	}{
		{"no base64 marker", `<img src="data:image/png">`},
		{"non-image mime", `<img src="data:text/plain;base64,aGVsbG8=">`},
		{"bad base64 payload", `<img src="data:image/png;base64,abc">`},
	}
	for _, tc := range cases {
		rewritten, atts := ExtractInlineImages(tc.html)
		if rewritten != tc.html {
			t.Errorf("%s: HTML must stay byte-for-byte unchanged\n got: %s\nwant: %s", tc.name, rewritten, tc.html)
		}
		if len(atts) != 0 {
			t.Errorf("%s: expected no attachments, got %d", tc.name, len(atts))
		}
	}
}

func TestExtractInlineImagesIgnoresBodyText(t *testing.T) {
	// A data URI quoted in visible text is not an image source and must
	// survive untouched; only src attributes are rewritten.
	html := fmt.Sprintf(`<p>paste "%s" into the editor</p><img src="%s">`, pngURI(), pngURI())

	rewritten, atts := ExtractInlineImages(html)

	if len(atts) != 1 {
		t.Fatalf("expected 1 attachment, got %d", len(atts))
	}
	if !strings.Contains(rewritten, `paste "`+pngURI()+`" into the editor`) {
		t.Errorf("data URI in body text should survive untouched:\n%s", rewritten)
	}
	if !strings.Contains(rewritten, `src="cid:inline-img-0@cutie.ro"`) {
		t.Errorf("src attribute should be rewritten:\n%s", rewritten)
	}
}

func TestExtractInlineImagesMixed(t *testing.T) {
	// A malformed URI between two valid ones must not consume an index.
	html := fmt.Sprintf(`<img src="%s"><img src="data:image/png"><img src="%s">`, pngURI(), pngURI())

	rewritten, atts := ExtractInlineImages(html)

	if len(atts) != 2 {
		t.Fatalf("expected 2 attachments, got %d", len(atts))
	}
	if atts[1].CID != "inline-img-1@cutie.ro" {
		t.Errorf("second extracted image cid = %q", atts[1].CID)
	}
	if !strings.Contains(rewritten, `<img src="data:image/png">`) {
		t.Errorf("malformed occurrence should survive untouched:\n%s", rewritten)
	}
}
