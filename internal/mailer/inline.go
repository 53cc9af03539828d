package mailer

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
)

// cidDomain is the fixed domain token appended to generated content-ids.
const cidDomain = "cutie.ro"

// dataURIPattern matches a well-formed base64 image data URI used as a
// quoted src attribute value: src="data:image/<subtype>;base64,<payload>".
// Anything that does not match (a missing ";base64," marker, a non-image
// MIME type, a data URI quoted in visible body text rather than a src
// attribute) is left in the HTML exactly as found, per the rewriter's
// failure policy.
var dataURIPattern = regexp.MustCompile(`(src=["'])data:(image/[a-zA-Z0-9.+-]+);base64,([A-Za-z0-9+/=]+)(["'])`)

// ExtractInlineImages rewrites base64 data-URI image sources in an HTML
// body into CID-referenced attachments. The scan is a single left-to-right
// pass over src attributes: the n-th successfully extracted image (counting
// from 0, per occurrence, so a repeated URI is extracted once per
// occurrence) gets content-id "inline-img-<n>@cutie.ro", its literal data
// URI is replaced with "cid:<that id>", and an attachment named
// "image-<n+1>.<subtype>" is appended. A URI whose base64 payload does not
// decode is left untouched and produces no attachment; the email simply
// renders a broken image for that one occurrence.
func ExtractInlineImages(html string) (string, []Attachment) {
	var attachments []Attachment
	index := 0

	rewritten := dataURIPattern.ReplaceAllStringFunc(html, func(match string) string {
		sub := dataURIPattern.FindStringSubmatch(match)
		prefix := sub[1]
		mimeType := sub[2]
		payload := sub[3]
		quote := sub[4]

		content, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return match
		}

		cid := fmt.Sprintf("inline-img-%d@%s", index, cidDomain)
		subtype := strings.TrimPrefix(mimeType, "image/")
		attachments = append(attachments, Attachment{
			Filename:    fmt.Sprintf("image-%d.%s", index+1, subtype),
			Content:     content,
			ContentType: mimeType,
			CID:         cid,
		})
		index++
		return prefix + "cid:" + cid + quote
	})

	return rewritten, attachments
}
