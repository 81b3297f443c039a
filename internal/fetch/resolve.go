// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"fmt"
	"regexp"
	"strings"
)

// Base URLs for document resolution. Declared as vars so tests can
// substitute httptest servers.
var (
	cochraneBase    = "https://www.cochranelibrary.com"
	doiResolverBase = "https://dx.doi.org/"
)

// cochraneDOIRe splits a Cochrane DOI into registrant prefix and suffix,
// e.g. "10.1002/14651858.CD013600.pub2".
var cochraneDOIRe = regexp.MustCompile(`^(10\.\d{4,9})/(\S+)$`)

// medlineDOIRe picks DOI entries out of a Medline citation export, which
// arrives as a bracketed list with "[doi]" markers.
var medlineDOIRe = regexp.MustCompile(`([^\s'"\[\],]+)\s*\[doi\]`)

// ResolveURL derives the full-text fetch URL for a record's DOI using the
// source-specific rule. Unknown sources fall back to the dx.doi.org
// resolver; DOIs that are already absolute URLs pass through unchanged.
func ResolveURL(source, doi string) (string, error) {
	doi = strings.TrimSpace(doi)
	if doi == "" {
		return "", fmt.Errorf("empty DOI")
	}

	switch source {
	case "Cochrane":
		return resolveCochrane(doi)
	case "Medline":
		if m := medlineDOIRe.FindStringSubmatch(doi); m != nil {
			return doiResolverBase + m[1], nil
		}
		return resolveDefault(doi), nil
	default:
		return resolveDefault(doi), nil
	}
}

// resolveCochrane builds the CDSR PDF path. The article code is the second
// dotted segment of the DOI suffix: "10.1002/14651858.CD013600.pub2" has
// code "CD013600" and resolves to
// /cdsr/doi/10.1002/14651858.CD013600.pub2/pdf/CDSR/CD013600/CD013600.pdf.
func resolveCochrane(doi string) (string, error) {
	m := cochraneDOIRe.FindStringSubmatch(doi)
	if m == nil {
		return "", fmt.Errorf("malformed Cochrane DOI %q", doi)
	}
	prefix, suffix := m[1], m[2]

	segments := strings.Split(suffix, ".")
	if len(segments) < 2 {
		return "", fmt.Errorf("Cochrane DOI %q has no article code segment", doi)
	}
	code := segments[1]

	return fmt.Sprintf("%s/cdsr/doi/%s/%s/pdf/CDSR/%s/%s.pdf",
		cochraneBase, prefix, suffix, code, code), nil
}

func resolveDefault(doi string) string {
	if strings.Contains(doi, "http://") || strings.Contains(doi, "https://") {
		return doi
	}
	return doiResolverBase + doi
}
