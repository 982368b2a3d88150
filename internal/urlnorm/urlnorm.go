// Package urlnorm rewrites link URLs into a canonical form so that links
// differing only in tracking parameters or encoding compare as equal.
package urlnorm

import (
	"net/url"
	"strings"

	"github.com/Swatinem/this-week-in-rust/internal/report"
)

// recognizedSchemes are the schemes newsletter links are expected to use.
// Anything else is reported as possibly malformed.
var recognizedSchemes = map[string]struct{}{
	"mailto": {},
	"http":   {},
	"https":  {},
}

// trackingParams is the block-list of analytics query parameters stripped
// during normalization.
var trackingParams = map[string]struct{}{
	"utm_source":   {},
	"utm_campaign": {},
	"utm_medium":   {},
	"utm_content":  {},
}

// Normalizer canonicalizes URLs and records anomalies into a report.Log.
// Anomalies never interrupt processing: every input yields a normalized
// form usable as a duplicate-comparison key.
type Normalizer struct {
	log *report.Log
}

// New returns a Normalizer that records warnings into log.
func New(log *report.Log) *Normalizer {
	return &Normalizer{log: log}
}

// Normalize strips tracking parameters from link and re-serializes it.
// The returned string is the canonical form of the link, whether or not
// any warnings were recorded along the way.
func (n *Normalizer) Normalize(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		n.log.Warnf("possibly malformed link: %s", link)
		return link
	}
	if _, ok := recognizedSchemes[u.Scheme]; !ok {
		n.log.Warnf("possibly malformed link: %s", link)
	}
	if u.RawQuery != "" {
		u.RawQuery = n.scrubQuery(link, u.RawQuery)
	}
	// A dangling "?" with no parameters behind it is dropped outright.
	u.ForceQuery = false
	normalized := u.String()
	if normalized != link {
		n.log.Warnf("link can be simplified: %s -> %s", link, normalized)
	}
	return normalized
}

// scrubQuery removes tracking parameters from a raw query string and
// re-encodes whatever survives. An empty result means the query component
// disappears entirely.
func (n *Normalizer) scrubQuery(link, query string) string {
	params := parseQuery(query)
	kept := params[:0]
	var removed []string
	for _, p := range params {
		if _, ok := trackingParams[p.key]; ok {
			removed = append(removed, p.key)
			continue
		}
		kept = append(kept, p)
	}
	if len(removed) > 0 {
		n.log.Warnf("found tracking parameters on %s: %v", link, removed)
	}
	return encodeQuery(kept)
}

// queryParam is one query key with its values in encounter order.
type queryParam struct {
	key    string
	values []string
}

// parseQuery splits a raw query string into parameters, preserving the
// order in which keys first appear and merging values of repeated keys.
// Parameters with an empty value ("flag" or "flag=") are dropped.
func parseQuery(query string) []queryParam {
	var params []queryParam
	index := make(map[string]int)
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		if value == "" {
			continue
		}
		key = unescape(key)
		value = unescape(value)
		if i, ok := index[key]; ok {
			params[i].values = append(params[i].values, value)
			continue
		}
		index[key] = len(params)
		params = append(params, queryParam{key: key, values: []string{value}})
	}
	return params
}

// encodeQuery is the inverse of parseQuery: repeated keys are emitted once
// per value, in the stored order.
func encodeQuery(params []queryParam) string {
	var b strings.Builder
	for _, p := range params {
		for _, v := range p.values {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(p.key))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(v))
		}
	}
	return b.String()
}

// unescape decodes percent escapes and plus signs, keeping the raw text
// when it is not valid query encoding.
func unescape(s string) string {
	if dec, err := url.QueryUnescape(s); err == nil {
		return dec
	}
	return s
}
