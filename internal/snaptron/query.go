// Package snaptron compiles structured query parameters into Snaptron web
// service URLs and fetches their plain-text results.
//
// Snaptron (https://snaptron.cs.jhu.edu/) serves RNA-seq splice junction
// data as compilation-scoped REST resources. Range and sample filters are
// expressed as repeated query parameters, so URLs are assembled by hand
// rather than through url.Values, which would sort and deduplicate keys.
package snaptron

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Resource identifies a Snaptron endpoint under a compilation.
// The junctions resource is named "snaptron" on the wire.
type Resource string

const (
	ResourceJunctions Resource = "snaptron"
	ResourceGenes     Resource = "genes"
	ResourceSamples   Resource = "samples"
)

// registryPath is the compilation registry listing. It lives outside any
// compilation scope and takes no query parameters.
const registryPath = "/snaptron/registry"

// Params is the canonical form of a Snaptron query: scalar parameters as
// strings, repeatable filters as ordered slices. Empty values are omitted
// from compiled URLs.
type Params struct {
	Regions  string
	IDs      string
	RFilter  []string
	SFilter  []string
	SIDs     string
	Contains string
	Exact    string
	Either   string
	Header   string
	Fields   string
}

// NormalizeParams converts raw tool-call arguments into Params. Shapes are
// handled tolerantly: a bare string supplied for a repeatable filter becomes
// a single-element sequence, and numeric flags are rendered in canonical
// integer form. Unrecognized keys are ignored; value legality is left to the
// remote service.
func NormalizeParams(args map[string]any) Params {
	return Params{
		Regions:  scalarArg(args["regions"]),
		IDs:      scalarArg(args["ids"]),
		RFilter:  listArg(args["rfilter"]),
		SFilter:  listArg(args["sfilter"]),
		SIDs:     scalarArg(args["sids"]),
		Contains: scalarArg(args["contains"]),
		Exact:    scalarArg(args["exact"]),
		Either:   scalarArg(args["either"]),
		Header:   scalarArg(args["header"]),
		Fields:   scalarArg(args["fields"]),
	}
}

// scalarArg renders a single argument value as its query-string form.
// JSON numbers arrive as float64; integral values must not pick up a
// trailing ".0" (header=1, not header=1.0).
func scalarArg(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		if t {
			return "1"
		}
		return "0"
	default:
		return fmt.Sprint(t)
	}
}

// listArg renders a repeatable-filter argument as an ordered sequence,
// coercing scalar input into a single-element slice.
func listArg(v any) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case []string:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if e != "" {
				out = append(out, e)
			}
		}
		return out
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s := scalarArg(e); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		if s := scalarArg(v); s != "" {
			return []string{s}
		}
		return nil
	}
}

// CompileQueryURL builds the request URL for a compilation-scoped resource.
// Parameters are emitted in a fixed order — regions, ids, rfilter, sfilter,
// sids, contains, exact, either, header, fields — with one key=value pair
// per filter element, preserving element order. The header parameter
// defaults to 1 when unset, since the service itself defaults to excluding
// the column-header line.
func CompileQueryURL(baseURL, compilation string, resource Resource, p Params) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimRight(baseURL, "/"))
	sb.WriteByte('/')
	sb.WriteString(url.PathEscape(compilation))
	sb.WriteByte('/')
	sb.WriteString(string(resource))

	header := p.Header
	if header == "" {
		header = "1"
	}

	sep := byte('?')
	add := func(key, value string) {
		if value == "" {
			return
		}
		sb.WriteByte(sep)
		sep = '&'
		sb.WriteString(key)
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(value))
	}

	add("regions", p.Regions)
	add("ids", p.IDs)
	for _, f := range p.RFilter {
		add("rfilter", f)
	}
	for _, f := range p.SFilter {
		add("sfilter", f)
	}
	add("sids", p.SIDs)
	add("contains", p.Contains)
	add("exact", p.Exact)
	add("either", p.Either)
	add("header", header)
	add("fields", p.Fields)

	return sb.String()
}

// RegistryURL returns the compilation registry listing URL. It never
// includes a compilation segment.
func RegistryURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + registryPath
}
