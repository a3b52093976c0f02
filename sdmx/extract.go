package sdmx

// Single-pass extraction of codelist entries and dataset observations out
// of SDMX-ML documents. Element and attribute names are matched on their
// local part only: namespace prefixes vary across sources and versions, the
// local names do not.

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"realincome"
)

// local strips any remaining prefix and returns a name's local part. The
// decoder already resolves declared namespaces into Name.Space; an
// undeclared prefix can still leave a colon in Local.
func local(n xml.Name) string {
	if i := strings.LastIndexByte(n.Local, ':'); i >= 0 {
		return n.Local[i+1:]
	}
	return n.Local
}

// DecodeCodelist scans a codelist document for Code elements such as
//
//	<str:Code id="POL"><com:Name xml:lang="en">Poland</com:Name></str:Code>
//
// and returns them as items in document order. An English-tagged Name
// always wins; otherwise the first Name seen is kept as a fallback; a Code
// with no Name at all labels itself with its code.
func DecodeCodelist(r io.Reader) ([]realincome.Item, error) {
	d := xml.NewDecoder(r)
	var out []realincome.Item

	var inCode bool
	var code, name string
	var hasName, capture bool

	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch local(t.Name) {
			case "Code":
				inCode, code, name, hasName, capture = true, "", "", false, false
				for _, a := range t.Attr {
					if local(a.Name) == "id" {
						code = a.Value
					}
				}
			case "Name":
				if !inCode {
					break
				}
				en := false
				for _, a := range t.Attr {
					if local(a.Name) == "lang" && strings.EqualFold(a.Value, "en") {
						en = true
					}
				}
				// English always captures; otherwise only the first name does.
				capture = en || !hasName
			}
		case xml.CharData:
			if inCode && capture {
				if s := strings.TrimSpace(string(t)); s != "" {
					name, hasName = s, true
				}
			}
		case xml.EndElement:
			switch local(t.Name) {
			case "Name":
				capture = false
			case "Code":
				if inCode && code != "" {
					if !hasName {
						name = code
					}
					out = append(out, realincome.Item{Code: code, Name: name})
				}
				inCode = false
			}
		}
	}
}

// DecodeObservations scans a dataset document for Obs elements, self-closed
// or not (both forms occur on the wire and mean the same thing):
//
//	<Obs TIME_PERIOD="2020-M01" OBS_VALUE="100.0"/>
//
// A record is emitted only when both attributes are present and the value
// is strictly positive; partial or non-positive records are data gaps or
// withdrawn observations and are dropped. A present but non-numeric
// OBS_VALUE is an error: the source guarantees numeric formatting for the
// field when it appears.
func DecodeObservations(r io.Reader) ([]realincome.Observation, error) {
	d := xml.NewDecoder(r)
	var out []realincome.Observation

	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok || local(start.Name) != "Obs" {
			continue
		}
		var token string
		var value float64
		var hasToken, hasValue bool
		for _, a := range start.Attr {
			switch local(a.Name) {
			case "TIME_PERIOD":
				token, hasToken = a.Value, true
			case "OBS_VALUE":
				v, err := strconv.ParseFloat(strings.TrimSpace(a.Value), 64)
				if err != nil {
					return nil, fmt.Errorf("OBS_VALUE %q is not numeric: %w", a.Value, err)
				}
				value, hasValue = v, true
			}
		}
		if hasToken && hasValue && value > 0 {
			out = append(out, realincome.Observation{Period: token, Value: value})
		}
	}
}
