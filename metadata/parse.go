package metadata

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BeamIO-Inc/espa-product-formatter-sub001/util"
)

// Validate performs a structural check of the metadata document before it is
// parsed: the root element must be espa_metadata in the ESPA namespace and
// must contain global_metadata and bands sections. Full XSD validation is
// left to the schema tooling that ships with the format; the schema path is
// reported in failure messages so mismatches are easy to chase down.
func Validate(xmlFile string) error {
	f, err := os.Open(xmlFile)
	if err != nil {
		return fmt.Errorf("opening metadata file %s: %v", xmlFile, err)
	}
	defer f.Close()

	decoder := xml.NewDecoder(f)
	sawRoot := false
	sawGlobal := false
	sawBands := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("malformed XML in %s: %v", xmlFile, err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if !sawRoot {
			if start.Name.Local != "espa_metadata" {
				return fmt.Errorf("%s: root element is <%s>, expected <espa_metadata>", xmlFile, start.Name.Local)
			}
			if start.Name.Space != Namespace {
				return fmt.Errorf("%s: root namespace is %q, expected %q (schema: %s)",
					xmlFile, start.Name.Space, Namespace, util.GetSchemaPath())
			}
			sawRoot = true
			continue
		}
		switch start.Name.Local {
		case "global_metadata":
			sawGlobal = true
		case "bands":
			sawBands = true
		}
	}

	if !sawRoot {
		return fmt.Errorf("%s: no root element found", xmlFile)
	}
	missing := []string{}
	if !sawGlobal {
		missing = append(missing, "global_metadata")
	}
	if !sawBands {
		missing = append(missing, "bands")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: missing required sections: %s", xmlFile, strings.Join(missing, ", "))
	}
	return nil
}

// Parse reads an ESPA metadata document into a Metadata value
func Parse(xmlFile string) (*Metadata, error) {
	doc, err := os.ReadFile(xmlFile)
	if err != nil {
		return nil, fmt.Errorf("reading metadata file %s: %v", xmlFile, err)
	}

	var meta Metadata
	if err := xml.Unmarshal(doc, &meta); err != nil {
		return nil, fmt.Errorf("parsing metadata file %s: %v", xmlFile, err)
	}
	return &meta, nil
}
