package metadata

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"strings"
)

// espaDocument is the marshal-side shape of a metadata document, carrying
// the namespace declarations the parse-side model ignores.
type espaDocument struct {
	XMLName        xml.Name   `xml:"espa_metadata"`
	Version        string     `xml:"version,attr"`
	Xmlns          string     `xml:"xmlns,attr"`
	XmlnsXsi       string     `xml:"xmlns:xsi,attr"`
	SchemaLocation string     `xml:"xsi:schemaLocation,attr"`
	Global         GlobalMeta `xml:"global_metadata"`
	Bands          []BandMeta `xml:"bands>band"`
}

// Write serializes the metadata document to the given path, replacing any
// existing file
func Write(meta *Metadata, xmlFile string) error {
	version := meta.Version
	if version == "" {
		version = SchemaVersion
	}
	doc := espaDocument{
		Version:        version,
		Xmlns:          Namespace,
		XmlnsXsi:       "http://www.w3.org/2001/XMLSchema-instance",
		SchemaLocation: SchemaLocation + " " + SchemaURI,
		Global:         meta.Global,
		Bands:          meta.Bands,
	}

	body, err := xml.MarshalIndent(&doc, "", "    ")
	if err != nil {
		return fmt.Errorf("serializing metadata: %v", err)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.Write(body)
	buf.WriteByte('\n')
	if err := os.WriteFile(xmlFile, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing metadata file %s: %v", xmlFile, err)
	}
	return nil
}

// AppendBands appends band records to the persisted metadata document in a
// single operation. The records are inserted immediately before the closing
// </bands> tag; if that tag is missing the records are appended at the end
// of the file, which matches the upstream library's behavior for documents
// that did not validate in the first place.
func AppendBands(bands []BandMeta, xmlFile string) error {
	doc, err := os.ReadFile(xmlFile)
	if err != nil {
		return fmt.Errorf("opening metadata file %s for append: %v", xmlFile, err)
	}

	var block bytes.Buffer
	for i := range bands {
		serialized, err := xml.MarshalIndent(&bands[i], "        ", "    ")
		if err != nil {
			return fmt.Errorf("serializing band %s: %v", bands[i].Name, err)
		}
		block.Write(serialized)
		block.WriteByte('\n')
	}

	lines := strings.SplitAfter(string(doc), "\n")
	insertAt := -1
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, "</bands>") {
			insertAt = i
			break
		}
	}

	var out bytes.Buffer
	if insertAt < 0 {
		out.Write(doc)
		out.Write(block.Bytes())
	} else {
		for i, line := range lines {
			if i == insertAt {
				out.Write(block.Bytes())
			}
			out.WriteString(line)
		}
	}

	if err := os.WriteFile(xmlFile, out.Bytes(), 0644); err != nil {
		return fmt.Errorf("rewriting metadata file %s: %v", xmlFile, err)
	}
	return nil
}
